package engine

import (
	"bytes"
	"strings"
	"testing"

	"tictactoe/agent"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/stretchr/testify/require"
)

func newTestEngine(x, o *agent.Agent, games int) (*Engine, *bytes.Buffer) {
	var out bytes.Buffer
	e := LocalEngine(x, o, games, WithOutput(&out), WithRenderer(NewRenderer(&out, false)), WithRunID("test"))
	return e, &out
}

func TestLocalEngine(t *testing.T) {
	t.Run("panicking without an agent", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, agent.New(agent.KindRandom, agent.Settings{}), 1)
		})
	})

	t.Run("panicking without a game to play", func(t *testing.T) {
		random := agent.New(agent.KindRandom, agent.Settings{})

		require.Panics(t, func() {
			LocalEngine(random, random, 0)
		})
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("tallying every game", func(t *testing.T) {
		x := agent.New(agent.KindRandom, agent.Settings{Seed: 1})
		o := agent.New(agent.KindRandom, agent.Settings{Seed: 2})
		e, _ := newTestEngine(x, o, 25)

		results, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 25, results.Played())
		require.Len(t, results.Games, 25)
		moves := 0
		for i, g := range results.Games {
			require.Equal(t, i+1, g.Round)
			require.GreaterOrEqual(t, g.TotalMoves, 5, "No game can be won in fewer than five marks")
			require.LessOrEqual(t, g.TotalMoves, game.CellCount)
			moves += g.TotalMoves
		}
		require.Len(t, results.Moves, moves, "Every move should be recorded")
	})

	t.Run("alternating sides within a game", func(t *testing.T) {
		x := agent.New(agent.KindRandom, agent.Settings{Seed: 3})
		o := agent.New(agent.KindRandom, agent.Settings{Seed: 4})
		e, _ := newTestEngine(x, o, 1)

		results, err := e.Run()

		require.NoError(t, err)
		for i, move := range results.Moves {
			want := "x"
			if i%2 == 1 {
				want = "o"
			}
			require.Equal(t, want, move.Side)
			require.Equal(t, i+1, move.Step)
			require.Equal(t, "random", move.Agent)
		}
	})

	t.Run("perfect play draws", func(t *testing.T) {
		x := agent.New(agent.KindMinimax, agent.Settings{})
		o := agent.New(agent.KindMinimax, agent.Settings{})
		e, out := newTestEngine(x, o, 1)

		results, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 1, results.Draws)
		require.Contains(t, out.String(), "player x: minimax\nplayer o: minimax\n")
		require.Contains(t, out.String(), "game start\n\n|     |\n|     |\n|     |\n\n")
		require.Contains(t, out.String(), "\ndraw\n")
		require.Contains(t, out.String(), "x win: 0\no win: 0\ndraw:  1\n")
	})

	t.Run("minimax never loses to random", func(t *testing.T) {
		x := agent.New(agent.KindRandom, agent.Settings{Seed: 9})
		o := agent.New(agent.KindMinimax, agent.Settings{})
		e, _ := newTestEngine(x, o, 5)

		results, err := e.Run()

		require.NoError(t, err)
		require.Zero(t, results.XWins)
	})

	t.Run("aborting on an agent error", func(t *testing.T) {
		x := agent.New(agent.KindHuman, agent.Settings{
			Console: player.NewConsole(strings.NewReader("5\n"), &bytes.Buffer{}, &bytes.Buffer{}),
		})
		o := agent.New(agent.KindRandom, agent.Settings{Seed: 1})
		e, out := newTestEngine(x, o, 3)

		results, err := e.Run()

		require.ErrorIs(t, err, player.ErrNoInput)
		require.ErrorContains(t, err, "round 1")
		require.Zero(t, results.Played())
		require.Len(t, results.Moves, 2, "Moves before the error should be kept")
		require.NotContains(t, out.String(), "Results:")
	})
}

func TestEngineSummary(t *testing.T) {
	x := agent.New(agent.KindRandom, agent.Settings{Seed: 5})
	o := agent.New(agent.KindMinimax, agent.Settings{})
	e, _ := newTestEngine(x, o, 2)

	results, err := e.Run()
	require.NoError(t, err)
	summary := e.Summary(results)

	require.Equal(t, "test", summary.RunID)
	require.Equal(t, "random", summary.PlayerX)
	require.Equal(t, "minimax", summary.PlayerO)
	require.Equal(t, 2, summary.Games)
	require.Equal(t, results.Games[0].StartTime, summary.StartTime)
	require.Equal(t, results.Games[1].EndTime, summary.EndTime)
}
