package agent

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/utils"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("accepting every kind name", func(t *testing.T) {
		for name, want := range map[string]Kind{
			"mcts":    KindMCTS,
			"Minimax": KindMinimax,
			"RANDOM":  KindRandom,
			"user":    KindHuman,
			"human":   KindHuman,
		} {
			got, err := ParseKind(name)
			require.NoError(t, err)
			require.Equal(t, want, got, "Name %q", name)
		}
	})

	t.Run("rejecting an unknown name", func(t *testing.T) {
		_, err := ParseKind("alphazero")

		require.ErrorIs(t, err, ErrUnknownKind)
		require.ErrorContains(t, err, "mcts, minimax, random, user")
	})

	t.Run("every listed name parses", func(t *testing.T) {
		for _, name := range KindNames() {
			_, err := ParseKind(name)
			require.NoError(t, err, name)
		}
	})
}

func TestKindString(t *testing.T) {
	require.Equal(t, "monte carlo tree search", KindMCTS.String())
	require.Equal(t, "minimax", KindMinimax.String())
	require.Equal(t, "random", KindRandom.String())
	require.Equal(t, "user", KindHuman.String())
}

func TestNew(t *testing.T) {
	t.Run("building every kind", func(t *testing.T) {
		for _, kind := range []Kind{KindMCTS, KindMinimax, KindRandom, KindHuman} {
			console := player.NewConsole(strings.NewReader("5\n"), &bytes.Buffer{}, &bytes.Buffer{})
			a := New(kind, Settings{Seed: 1, Rounds: 10, Console: console})

			require.Equal(t, kind, a.Kind())
			cell, _, err := a.FindMove(game.NewPosition())
			require.NoError(t, err, kind.String())
			require.True(t, cell.Valid(), kind.String())
		}
	})

	t.Run("panicking on an unknown kind", func(t *testing.T) {
		require.Panics(t, func() {
			New(Kind(42), Settings{})
		})
	})

	t.Run("counting search work when asked", func(t *testing.T) {
		a := New(KindMinimax, Settings{Metrics: true})
		p, err := game.Replay(game.MiddleMiddle, game.TopLeft)
		require.NoError(t, err)

		_, metric, err := a.FindMove(p)

		require.NoError(t, err)
		require.Positive(t, metric.Nodes)
	})
}

func TestNewHumansShareAConsole(t *testing.T) {
	console := player.NewConsole(strings.NewReader("5\n1\n9\n"), &bytes.Buffer{}, &bytes.Buffer{})
	x := New(KindHuman, Settings{Console: console})
	o := New(KindHuman, Settings{Console: console})
	p := game.NewPosition()

	for _, want := range []struct {
		agent *Agent
		cell  game.Cell
	}{{x, game.MiddleMiddle}, {o, game.BottomLeft}, {x, game.TopRight}} {
		cell, _, err := want.agent.FindMove(p)
		require.NoError(t, err, "O should not lose its line to X's reads")
		require.Equal(t, want.cell, cell)
		require.NoError(t, p.PlaceMark(cell))
	}
}

func TestRandomFindMove(t *testing.T) {
	t.Run("reporting only the duration", func(t *testing.T) {
		a := New(KindRandom, Settings{Seed: 1, Metrics: true})

		_, metric, err := a.FindMove(game.NewPosition())

		require.NoError(t, err)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
		require.Zero(t, metric.Episodes, "Random does no search")
		require.Zero(t, metric.Nodes, "Random does no search")
	})

	t.Run("taking the only empty cell", func(t *testing.T) {
		// x o x
		// x o o
		// o x .
		p, err := game.Replay(
			game.TopLeft, game.TopMiddle, game.TopRight, game.MiddleMiddle,
			game.MiddleLeft, game.MiddleRight, game.BottomMiddle, game.BottomLeft,
		)
		require.NoError(t, err)
		require.False(t, p.Outcome().Decided())
		r := NewRandom(1)

		for i := 0; i < 1000; i++ {
			cell, _, err := r.FindMove(p)
			require.NoError(t, err)
			require.Equal(t, game.BottomRight, cell)
		}
	})

	t.Run("choosing uniformly on an empty grid", func(t *testing.T) {
		r := NewRandom(42)
		p := game.NewPosition()
		picks := make([]game.Cell, 0, 9000)

		for i := 0; i < 9000; i++ {
			cell, _, err := r.FindMove(p)
			require.NoError(t, err)
			picks = append(picks, cell)
		}

		counts := utils.Count(picks)
		require.Len(t, counts, game.CellCount)
		for cell, n := range counts {
			require.True(t, n >= 800 && n <= 1200, "%s was picked %d times", cell, n)
		}
	})

	t.Run("failing on a full grid", func(t *testing.T) {
		p, err := game.Replay(
			game.TopLeft, game.TopMiddle, game.TopRight, game.MiddleMiddle,
			game.MiddleLeft, game.BottomLeft, game.MiddleRight, game.BottomRight,
			game.BottomMiddle,
		)
		require.NoError(t, err)

		_, _, err = NewRandom(1).FindMove(p)

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}
