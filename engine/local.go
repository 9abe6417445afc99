package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"tictactoe/agent"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
)

// Engine plays a number of games between the same two agents, X always
// moving first.
type Engine struct {
	x        *agent.Agent
	o        *agent.Agent
	games    int
	out      io.Writer
	renderer *Renderer
	runID    string
}

func LocalEngine(x, o *agent.Agent, games int, options ...Option) *Engine {
	if x == nil || o == nil {
		panic("both sides need an agent")
	}
	if games < meta.MINIMUM_GAMES {
		panic(fmt.Sprintf("need at least %d game", meta.MINIMUM_GAMES))
	}

	e := &Engine{
		x:     x,
		o:     o,
		games: games,
		out:   os.Stdout,
	}
	for _, option := range options {
		option(e)
	}
	if e.renderer == nil {
		e.renderer = NewRenderer(e.out, true)
	}
	return e
}

// Run plays every game and prints the totals. The first error aborts the
// remaining games; the results gathered so far are returned with it.
func (e *Engine) Run() (Results, error) {
	var results Results
	e.introducePlayers()

	for round := 1; round <= e.games; round++ {
		outcome, err := e.play(round, &results)
		if err != nil {
			return results, fmt.Errorf("round %d: %w", round, err)
		}
		results.tally(outcome)
	}

	e.printResults(results)
	return results, nil
}

func (e *Engine) play(round int, results *Results) (game.Outcome, error) {
	log.Info().Str("run", e.runID).Int("round", round).Msg("game start")
	fmt.Fprint(e.out, "game start\n\n")

	start := time.Now()
	position := game.NewPosition()
	if err := e.renderer.Render(position); err != nil {
		return game.OutcomeNone, err
	}

	step := 0
	for !position.Outcome().Decided() {
		side := position.SideToMove()
		player := e.agentFor(side)

		cell, metric, err := player.FindMove(position)
		if err != nil {
			return game.OutcomeNone, fmt.Errorf("%s playing %s: %w", player, side, err)
		}
		if err := position.PlaceMark(cell); err != nil {
			return game.OutcomeNone, fmt.Errorf("%s playing %s: %w", player, side, err)
		}
		step++

		log.Debug().
			Int("round", round).
			Str("side", side.String()).
			Str("agent", player.String()).
			Str("cell", cell.String()).
			Dur("duration", metric.Duration).
			Msg("move")
		results.Moves = append(results.Moves, metrics.MoveMetric{
			Round:        round,
			Step:         step,
			Side:         side.String(),
			Agent:        player.String(),
			Cell:         cell.String(),
			SearchMetric: metric,
		})

		if err := e.renderer.Render(position); err != nil {
			return game.OutcomeNone, err
		}
	}

	outcome := position.Outcome()
	end := time.Now()
	fmt.Fprintln(e.out, outcome)
	results.Games = append(results.Games, metrics.GameMetric{
		Round:      round,
		PlayerX:    e.x.String(),
		PlayerO:    e.o.String(),
		Outcome:    outcome.String(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
	})

	log.Info().Str("run", e.runID).Int("round", round).Msgf("game over: %s after %d moves", outcome, step)
	return outcome, nil
}

func (e *Engine) agentFor(side game.Side) *agent.Agent {
	if side == game.X {
		return e.x
	}
	return e.o
}

func (e *Engine) introducePlayers() {
	fmt.Fprintf(e.out, "\nplayer x: %s\nplayer o: %s\n\n", e.x, e.o)
}

func (e *Engine) printResults(r Results) {
	fmt.Fprintf(e.out, "\nResults:\nx win: %d\no win: %d\ndraw:  %d\n\n", r.XWins, r.OWins, r.Draws)
}
