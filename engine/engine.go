package engine

import (
	"io"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// Results tallies the outcomes of a run along with its records.
type Results struct {
	XWins int
	OWins int
	Draws int
	Games []metrics.GameMetric
	Moves []metrics.MoveMetric
}

func (r *Results) tally(outcome game.Outcome) {
	switch outcome {
	case game.XWin:
		r.XWins++
	case game.OWin:
		r.OWins++
	case game.Draw:
		r.Draws++
	}
}

func (r Results) Played() int {
	return r.XWins + r.OWins + r.Draws
}

type Option func(e *Engine)

func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

func WithRenderer(r *Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
	}
}

// Summary describes the run for the metrics writer.
func (e *Engine) Summary(r Results) metrics.Summary {
	summary := metrics.Summary{
		RunID:   e.runID,
		PlayerX: e.x.String(),
		PlayerO: e.o.String(),
		Games:   r.Played(),
		XWins:   r.XWins,
		OWins:   r.OWins,
		Draws:   r.Draws,
	}
	if len(r.Games) > 0 {
		summary.StartTime = r.Games[0].StartTime
		summary.EndTime = r.Games[len(r.Games)-1].EndTime
	} else {
		summary.StartTime = time.Now()
		summary.EndTime = summary.StartTime
	}
	return summary
}
