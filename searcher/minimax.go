package searcher

import (
	"fmt"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// Position values from X's point of view. Faster wins score further from
// DrawValue: a win found at depth d is worth XWinValue-d or OWinValue+d.
const (
	OWinValue = 0
	DrawValue = 16
	XWinValue = 32
)

// Minimax explores the full game tree without pruning. X maximizes and O
// minimizes; among equally valued moves the first in legal move order wins.
type Minimax struct {
	metrics metrics.Collector
}

// NewMinimax uses collector to count evaluated positions, nil disables counting.
func NewMinimax(collector metrics.Collector) *Minimax {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Minimax{metrics: collector}
}

func (m *Minimax) FindMove(position *game.Position) (game.Cell, metrics.SearchMetric, error) {
	m.metrics.Start()
	cell, value, err := m.bestMove(position)
	metric := m.metrics.Complete()
	if err != nil {
		return 0, metric, err
	}

	log.Debug().Msgf("minimax chose %s with value %d in %v", cell, value, metric.Duration)
	return cell, metric, nil
}

// Evaluate returns the minimax value of an undecided position.
func (m *Minimax) Evaluate(position *game.Position) (int, error) {
	if outcome := position.Outcome(); outcome.Decided() {
		return value(outcome, 0), nil
	}
	return m.search(position, 0)
}

func (m *Minimax) bestMove(position *game.Position) (game.Cell, int, error) {
	maximizing := position.SideToMove() == game.X
	best, bestValue, found := game.Cell(0), worst(maximizing), false
	for _, cell := range position.LegalMoves() {
		v, err := m.score(position, cell, 0)
		if err != nil {
			return 0, 0, err
		}
		if better(v, bestValue, maximizing) {
			best, bestValue, found = cell, v, true
		}
	}
	if !found {
		return 0, 0, ErrNoEmptySquares
	}
	return best, bestValue, nil
}

// search returns the value of an undecided node whose children sit at depth.
func (m *Minimax) search(node *game.Position, depth int) (int, error) {
	maximizing := node.SideToMove() == game.X
	bestValue := worst(maximizing)
	for _, cell := range node.LegalMoves() {
		v, err := m.score(node, cell, depth)
		if err != nil {
			return 0, err
		}
		if better(v, bestValue, maximizing) {
			bestValue = v
		}
	}
	return bestValue, nil
}

func (m *Minimax) score(node *game.Position, cell game.Cell, depth int) (int, error) {
	child := node.Clone()
	if err := child.PlaceMark(cell); err != nil {
		return 0, fmt.Errorf("minimax %s: %w", cell, err)
	}
	m.metrics.AddNodes(1)

	if outcome := child.Outcome(); outcome.Decided() {
		return value(outcome, depth), nil
	}
	return m.search(child, depth+1)
}

func value(outcome game.Outcome, depth int) int {
	switch outcome {
	case game.XWin:
		return XWinValue - depth
	case game.OWin:
		return OWinValue + depth
	default:
		return DrawValue
	}
}

func worst(maximizing bool) int {
	if maximizing {
		return OWinValue
	}
	return XWinValue
}

func better(v, best int, maximizing bool) bool {
	if maximizing {
		return v > best
	}
	return v < best
}
