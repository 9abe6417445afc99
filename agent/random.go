package agent

import (
	"errors"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

var ErrNoLegalMoves = errors.New("no legal moves are available")

// Random picks uniformly among the legal moves. It does no search, so its
// metric only carries the duration.
type Random struct {
	random *rand.Rand
	moves  []game.Cell
}

func NewRandom(seed uint64) *Random {
	return &Random{
		random: rand.New(rand.NewSource(seed)),
		moves:  make([]game.Cell, 0, game.CellCount),
	}
}

func (r *Random) FindMove(position *game.Position) (game.Cell, metrics.SearchMetric, error) {
	start := time.Now()
	r.moves = position.AppendLegalMoves(r.moves[:0])
	if len(r.moves) == 0 {
		return 0, metrics.SearchMetric{Duration: time.Since(start)}, ErrNoLegalMoves
	}
	cell := r.moves[r.random.Intn(len(r.moves))]
	return cell, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
