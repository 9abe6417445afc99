package game

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	ErrGameOver     = errors.New("the game is already over")
	ErrCellOccupied = errors.New("cell is not empty")
	ErrInvalidCell  = errors.New("invalid cell")
)

// Position is the state of one game: the marks on the grid, the side to
// move and the outcome, which is updated after every placement.
//
// A Position is a small value; copying it (or calling Clone) yields an
// independent game that can be explored without touching the source.
type Position struct {
	board   bitboard
	side    Side
	outcome Outcome
}

// NewPosition returns an empty grid with X to move.
func NewPosition() *Position {
	return &Position{side: X}
}

// Replay plays the given cells in order from the empty grid.
func Replay(cells ...Cell) (*Position, error) {
	p := NewPosition()
	for i, cell := range cells {
		if err := p.PlaceMark(cell); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return p, nil
}

func (p Position) Clone() *Position {
	return &p
}

// PlaceMark marks cell for the side to move, updates the outcome and hands
// the turn to the opponent.
func (p *Position) PlaceMark(cell Cell) error {
	if p.outcome.Decided() {
		return fmt.Errorf("%w (%s)", ErrGameOver, p.outcome)
	}
	if !cell.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	if !p.IsEmpty(cell) {
		return fmt.Errorf("%s: %w", cell, ErrCellOccupied)
	}

	p.board |= cell.bit(p.side)
	p.outcome = p.board.outcome()
	p.side = p.side.Opponent()
	return nil
}

// LegalMoves returns the empty cells, center first, then corners, then edges.
func (p *Position) LegalMoves() []Cell {
	return p.AppendLegalMoves(make([]Cell, 0, CellCount))
}

// AppendLegalMoves appends the empty cells to dst in LegalMoves order.
func (p *Position) AppendLegalMoves(dst []Cell) []Cell {
	for _, cell := range searchOrder {
		if p.board&cell.occupancy() == 0 {
			dst = append(dst, cell)
		}
	}
	return dst
}

func (p *Position) SideToMove() Side {
	return p.side
}

func (p *Position) Outcome() Outcome {
	return p.outcome
}

func (p *Position) IsEmpty(cell Cell) bool {
	return p.board&cell.occupancy() == 0
}

// At returns the side that marked cell, false when the cell is empty.
func (p *Position) At(cell Cell) (Side, bool) {
	switch {
	case p.board&cell.bit(X) != 0:
		return X, true
	case p.board&cell.bit(O) != 0:
		return O, true
	default:
		return X, false
	}
}

// Marks counts the cells marked by side.
func (p *Position) Marks(side Side) int {
	return bits.OnesCount32(uint32(p.board.marks(side)))
}

// EmptyCount is the number of cells still free.
func (p *Position) EmptyCount() int {
	return CellCount - p.Marks(X) - p.Marks(O)
}

// String draws the grid as three rows, top row first.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteByte('|')
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			side, ok := p.At(Cell(row*3 + col))
			switch {
			case !ok:
				sb.WriteByte(' ')
			default:
				sb.WriteString(side.String())
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
