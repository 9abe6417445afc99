package game

// bitboard packs the whole grid: bits 0-8 hold X marks, bits 9-17 O marks.
type bitboard uint32

const sideMask bitboard = 1<<CellCount - 1

// Three rows, three columns and both diagonals, as X bit masks.
var lines = [8]bitboard{
	line(TopLeft, TopMiddle, TopRight),
	line(MiddleLeft, MiddleMiddle, MiddleRight),
	line(BottomLeft, BottomMiddle, BottomRight),
	line(TopLeft, MiddleLeft, BottomLeft),
	line(TopMiddle, MiddleMiddle, BottomMiddle),
	line(TopRight, MiddleRight, BottomRight),
	line(TopLeft, MiddleMiddle, BottomRight),
	line(TopRight, MiddleMiddle, BottomLeft),
}

func line(a, b, c Cell) bitboard {
	return a.bit(X) | b.bit(X) | c.bit(X)
}

func (b bitboard) marks(side Side) bitboard {
	return b >> (uint(side) * CellCount) & sideMask
}

func (b bitboard) hasLine(side Side) bool {
	marks := b.marks(side)
	for _, l := range lines {
		if marks&l == l {
			return true
		}
	}
	return false
}

func (b bitboard) full() bool {
	return (b.marks(X) | b.marks(O)) == sideMask
}

// outcome classifies the board. X lines are tested before O lines and a
// win always takes precedence over a full board.
func (b bitboard) outcome() Outcome {
	switch {
	case b.hasLine(X):
		return XWin
	case b.hasLine(O):
		return OWin
	case b.full():
		return Draw
	default:
		return OutcomeNone
	}
}
