package game

import "fmt"

// Cell is one of the nine squares, numbered row by row from the top left.
// The value doubles as the cell's bit index in a side's half of the bitboard.
type Cell uint8

const (
	TopLeft Cell = iota
	TopMiddle
	TopRight
	MiddleLeft
	MiddleMiddle
	MiddleRight
	BottomLeft
	BottomMiddle
	BottomRight
)

const CellCount = 9

// Order in which empty cells are enumerated: center, corners, then edges.
var searchOrder = [CellCount]Cell{
	MiddleMiddle,
	TopLeft,
	TopRight,
	BottomLeft,
	BottomRight,
	TopMiddle,
	MiddleLeft,
	MiddleRight,
	BottomMiddle,
}

// Numeric keypad layout: 1 is the bottom left corner, 9 the top right one.
var keypad = [CellCount]Cell{
	BottomLeft, BottomMiddle, BottomRight,
	MiddleLeft, MiddleMiddle, MiddleRight,
	TopLeft, TopMiddle, TopRight,
}

var cellNames = [CellCount]string{
	"top left", "top middle", "top right",
	"middle left", "middle middle", "middle right",
	"bottom left", "bottom middle", "bottom right",
}

// Cells returns all cells in row order.
func Cells() []Cell {
	cells := make([]Cell, CellCount)
	for i := range cells {
		cells[i] = Cell(i)
	}
	return cells
}

// CellFromKey maps a numeric keypad key (1-9) to its cell.
func CellFromKey(key int) (Cell, bool) {
	if key < 1 || key > CellCount {
		return 0, false
	}
	return keypad[key-1], true
}

// Key is the numeric keypad key of the cell.
func (c Cell) Key() int {
	for i, cell := range keypad {
		if cell == c {
			return i + 1
		}
	}
	panic(fmt.Sprintf("invalid cell %d", c))
}

func (c Cell) Valid() bool {
	return c < CellCount
}

func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
	return cellNames[c]
}

func (c Cell) bit(side Side) bitboard {
	return 1 << (uint(c) + uint(side)*CellCount)
}

// occupancy has both of the cell's bits set.
func (c Cell) occupancy() bitboard {
	return c.bit(X) | c.bit(O)
}
