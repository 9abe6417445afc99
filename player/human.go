package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/utils"
)

var ErrNoInput = errors.New("input ended before a move was entered")

// Human reads moves typed on the numeric keypad layout, 7 8 9 being the top
// row. Input that is not a key of an empty cell is reported and asked for again.
type Human struct {
	console *Console
	empty   []game.Cell
}

func NewHuman(console *Console) *Human {
	return &Human{
		console: console,
		empty:   make([]game.Cell, 0, game.CellCount),
	}
}

func (h *Human) FindMove(position *game.Position) (game.Cell, metrics.SearchMetric, error) {
	start := time.Now()
	h.empty = position.AppendLegalMoves(h.empty[:0])

	fmt.Fprintf(h.console.out, "%s to move (1-9): ", position.SideToMove())
	for {
		cell, err := h.readCell()
		if err != nil {
			return 0, metrics.SearchMetric{Duration: time.Since(start)}, err
		}
		if utils.Contains(h.empty, cell) {
			return cell, metrics.SearchMetric{Duration: time.Since(start)}, nil
		}
		fmt.Fprintf(h.console.out, "%s cell is not empty\n", cell)
	}
}

func (h *Human) readCell() (game.Cell, error) {
	scanner, errOut := h.console.scanner, h.console.errOut
	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading move: %w", err)
			}
			return 0, ErrNoInput
		}

		key, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintf(errOut, "%q is not a number\n", scanner.Text())
		} else if cell, ok := game.CellFromKey(key); ok {
			return cell, nil
		} else {
			fmt.Fprintln(errOut, "number entered is not within the acceptable range")
		}
		fmt.Fprintln(errOut, "please try again with a number between 1 and 9")
	}
}
