package engine

import (
	"fmt"
	"io"
	"strings"

	"tictactoe/game"

	"github.com/muesli/termenv"
)

// Renderer draws the grid as three |a b c| rows, top row first, followed by
// a blank line.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer colours marks when color is set and w supports it.
func NewRenderer(w io.Writer, color bool) *Renderer {
	var options []termenv.OutputOption
	if !color {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

func (r *Renderer) Render(position *game.Position) error {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteByte('|')
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(r.mark(position, game.Cell(row*3+col)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return fmt.Errorf("rendering grid: %w", err)
	}
	return nil
}

func (r *Renderer) mark(position *game.Position, cell game.Cell) string {
	side, ok := position.At(cell)
	if !ok {
		return " "
	}
	style := r.out.String(side.String()).Bold()
	if side == game.X {
		return style.Foreground(r.out.Color("1")).String()
	}
	return style.Foreground(r.out.Color("4")).String()
}
