package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tiptaptoe/internal/entity"
)

const (
	colorO = "#5fafff"
	colorX = "#ff5f87"

	rowSeparator = "-+-+-"
)

// Renderer - draws boards as three text rows, optionally coloured.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer - with color false the output is plain ASCII regardless of the terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	if !color {
		return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}

	return &Renderer{output: termenv.NewOutput(w)}
}

// Render - returns the board as "O|O|O" rows joined by separator lines.
func (that *Renderer) Render(board entity.Board) string {
	var rows [3]entity.Triple
	rows[0], rows[1], rows[2] = board.ToRows()

	lines := make([]string, 0, 2*len(rows)-1)
	for i, row := range rows {
		if i > 0 {
			lines = append(lines, rowSeparator)
		}

		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, that.cell(cell))
		}
		lines = append(lines, strings.Join(cells, "|"))
	}

	return strings.Join(lines, "\n")
}

// Print - writes the rendered board followed by a newline.
func (that *Renderer) Print(board entity.Board) error {
	if _, err := fmt.Fprintln(that.output, that.Render(board)); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}

	return nil
}

func (that *Renderer) cell(cell entity.Cell) string {
	style := that.output.String(cell.String())

	switch cell {
	case entity.CellO:
		style = style.Foreground(that.output.Color(colorO)).Bold()
	case entity.CellX:
		style = style.Foreground(that.output.Color(colorX)).Bold()
	case entity.CellEmpty:
	}

	return style.String()
}
