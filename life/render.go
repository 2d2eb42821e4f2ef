package life

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	glyphAlive = '1'
	glyphDead  = '0'
)

// String renders the board as text: one line per row, each cell printed
// as 1 (alive) or 0 (dead) with no separator between columns, a newline
// after the last column of every row, and nothing else.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.grid.rows * (b.grid.cols + 1))
	for row := 0; row < b.grid.rows; row++ {
		for col := 0; col < b.grid.cols; col++ {
			if b.grid.at(row, col) {
				sb.WriteByte(glyphAlive)
			} else {
				sb.WriteByte(glyphDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Renderer writes boards in their textual form to a fixed destination.
// Rendering is presentation only and never affects board state.
type Renderer struct {
	out io.Writer
}

// NewRenderer returns a renderer that writes to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes the board's textual form to the renderer's destination.
func (r *Renderer) Render(b *Board) error {
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errors.Wrap(err, "[Render] failed to write board")
	}
	return nil
}
