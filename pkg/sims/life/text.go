package life

import (
	"fmt"
	"io"
	"strings"
)

const (
	aliveGlyph = '▓'
	deadGlyph  = '░'
)

// String renders the grid one line per row, ▓ for live cells and ░ for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cur.W*3 + 1) * g.cur.H)
	for row := 0; row < g.cur.H; row++ {
		for col := 0; col < g.cur.W; col++ {
			if g.cur.At(row, col) {
				b.WriteRune(aliveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Print writes the String form of the grid to w.
func (g *Grid) Print(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// ParseText builds a grid from the String form. '#' and '.' are accepted as
// alternatives to the block glyphs; blank lines are skipped. Every row must
// have the same width.
func ParseText(s string) (*Grid, error) {
	var cells [][]bool
	for n, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case aliveGlyph, '#':
				row = append(row, true)
			case deadGlyph, '.':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("line %d: unexpected glyph %q", n+1, r)
			}
		}
		cells = append(cells, row)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrDimensionMismatch)
	}
	return New(len(cells[0]), len(cells), cells)
}
