// Package life implements Conway's Game of Life on a fixed rectangle with hard
// edges, plus stamping of catalog patterns onto it.
package life

import (
	"errors"
	"fmt"

	"conway-stamps/pkg/core"
	"conway-stamps/pkg/patterns"
)

var (
	// ErrOutOfBounds matches every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrDimensionMismatch matches every *DimensionError.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// OutOfBoundsError reports the first cell of a stamp that fell off the grid.
type OutOfBoundsError struct {
	Position core.Position
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) is outside the grid", e.Position.Row, e.Position.Col)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// DimensionError reports a seed matrix whose shape disagrees with the declared size.
type DimensionError struct {
	Want core.Size
	// Row is the first row with the wrong length, or -1 when the row count is wrong.
	Row int
	Got int
}

func (e *DimensionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("seed has %d rows, want %d", e.Got, e.Want.H)
	}
	return fmt.Sprintf("seed row %d has %d columns, want %d", e.Row, e.Got, e.Want.W)
}

// Is lets errors.Is(err, ErrDimensionMismatch) match.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

var _ core.Sim = (*Grid)(nil)

// Grid is a columns×rows Life board. It is not safe for concurrent use.
type Grid struct {
	cur *core.BoolMatrix
	nxt *core.BoolMatrix

	generation int
}

// Sized returns an all-dead grid. Non-positive dimensions are clamped to 1.
func Sized(columns, rows int) *Grid {
	cur := core.NewBoolMatrix(columns, rows)
	return &Grid{cur: cur, nxt: core.NewBoolMatrix(cur.W, cur.H)}
}

// New builds a grid from cells[row][col]. The matrix must have exactly rows
// rows of exactly columns cells each.
func New(columns, rows int, cells [][]bool) (*Grid, error) {
	want := core.Size{W: columns, H: rows}
	if rows <= 0 || len(cells) != rows {
		return nil, &DimensionError{Want: want, Row: -1, Got: len(cells)}
	}
	for r, row := range cells {
		if columns <= 0 || len(row) != columns {
			return nil, &DimensionError{Want: want, Row: r, Got: len(row)}
		}
	}
	g := Sized(columns, rows)
	for r, row := range cells {
		copy(g.cur.Cells()[g.cur.Index(r, 0):], row)
	}
	return g, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cur.W, H: g.cur.H} }

// Cells exposes the current generation in row-major order.
func (g *Grid) Cells() []bool { return g.cur.Cells() }

// Generation counts ticks since construction or the last Clear/Reset.
func (g *Grid) Generation() int { return g.generation }

// Alive reports whether (row, col) is live. Cells off the grid are dead.
func (g *Grid) Alive(row, col int) bool { return g.cur.At(row, col) }

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(pos core.Position, alive bool)) {
	for row := 0; row < g.cur.H; row++ {
		for col := 0; col < g.cur.W; col++ {
			fn(core.Position{Row: row, Col: col}, g.cur.At(row, col))
		}
	}
}

// Snapshot returns a deep copy of the current generation as cells[row][col].
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.cur.H)
	for r := range out {
		start := g.cur.Index(r, 0)
		out[r] = append([]bool(nil), g.cur.Cells()[start:start+g.cur.W]...)
	}
	return out
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur.Cells() {
		if alive {
			n++
		}
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	g.cur.Clear()
	g.generation = 0
}

// Reset clears the board. A non-zero seed then fills it with a deterministic
// random soup.
func (g *Grid) Reset(seed int64) {
	g.Clear()
	if seed == 0 {
		return
	}
	core.NewRNG(seed).FillBool(g.cur.Cells(), 4)
}

// Step advances the simulation by one generation.
func (g *Grid) Step() { g.Tick() }

// Tick computes the next generation from the current one and swaps buffers,
// so every neighbour count sees only the previous generation.
func (g *Grid) Tick() {
	w, h := g.cur.W, g.cur.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			n := g.NeighborCount(row, col)
			alive := g.cur.At(row, col)
			g.nxt.Set(row, col, (alive && n == 2) || n == 3)
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// NeighborCount returns how many of the up to eight cells around (row, col)
// are live. Edge cells have fewer neighbours; nothing wraps.
func (g *Grid) NeighborCount(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cur.At(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// Stamp places a pattern with its origin at anchor after reflecting it inside
// its own box. Live cells are added; nothing is cleared. When any cell would
// land off the grid, or the pattern has no shape, no cell is written.
func (g *Grid) Stamp(id patterns.ID, anchor core.Position, sym patterns.Symmetry) error {
	cells, err := g.Placement(id, anchor, sym)
	if err != nil {
		return err
	}
	for _, p := range cells {
		g.cur.Set(p.Row, p.Col, true)
	}
	return nil
}

// Placement resolves the grid cells a Stamp with the same arguments would set,
// without touching the grid.
func (g *Grid) Placement(id patterns.ID, anchor core.Position, sym patterns.Symmetry) ([]core.Position, error) {
	box, offsets, err := patterns.Shape(id)
	if err != nil {
		return nil, err
	}
	reflected := patterns.Apply(sym, offsets, box)
	cells := make([]core.Position, len(reflected))
	for i, o := range reflected {
		p := core.Position{Row: anchor.Row + o.X, Col: anchor.Col + o.Y}
		if !g.cur.Contains(p.Row, p.Col) {
			return nil, &OutOfBoundsError{Position: p}
		}
		cells[i] = p
	}
	return cells, nil
}
