package app

import (
	"errors"
	"fmt"
	"strconv"

	"conway-stamps/pkg/core"
	"conway-stamps/pkg/patterns"
	"conway-stamps/pkg/sims/life"
)

// Stamper is the board operation a driver needs to place patterns.
type Stamper interface {
	Stamp(id patterns.ID, anchor core.Position, sym patterns.Symmetry) error
}

// Selection is the pattern and reflection the next click will stamp.
type Selection struct {
	Pattern  patterns.ID
	Symmetry patterns.Symmetry
}

// NextPattern selects the following catalog entry, wrapping at the end.
func (s *Selection) NextPattern() { s.shift(1) }

// PrevPattern selects the preceding catalog entry, wrapping at the start.
func (s *Selection) PrevPattern() { s.shift(-1) }

func (s *Selection) shift(d int) {
	all := patterns.All()
	i := 0
	for j, id := range all {
		if id == s.Pattern {
			i = j
			break
		}
	}
	s.Pattern = all[(i+d+len(all))%len(all)]
}

// CycleSymmetry advances none -> x -> y -> xy -> none.
func (s *Selection) CycleSymmetry() { s.Symmetry = s.Symmetry.Next() }

// Place stamps the selection onto b with its origin at pos.
func (s Selection) Place(b Stamper, pos core.Position) error {
	return b.Stamp(s.Pattern, pos, s.Symmetry)
}

func (s Selection) String() string {
	return fmt.Sprintf("%s/%s", s.Pattern, s.Symmetry)
}

// Parameters exposes the selection for HUD display.
func (s Selection) Parameters(paused bool) core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Stamp",
		Params: []core.Parameter{
			{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: s.Pattern.String()},
			{Key: "symmetry", Label: "Symmetry", Type: core.ParamTypeString, Value: s.Symmetry.String()},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(paused)},
		},
	}
}

// ToGrid maps pixel coordinates to the cell under them. Negative pixels map to
// negative cells so that the board's own bounds check rejects them.
func ToGrid(px, py, cellSize int) core.Position {
	if cellSize <= 0 {
		cellSize = 1
	}
	return core.Position{Row: floorDiv(py, cellSize), Col: floorDiv(px, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// StampMessage describes the outcome of a Place call for a status line.
func StampMessage(sel Selection, pos core.Position, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("stamped %s at (%d,%d)", sel, pos.Row, pos.Col)
	case errors.Is(err, patterns.ErrUnsupported):
		return fmt.Sprintf("%s has no shape yet", sel.Pattern)
	case errors.Is(err, life.ErrOutOfBounds):
		return fmt.Sprintf("%s at (%d,%d) does not fit", sel, pos.Row, pos.Col)
	default:
		return err.Error()
	}
}
