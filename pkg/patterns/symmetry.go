package patterns

import (
	"fmt"
	"strings"
)

// Symmetry selects the axis of the pattern's own box to reflect across.
type Symmetry uint8

const (
	None Symmetry = iota
	MirrorX
	MirrorY
	MirrorXY
)

var symmetryNames = [...]string{
	None:     "none",
	MirrorX:  "x",
	MirrorY:  "y",
	MirrorXY: "xy",
}

func (s Symmetry) String() string {
	if int(s) >= len(symmetryNames) {
		return fmt.Sprintf("symmetry(%d)", uint8(s))
	}
	return symmetryNames[s]
}

// Next returns the following mode, wrapping from MirrorXY back to None.
func (s Symmetry) Next() Symmetry {
	return Symmetry((int(s) + 1) % len(symmetryNames))
}

// ParseSymmetry resolves "none", "x", "y" or "xy", ignoring case.
func ParseSymmetry(name string) (Symmetry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range symmetryNames {
		if n == name {
			return Symmetry(i), nil
		}
	}
	return None, fmt.Errorf("unknown symmetry %q", name)
}

// Apply reflects offsets inside box. The result is a new slice with the same
// length and order as offsets.
func Apply(mode Symmetry, offsets []Offset, box Box) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		switch mode {
		case MirrorX:
			o.X = box.W - 1 - o.X
		case MirrorY:
			o.Y = box.H - 1 - o.Y
		case MirrorXY:
			o.X = box.W - 1 - o.X
			o.Y = box.H - 1 - o.Y
		}
		out[i] = o
	}
	return out
}
