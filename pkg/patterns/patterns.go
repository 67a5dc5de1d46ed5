// Package patterns holds the catalog of stampable Life patterns and the
// reflections that can be applied to them before placement.
//
// Shapes are expressed in the pattern's own coordinates: an Offset's X is the
// row offset and its Y the column offset from the pattern origin, and a Box's W
// and H bound X and Y respectively.
package patterns

import (
	"errors"
	"fmt"
	"strings"
)

// ID enumerates the named patterns.
type ID uint8

const (
	Point ID = iota

	// still lifes
	Block
	BeeHive
	Loaf
	Boat
	Tub

	// oscillators
	Blinker
	Toad
	Beacon
	Pulsar
	PentaDecathlon

	// spaceships
	Glider
	LightWeightSpaceship
	MiddleWeightSpaceship
	HeavyWeightSpaceship

	numIDs
)

var names = [numIDs]string{
	Point:                 "point",
	Block:                 "block",
	BeeHive:               "beehive",
	Loaf:                  "loaf",
	Boat:                  "boat",
	Tub:                   "tub",
	Blinker:               "blinker",
	Toad:                  "toad",
	Beacon:                "beacon",
	Pulsar:                "pulsar",
	PentaDecathlon:        "pentadecathlon",
	Glider:                "glider",
	LightWeightSpaceship:  "lwss",
	MiddleWeightSpaceship: "mwss",
	HeavyWeightSpaceship:  "hwss",
}

func (id ID) String() string {
	if id >= numIDs {
		return fmt.Sprintf("pattern(%d)", uint8(id))
	}
	return names[id]
}

// Parse resolves a pattern name as produced by String. Matching ignores case.
func Parse(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q", name)
}

// All lists every pattern in declaration order, including the ones without a
// shape yet.
func All() []ID {
	ids := make([]ID, numIDs)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Supported lists the patterns that have a defined shape.
func Supported() []ID {
	var ids []ID
	for _, id := range All() {
		if _, err := Size(id); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// ErrUnsupported matches every *UnsupportedError.
var ErrUnsupported = errors.New("unsupported pattern")

// UnsupportedError reports a pattern whose geometry is not defined.
type UnsupportedError struct {
	Pattern ID
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("pattern %s: shape not defined", e.Pattern)
}

// Is lets errors.Is(err, ErrUnsupported) match.
func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// Offset is a live cell relative to the pattern origin.
type Offset struct {
	X, Y int
}

// Box is the extent of a pattern in its own coordinates.
type Box struct {
	W, H int
}

// Size returns the bounding box of a pattern.
func Size(id ID) (Box, error) {
	box, _, err := Shape(id)
	return box, err
}

// Offsets returns the live cells of a pattern. The slice is freshly allocated.
func Offsets(id ID) ([]Offset, error) {
	_, offsets, err := Shape(id)
	return offsets, err
}

// Shape returns the bounding box and live cells of a pattern.
func Shape(id ID) (Box, []Offset, error) {
	switch id {
	case Point:
		return Box{1, 1}, []Offset{{0, 0}}, nil
	case Block:
		return Box{2, 2}, []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, nil
	case BeeHive:
		return Box{3, 4}, []Offset{{1, 0}, {0, 1}, {2, 1}, {0, 2}, {2, 2}, {1, 3}}, nil
	case Tub:
		return Box{3, 3}, []Offset{{1, 0}, {0, 1}, {1, 2}, {2, 1}}, nil
	case Blinker:
		return Box{1, 3}, []Offset{{0, 0}, {0, 1}, {0, 2}}, nil
	case Glider:
		return Box{3, 3}, []Offset{{0, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}}, nil
	case Loaf, Boat:
		return Box{}, nil, &UnsupportedError{Pattern: id}
	case Toad, Beacon, Pulsar, PentaDecathlon:
		return Box{}, nil, &UnsupportedError{Pattern: id}
	case LightWeightSpaceship, MiddleWeightSpaceship, HeavyWeightSpaceship:
		return Box{}, nil, &UnsupportedError{Pattern: id}
	default:
		return Box{}, nil, &UnsupportedError{Pattern: id}
	}
}
