package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Position addresses a single cell by row and column.
type Position struct {
	Row int
	Col int
}

// Sim defines the minimal contract a cellular automaton must implement so a
// driver can advance and render it.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []bool
}
