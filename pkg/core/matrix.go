package core

// BoolMatrix stores a 2D grid of boolean cells in row-major order.
type BoolMatrix struct {
	W, H int
	data []bool
}

// NewBoolMatrix allocates a matrix with the given dimensions.
func NewBoolMatrix(w, h int) *BoolMatrix {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolMatrix{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (m *BoolMatrix) Cells() []bool { return m.data }

// Index returns the linear slice index for the cell at (row, col).
func (m *BoolMatrix) Index(row, col int) int { return row*m.W + col }

// Contains reports whether (row, col) lies inside the matrix. There is no
// wrapping: anything past an edge is outside.
func (m *BoolMatrix) Contains(row, col int) bool {
	return row >= 0 && row < m.H && col >= 0 && col < m.W
}

// At returns the cell value, or false when (row, col) is outside the matrix.
func (m *BoolMatrix) At(row, col int) bool {
	if !m.Contains(row, col) {
		return false
	}
	return m.data[m.Index(row, col)]
}

// Set writes a cell. The caller guarantees (row, col) is inside the matrix.
func (m *BoolMatrix) Set(row, col int, v bool) { m.data[m.Index(row, col)] = v }

// Clear marks every cell dead.
func (m *BoolMatrix) Clear() {
	for i := range m.data {
		m.data[i] = false
	}
}
