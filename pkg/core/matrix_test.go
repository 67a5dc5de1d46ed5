package core

import "testing"

func TestBoolMatrixBounds(t *testing.T) {
	m := NewBoolMatrix(4, 3)
	m.Set(2, 3, true)
	if !m.At(2, 3) || m.Cells()[m.Index(2, 3)] != true {
		t.Fatal("Set did not write the row-major cell")
	}
	if m.Index(2, 3) != 11 {
		t.Fatalf("Index(2,3) = %d, want 11", m.Index(2, 3))
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
		if m.Contains(p[0], p[1]) || m.At(p[0], p[1]) {
			t.Fatalf("(%d,%d) should be outside a 4x3 matrix", p[0], p[1])
		}
	}
	m.Clear()
	if m.At(2, 3) {
		t.Fatal("Clear left a live cell")
	}
}

func TestRNGFillDeterministic(t *testing.T) {
	a := make([]bool, 64)
	b := make([]bool, 64)
	NewRNG(7).FillBool(a, 3)
	NewRNG(7).FillBool(b, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different fills")
		}
	}
	NewRNG(7).FillBool(a, 1)
	for _, v := range a {
		if !v {
			t.Fatal("n=1 should fill every cell")
		}
	}
}
