package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"cols": "127", "rows": "71", "seed": "5"})
	if c.Columns != 127 || c.Rows != 71 || c.Seed != 5 {
		t.Fatalf("FromMap parsed %+v", c)
	}

	c = FromMap(map[string]string{"cols": "-4", "rows": "wide", "seed": "x"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}

	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestNewWithConfig(t *testing.T) {
	g := NewWithConfig(Config{Columns: 85, Rows: 40})
	if s := g.Size(); s.W != 85 || s.H != 40 {
		t.Fatalf("size = %+v, want 85x40", s)
	}
	if g.Population() != 0 {
		t.Fatal("zero seed should give an empty board")
	}
}
