package life

import "strconv"

// Config controls the Life board dimensions and initial soup.
type Config struct {
	Columns int
	Rows    int

	// Seed drives Reset; zero means an empty board.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Columns: 90, Rows: 71}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// NewWithConfig returns a grid sized from cfg and reset with its seed.
func NewWithConfig(cfg Config) *Grid {
	g := Sized(cfg.Columns, cfg.Rows)
	g.Reset(cfg.Seed)
	return g
}
