package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"conway-stamps/internal/clock"
	"conway-stamps/pkg/patterns"
	"conway-stamps/pkg/sims/life"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Columns  int
	Rows     int
	CellSize int
	Period   time.Duration
	Pattern  string
	Symmetry string
	Seed     int64
	Demo     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Columns:  lc.Columns,
		Rows:     lc.Rows,
		CellSize: 10,
		Period:   clock.DefaultPeriod,
		Pattern:  patterns.Glider.String(),
		Symmetry: patterns.None.String(),
		Seed:     lc.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Columns, "cols", c.Columns, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initially selected pattern")
	fs.StringVar(&c.Symmetry, "symmetry", c.Symmetry, "initial symmetry: none, x, y or xy")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random soup seed, 0 for an empty board")
	fs.BoolVar(&c.Demo, "demo", c.Demo, "start from the 10x10 demo seed instead of -cols/-rows")
}

// Validate checks the sizes and resolves the selection names.
func (c *Config) Validate() (Selection, error) {
	var errs []error
	if c.Columns <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Columns, c.Rows))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	id, err := patterns.Parse(c.Pattern)
	if err != nil {
		errs = append(errs, err)
	}
	sym, err := patterns.ParseSymmetry(c.Symmetry)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Selection{}, errors.Join(errs...)
	}
	return Selection{Pattern: id, Symmetry: sym}, nil
}

// NewGrid builds the starting board described by the config.
func (c *Config) NewGrid() *life.Grid {
	if c.Demo {
		return life.DemoSeed()
	}
	return life.NewWithConfig(life.Config{Columns: c.Columns, Rows: c.Rows, Seed: c.Seed})
}
