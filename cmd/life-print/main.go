package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"conway-stamps/internal/app"
	"conway-stamps/pkg/core"
	"conway-stamps/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Columns = 10
	cfg.Rows = 10
	cfg.Demo = true
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 2, "generations to print after the seed")
	row := flag.Int("row", 0, "anchor row for -pattern when -demo=false")
	col := flag.Int("col", 0, "anchor column for -pattern when -demo=false")
	flag.Parse()

	sel, err := cfg.Validate()
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	grid := cfg.NewGrid()
	if !cfg.Demo {
		pos := core.Position{Row: *row, Col: *col}
		if err := sel.Place(grid, pos); err != nil {
			log.Fatalf("stamp %s at (%d,%d): %v", sel, pos.Row, pos.Col, err)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	if err := printGenerations(out, grid, *ticks); err != nil {
		log.Fatal(err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

func printGenerations(w io.Writer, grid *life.Grid, ticks int) error {
	for {
		if _, err := fmt.Fprintf(w, "tick %d\n", grid.Generation()); err != nil {
			return err
		}
		if err := grid.Print(w); err != nil {
			return err
		}
		if grid.Generation() >= ticks {
			return nil
		}
		grid.Tick()
	}
}
