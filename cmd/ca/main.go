//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway-stamps/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sel, err := cfg.Validate()
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	grid := cfg.NewGrid()
	game := app.New(grid, cfg, sel)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("conway-stamps - " + grid.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
