package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"conway-stamps/internal/app"
	"conway-stamps/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Columns = 40
	cfg.Rows = 20
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sel, err := cfg.Validate()
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, cfg.NewGrid(), cfg, sel).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
