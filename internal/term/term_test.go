package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"conway-stamps/internal/app"
	"conway-stamps/pkg/core"
	"conway-stamps/pkg/patterns"
	"conway-stamps/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestDriver(t *testing.T, grid *life.Grid, sel app.Selection) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	cfg := app.NewConfig()
	cfg.Period = 10 * time.Millisecond
	return New(screen, grid, cfg, sel), screen
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestKeyboardStamp(t *testing.T) {
	g := life.Sized(10, 10)
	d, _ := newTestDriver(t, g, app.Selection{Pattern: patterns.Block})

	d.HandleEvent(key(tcell.KeyDown))
	d.HandleEvent(key(tcell.KeyDown))
	d.HandleEvent(key(tcell.KeyRight))
	d.HandleEvent(key(tcell.KeyEnter))

	for _, p := range [][2]int{{2, 1}, {2, 2}, {3, 1}, {3, 2}} {
		if !g.Alive(p[0], p[1]) {
			t.Fatalf("cell %v should be alive after stamping a block at (2,1)\n%s", p, g)
		}
	}
	if !strings.HasPrefix(d.status, "stamped block") {
		t.Fatalf("status = %q", d.status)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	d, _ := newTestDriver(t, life.Sized(4, 3), app.Selection{})
	for i := 0; i < 10; i++ {
		d.HandleEvent(key(tcell.KeyUp))
		d.HandleEvent(key(tcell.KeyLeft))
	}
	if d.cursor.Row != 0 || d.cursor.Col != 0 {
		t.Fatalf("cursor = %+v, want origin", d.cursor)
	}
	for i := 0; i < 10; i++ {
		d.HandleEvent(key(tcell.KeyDown))
		d.HandleEvent(key(tcell.KeyRight))
	}
	if d.cursor.Row != 2 || d.cursor.Col != 3 {
		t.Fatalf("cursor = %+v, want (2,3)", d.cursor)
	}
}

func TestMouseStampOnPressOnly(t *testing.T) {
	g := life.Sized(10, 10)
	d, _ := newTestDriver(t, g, app.Selection{Pattern: patterns.Point})

	d.HandleEvent(tcell.NewEventMouse(9, 4, tcell.Button1, tcell.ModNone))
	if !g.Alive(4, 4) {
		t.Fatalf("click at column 9 should stamp cell (4,4)\n%s", g)
	}
	// Dragging with the button held must not stamp again.
	d.HandleEvent(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	if g.Alive(0, 0) {
		t.Fatal("held button stamped a second cell")
	}
	d.HandleEvent(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone))
	d.HandleEvent(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	if !g.Alive(0, 0) {
		t.Fatal("second press should stamp")
	}
}

func TestOffGridStampReportsStatus(t *testing.T) {
	g := life.Sized(10, 10)
	d, _ := newTestDriver(t, g, app.Selection{Pattern: patterns.Glider})
	for i := 0; i < 9; i++ {
		d.HandleEvent(key(tcell.KeyRight))
	}
	d.HandleEvent(key(tcell.KeyEnter))
	if g.Population() != 0 {
		t.Fatal("off-grid stamp wrote cells")
	}
	if !strings.Contains(d.status, "does not fit") {
		t.Fatalf("status = %q", d.status)
	}

	d.HandleEvent(key(tcell.KeyTab))
	if d.sel.Pattern != patterns.LightWeightSpaceship {
		t.Fatalf("Tab from glider selected %s", d.sel.Pattern)
	}
	d.HandleEvent(key(tcell.KeyEnter))
	if !strings.Contains(d.status, "no shape") {
		t.Fatalf("status = %q", d.status)
	}
}

func TestRuneCommands(t *testing.T) {
	g := life.Sized(5, 5)
	d, _ := newTestDriver(t, g, app.Selection{Pattern: patterns.Blinker})
	d.HandleEvent(key(tcell.KeyDown))
	d.HandleEvent(key(tcell.KeyEnter))

	d.HandleEvent(runeKey('n'))
	if g.Generation() != 1 || !g.Alive(0, 1) {
		t.Fatalf("n should tick once\n%s", g)
	}
	d.HandleEvent(runeKey(' '))
	if !d.clock.Paused() {
		t.Fatal("space should pause")
	}
	d.HandleEvent(runeKey('s'))
	if d.sel.Symmetry != patterns.MirrorX {
		t.Fatalf("s selected %s", d.sel.Symmetry)
	}
	d.HandleEvent(runeKey('c'))
	if g.Population() != 0 {
		t.Fatal("c should clear the board")
	}
	if !d.HandleEvent(runeKey('q')) {
		t.Fatal("q should quit")
	}
	if !d.HandleEvent(key(tcell.KeyEscape)) {
		t.Fatal("escape should quit")
	}
}

func TestDrawPaintsCells(t *testing.T) {
	g := life.Sized(4, 4)
	d, screen := newTestDriver(t, g, app.Selection{Pattern: patterns.Point})
	if err := g.Stamp(patterns.Point, cellAt(1, 2), patterns.None); err != nil {
		t.Fatal(err)
	}
	d.Draw()

	cells, width, _ := screen.GetContents()
	bg := func(x, y int) tcell.Color {
		_, b, _ := cells[y*width+x].Style.Decompose()
		return b
	}
	if bg(4, 1) != tcell.ColorAntiqueWhite || bg(5, 1) != tcell.ColorAntiqueWhite {
		t.Fatal("live cell should fill two columns")
	}
	if bg(2, 1) != tcell.ColorDarkGray {
		t.Fatal("dead cell should use the dead style")
	}
	if bg(0, 0) != tcell.ColorGreen {
		t.Fatal("cursor cell should be highlighted")
	}

	var panel strings.Builder
	for _, r := range cells[0*width+10].Runes {
		panel.WriteRune(r)
	}
	if panel.String() != "B" {
		t.Fatalf("status panel should start with the Board group, got %q", panel.String())
	}
}

func TestRunTicksAndQuits(t *testing.T) {
	g := life.Sized(5, 5)
	d, screen := newTestDriver(t, g, app.Selection{})
	if err := g.Stamp(patterns.Blinker, cellAt(2, 1), patterns.None); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()

	time.Sleep(200 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after q")
	}
	if g.Generation() == 0 {
		t.Fatal("Run should have advanced generations")
	}
	if g.Population() != 3 {
		t.Fatalf("blinker population = %d, want 3", g.Population())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d, _ := newTestDriver(t, life.Sized(3, 3), app.Selection{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := d.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run returned %v, want deadline exceeded", err)
	}
}

func cellAt(row, col int) core.Position { return core.Position{Row: row, Col: col} }
