// Package term drives a Life grid in a terminal. Each cell is drawn two
// columns wide so the board keeps a roughly square aspect.
package term

import (
	"context"
	"time"

	"conway-stamps/internal/app"
	"conway-stamps/internal/clock"
	"conway-stamps/internal/ui"
	"conway-stamps/pkg/core"
	"conway-stamps/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorAntiqueWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorGreen)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Driver owns the grid for the lifetime of Run. Input events are forwarded
// into the frame loop, so the grid is only touched from one goroutine.
type Driver struct {
	screen tcell.Screen
	grid   *life.Grid
	clock  *clock.FixedStep

	sel     app.Selection
	cursor  core.Position
	seed    int64
	status  string
	buttons tcell.ButtonMask
}

// New prepares a driver. The screen must already be initialised.
func New(screen tcell.Screen, grid *life.Grid, cfg *app.Config, sel app.Selection) *Driver {
	screen.EnableMouse()
	return &Driver{
		screen: screen,
		grid:   grid,
		clock:  clock.NewFixedStep(cfg.Period),
		sel:    sel,
		seed:   cfg.Seed,
	}
}

// Run processes input and advances generations until the user quits or ctx
// is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.HandleEvent(ev) {
				return nil
			}
		case <-frames.C:
			if d.clock.ShouldStep() {
				d.grid.Tick()
			}
		}
		d.Draw()
	}
}

// HandleEvent applies one input event and reports whether the user asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		d.handleMouse(ev)
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		d.sel.NextPattern()
	case tcell.KeyBacktab:
		d.sel.PrevPattern()
	case tcell.KeyUp:
		d.moveCursor(-1, 0)
	case tcell.KeyDown:
		d.moveCursor(1, 0)
	case tcell.KeyLeft:
		d.moveCursor(0, -1)
	case tcell.KeyRight:
		d.moveCursor(0, 1)
	case tcell.KeyEnter:
		d.place(d.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			d.clock.Toggle()
		case 'n':
			d.grid.Tick()
		case 'c':
			d.grid.Clear()
			d.status = "cleared"
		case 'r':
			d.grid.Reset(d.seed)
			d.status = "reset"
		case 's':
			d.sel.CycleSymmetry()
		}
	}
	return false
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons() & tcell.Button1
	wasPressed := d.buttons & tcell.Button1
	d.buttons = ev.Buttons()
	if pressed == 0 || wasPressed != 0 {
		return
	}
	x, y := ev.Position()
	pos := core.Position{Row: y, Col: x / 2}
	if pos.Col >= d.grid.Size().W {
		// the status panel, not the board
		return
	}
	d.cursor = pos
	d.place(pos)
}

func (d *Driver) moveCursor(dr, dc int) {
	size := d.grid.Size()
	d.cursor.Row = min(max(d.cursor.Row+dr, 0), size.H-1)
	d.cursor.Col = min(max(d.cursor.Col+dc, 0), size.W-1)
}

func (d *Driver) place(pos core.Position) {
	d.status = app.StampMessage(d.sel, pos, d.sel.Place(d.grid, pos))
}

// Draw paints the board and the status panel and shows the frame.
func (d *Driver) Draw() {
	d.screen.Clear()
	d.grid.Each(func(pos core.Position, alive bool) {
		style := deadStyle
		if alive {
			style = aliveStyle
		}
		if pos == d.cursor {
			style = cursorStyle
		}
		d.screen.SetContent(pos.Col*2, pos.Row, ' ', nil, style)
		d.screen.SetContent(pos.Col*2+1, pos.Row, ' ', nil, style)
	})

	snap := d.grid.Parameters()
	snap.Groups = append(snap.Groups, d.sel.Parameters(d.clock.Paused()))
	x := d.grid.Size().W*2 + 2
	for row, line := range ui.Lines(snap, d.status) {
		for i, r := range []rune(line) {
			d.screen.SetContent(x+i, row, r, nil, textStyle)
		}
	}
	d.screen.Show()
}
