//go:build ebiten

package app

import (
	"image/color"

	"conway-stamps/internal/clock"
	"conway-stamps/internal/render"
	"conway-stamps/internal/ui"
	"conway-stamps/pkg/core"
	"conway-stamps/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a Life grid to the ebiten.Game interface.
type Game struct {
	grid    *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *clock.FixedStep

	onColor  color.Color
	offColor color.Color

	sel      Selection
	scale    int
	tickOnce bool
	seed     int64
	status   string
}

// New constructs a Game driving grid with the provided configuration.
func New(grid *life.Grid, cfg *Config, sel Selection) *Game {
	size := grid.Size()
	return &Game{
		grid:     grid,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(hudWidth),
		overlay:  ui.NewOverlay(size, cfg.CellSize),
		clock:    clock.NewFixedStep(cfg.Period),
		onColor:  color.RGBA{R: 250, G: 235, B: 215, A: 255},
		offColor: color.RGBA{R: 64, G: 64, B: 64, A: 255},
		sel:      sel,
		scale:    cfg.CellSize,
		seed:     cfg.Seed,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
		g.status = "cleared"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Reset(g.seed)
		g.status = "reset"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.sel.PrevPattern()
		} else {
			g.sel.NextPattern()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sel.CycleSymmetry()
	}

	cursor := g.cursorCell()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.onBoard() {
		g.status = StampMessage(g.sel, cursor, g.sel.Place(g.grid, cursor))
	}

	var preview []core.Position
	if g.onBoard() {
		preview, _ = g.grid.Placement(g.sel.Pattern, cursor, g.sel.Symmetry)
	}
	g.overlay.Update(preview)

	if g.clock.ShouldStep() || g.tickOnce {
		g.grid.Tick()
		g.tickOnce = false
	}

	snap := g.grid.Parameters()
	snap.Groups = append(snap.Groups, g.sel.Parameters(g.clock.Paused()))
	g.hud.Update(snap, g.status)
	return nil
}

func (g *Game) cursorCell() core.Position {
	x, y := ebiten.CursorPosition()
	return ToGrid(x, y, g.scale)
}

// onBoard reports whether the cursor is over the board rather than the HUD.
// Clicks that land on the board but leave the pattern hanging off an edge are
// still passed to the grid, which rejects them.
func (g *Game) onBoard() bool {
	x, _ := ebiten.CursorPosition()
	return x < g.grid.Size().W*g.scale
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	w, h := g.Layout(0, 0)
	g.hud.Draw(screen, w-g.hud.Width(), h)
}

// Layout returns the logical screen size: the board plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	h := s.H * g.scale
	if m := g.hud.MinHeight(); m > h {
		h = m
	}
	return s.W*g.scale + g.hud.Width(), h
}
