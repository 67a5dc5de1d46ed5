//go:build ebiten

package ui

import (
	"image/color"

	"conway-stamps/internal/render"
	"conway-stamps/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var previewTint = color.RGBA{R: 40, G: 110, B: 40, A: 140}

// Overlay draws a translucent preview of the pending stamp under the cursor.
type Overlay struct {
	size    core.Size
	scale   int
	painter *render.GridPainter
	mask    []bool
	show    bool
	active  bool
}

// NewOverlay constructs an overlay for a board of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	return &Overlay{
		size:    size,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
		show:    true,
	}
}

// Update toggles the preview with P and records the cells of the pending stamp.
// A nil cells slice hides the preview for this frame.
func (o *Overlay) Update(cells []core.Position) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.show = !o.show
	}
	o.active = len(cells) > 0
	if o.active {
		o.mask = PreviewMask(o.size, cells, o.mask)
	}
}

// Draw renders the preview onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.active {
		return
	}
	o.painter.BlitMask(screen, o.mask, previewTint, o.scale)
}
