//go:build ebiten

package ui

import (
	"image/color"

	"infinite-life/pkg/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type viewSource interface {
	View() viewport.Viewport
}

// Overlay outlines the cell under the cursor and prints its coordinates.
type Overlay struct {
	src     viewSource
	visible bool
	w, h    int
}

// NewOverlay constructs a hidden overlay.
func NewOverlay(src viewSource) *Overlay {
	return &Overlay{src: src}
}

// Update toggles the overlay with H and records the surface size.
func (o *Overlay) Update(width, height int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
	o.w, o.h = width, height
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= o.w || my >= o.h {
		return
	}
	v := o.src.View()
	x, y, label := hoverCell(v, mx, my)
	sx, sy := v.WorldToScreen(x, y)
	size := float32(v.CellSize)
	vector.StrokeRect(screen, float32(sx), float32(sy), size, size, 2, color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	text.Draw(screen, label, basicfont.Face7x13, mx+12, my-8, color.RGBA{R: 255, G: 255, B: 255, A: 230})
}
