//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"infinite-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from and adjusts.
type Source interface {
	core.ParameterProvider
	Notice() string
}

var helpLines = []string{
	"space  start / pause",
	"n      single step",
	"c      clear",
	"e / i  export / import",
	"+ / -  speed",
	"r      randomize",
	"h      hover overlay",
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	noticeColor = color.RGBA{R: 255, G: 180, B: 90, A: 255}
)

// HUD renders the status and control panel to the right of the grid.
type HUD struct {
	src      Source
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls *controlPanel
	offsetX  int
}

// NewHUD constructs a HUD for src. A non-positive width disables it.
func NewHUD(src Source, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{src: src, width: width, controls: newControlPanel(src, width)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.controls.refresh(h.snapshot)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	h.controls.click(mx-h.offsetX, my)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, titleColor)

	for _, group := range h.snapshot.Groups {
		y += lineHeight + 6
		text.Draw(h.panel, group.Name, face, panelPadding, y, mutedColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			h.drawRight(p.Value, y, h.width-panelPadding, labelColor)
		}
	}

	y = h.controls.layout(y+lineHeight) + lineHeight
	for i := range h.controls.controls {
		h.drawControl(&h.controls.controls[i])
	}

	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += lineHeight
	}
	if notice := h.src.Notice(); notice != "" {
		text.Draw(h.panel, notice, face, panelPadding, y+lineHeight, noticeColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRight(s string, y, right int, clr color.Color) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	text.Draw(h.panel, s, basicfont.Face7x13, right-bounds.Dx(), y, clr)
}

func (h *HUD) drawControl(state *controlState) {
	text.Draw(h.panel, state.control.Label, basicfont.Face7x13, panelPadding, state.top+labelBaseline, labelColor)
	h.drawButton(state.minusRect, "-", h.controls.canAdjust(state, -1))
	h.drawButton(state.plusRect, "+", h.controls.canAdjust(state, 1))
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
