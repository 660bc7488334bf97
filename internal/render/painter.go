//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a Plan onto an ebiten image.
type GridPainter struct {
	Background color.Color
	Live       color.Color
	Grid       color.Color
	LineWidth  float32
}

// NewGridPainter returns a painter with the default palette.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		Background: color.Black,
		Live:       color.RGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0xff},
		Grid:       color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		LineWidth:  0.5,
	}
}

// Draw clears the surface area of dst and paints the live cells, then the grid.
func (gp *GridPainter) Draw(dst *ebiten.Image, p Plan) {
	w, h := float32(p.Width), float32(p.Height)
	vector.DrawFilledRect(dst, 0, 0, w, h, gp.Background, false)

	for _, r := range p.Cells {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), gp.Live, false)
	}

	for _, x := range p.Columns {
		vector.StrokeLine(dst, float32(x), 0, float32(x), h, gp.LineWidth, gp.Grid, false)
	}
	for _, y := range p.Rows {
		vector.StrokeLine(dst, 0, float32(y), w, float32(y), gp.LineWidth, gp.Grid, false)
	}
}
