package render

import (
	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

// Gutter is the gap in pixels left between adjacent live cells.
const Gutter = 1.0

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Plan is the geometry of one frame: filled squares for the visible live cells
// and the grid lines covering the visible range.
type Plan struct {
	Range   viewport.Range
	Cells   []Rect
	Columns []float64
	Rows    []float64
	Width   float64
	Height  float64
}

// Layout computes the frame geometry for a width x height surface.
func Layout(v viewport.Viewport, width, height float64, cells *life.CellSet) Plan {
	r := v.VisibleRange(width, height)
	p := Plan{Range: r, Width: width, Height: height}

	size := v.CellSize - Gutter
	cells.Each(func(c life.Cell) bool {
		if !r.Contains(c.X, c.Y) {
			return true
		}
		x, y := v.WorldToScreen(c.X, c.Y)
		p.Cells = append(p.Cells, Rect{X: x, Y: y, W: size, H: size})
		return true
	})

	for x := r.MinX; x <= r.MaxX; x++ {
		px, _ := v.WorldToScreen(x, 0)
		p.Columns = append(p.Columns, px)
	}
	for y := r.MinY; y <= r.MaxY; y++ {
		_, py := v.WorldToScreen(0, y)
		p.Rows = append(p.Rows, py)
	}
	return p
}
