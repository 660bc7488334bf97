package core

import (
	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

// ByteGrid is a dense raster of a rectangular window onto the sparse grid,
// stored in row-major order with one byte per cell.
type ByteGrid struct {
	W, H   int
	Origin life.Cell
	data   []uint8
}

// NewByteGrid allocates a grid covering r.
func NewByteGrid(r viewport.Range) *ByteGrid {
	w, h := r.Width(), r.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, Origin: life.Cell{X: r.MinX, Y: r.MinY}, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// At returns the value at local coordinates (x, y), or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[y*g.W+x]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Fill clears the grid and marks every live cell of s inside the window with 1.
// It returns the number of cells marked.
func (g *ByteGrid) Fill(s *life.CellSet) int {
	g.Clear()
	marked := 0
	s.Each(func(c life.Cell) bool {
		x, y := c.X-g.Origin.X, c.Y-g.Origin.Y
		if x >= 0 && y >= 0 && x < g.W && y < g.H {
			g.data[y*g.W+x] = 1
			marked++
		}
		return true
	})
	return marked
}
