// Package viewport maps between screen pixels and cells of an unbounded grid
// and turns pointer, touch and wheel input into pan, zoom and cell toggles.
package viewport

import "math"

const (
	// MinCellSize and MaxCellSize bound the zoom level in pixels per cell.
	MinCellSize = 10.0
	MaxCellSize = 100.0
	// DefaultCellSize is the zoom level used when none is configured.
	DefaultCellSize = 20.0
	// ZoomStep is the relative cell size change per wheel notch.
	ZoomStep = 0.1
)

// Viewport holds the pan offset and zoom level of the view.
type Viewport struct {
	OffsetX  float64
	OffsetY  float64
	CellSize float64
}

// New returns a viewport at the origin with the given cell size.
func New(cellSize float64) Viewport {
	return Viewport{CellSize: ClampCellSize(cellSize)}
}

// ClampCellSize limits size to [MinCellSize, MaxCellSize].
func ClampCellSize(size float64) float64 {
	if math.IsNaN(size) {
		return DefaultCellSize
	}
	return math.Min(math.Max(size, MinCellSize), MaxCellSize)
}

// ScreenToWorld returns the cell under the pixel (px, py).
func (v Viewport) ScreenToWorld(px, py float64) (int, int) {
	wx, wy := v.WorldAt(px, py)
	return int(math.Floor(wx)), int(math.Floor(wy))
}

// WorldAt returns the fractional grid position under the pixel (px, py).
func (v Viewport) WorldAt(px, py float64) (float64, float64) {
	return (px - v.OffsetX) / v.CellSize, (py - v.OffsetY) / v.CellSize
}

// WorldToScreen returns the pixel at the top-left corner of cell (x, y).
func (v Viewport) WorldToScreen(x, y int) (float64, float64) {
	return float64(x)*v.CellSize + v.OffsetX, float64(y)*v.CellSize + v.OffsetY
}

// Range is an inclusive rectangle of cell coordinates.
type Range struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside r.
func (r Range) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width returns the number of columns in r.
func (r Range) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows in r.
func (r Range) Height() int { return r.MaxY - r.MinY + 1 }

// VisibleRange returns the cells that intersect a width x height pixel surface.
func (v Viewport) VisibleRange(width, height float64) Range {
	return Range{
		MinX: int(math.Floor(-v.OffsetX / v.CellSize)),
		MinY: int(math.Floor(-v.OffsetY / v.CellSize)),
		MaxX: int(math.Ceil((width - v.OffsetX) / v.CellSize)),
		MaxY: int(math.Ceil((height - v.OffsetY) / v.CellSize)),
	}
}

// Pan shifts the view by (dx, dy) pixels.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt sets the cell size, clamped, keeping the grid position under the
// pixel (px, py) fixed on screen.
func (v *Viewport) ZoomAt(px, py, size float64) {
	wx, wy := v.WorldAt(px, py)
	v.CellSize = ClampCellSize(size)
	v.OffsetX = px - wx*v.CellSize
	v.OffsetY = py - wy*v.CellSize
}

// CenterOn pans so that cell (x, y) sits in the middle of a width x height surface.
func (v *Viewport) CenterOn(x, y int, width, height float64) {
	v.OffsetX = width/2 - (float64(x)+0.5)*v.CellSize
	v.OffsetY = height/2 - (float64(y)+0.5)*v.CellSize
}
