package ui

import (
	"fmt"

	"infinite-life/pkg/viewport"
)

// hoverCell returns the cell under the cursor and its label.
func hoverCell(v viewport.Viewport, mx, my int) (int, int, string) {
	x, y := v.ScreenToWorld(float64(mx), float64(my))
	return x, y, fmt.Sprintf("(%d, %d)", x, y)
}
