package render

import (
	"testing"

	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

func TestLayoutFiltersToVisibleRange(t *testing.T) {
	v := viewport.Viewport{OffsetX: 10, OffsetY: 0, CellSize: 20}
	cells := life.NewCellSet(life.Cell{X: 0, Y: 0}, life.Cell{X: 3, Y: 2}, life.Cell{X: 50, Y: 0}, life.Cell{X: -5, Y: -5})
	p := Layout(v, 100, 60, cells)

	if p.Range != (viewport.Range{MinX: -1, MinY: 0, MaxX: 5, MaxY: 3}) {
		t.Fatalf("range=%+v", p.Range)
	}
	if len(p.Cells) != 2 {
		t.Fatalf("cells=%+v, expected 2 visible", p.Cells)
	}
	seen := map[Rect]bool{}
	for _, r := range p.Cells {
		seen[r] = true
	}
	for _, want := range []Rect{{X: 10, Y: 0, W: 19, H: 19}, {X: 70, Y: 40, W: 19, H: 19}} {
		if !seen[want] {
			t.Fatalf("missing rect %+v in %+v", want, p.Cells)
		}
	}
}

func TestLayoutGridLines(t *testing.T) {
	v := viewport.Viewport{CellSize: 25}
	p := Layout(v, 100, 50, life.NewCellSet())
	if len(p.Columns) != 5 || len(p.Rows) != 3 {
		t.Fatalf("grid %dx%d, expected 5 columns and 3 rows", len(p.Columns), len(p.Rows))
	}
	if p.Columns[0] != 0 || p.Columns[4] != 100 || p.Rows[2] != 50 {
		t.Fatalf("columns=%v rows=%v", p.Columns, p.Rows)
	}
	if len(p.Cells) != 0 {
		t.Fatal("empty board produced cells")
	}
}
