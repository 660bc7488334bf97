package core

import (
	"testing"

	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

func TestByteGridFill(t *testing.T) {
	g := NewByteGrid(viewport.Range{MinX: -2, MinY: -1, MaxX: 1, MaxY: 1})
	if g.W != 4 || g.H != 3 {
		t.Fatalf("size=%dx%d, expected 4x3", g.W, g.H)
	}
	cells := life.NewCellSet(life.Cell{X: -2, Y: -1}, life.Cell{X: 0, Y: 0}, life.Cell{X: 5, Y: 5})
	if n := g.Fill(cells); n != 2 {
		t.Fatalf("Fill marked %d cells, expected 2", n)
	}
	if g.At(0, 0) != 1 || g.At(2, 1) != 1 {
		t.Fatal("live cells not marked")
	}
	if g.At(1, 1) != 0 || g.At(-1, 0) != 0 || g.At(4, 0) != 0 {
		t.Fatal("unexpected marks")
	}

	g.Fill(life.NewCellSet())
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}

func TestByteGridDegenerateRange(t *testing.T) {
	g := NewByteGrid(viewport.Range{MinX: 3, MinY: 3, MaxX: 1, MaxY: 1})
	if g.W != 1 || g.H != 1 {
		t.Fatalf("size=%dx%d, expected 1x1", g.W, g.H)
	}
}
