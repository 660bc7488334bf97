package life

import "testing"

func cellsOf(pairs ...[2]int) *CellSet {
	s := NewCellSet()
	for _, p := range pairs {
		s.Add(Cell{X: p[0], Y: p[1]})
	}
	return s
}

func expectCells(t *testing.T, got *CellSet, expects map[[2]int]bool) {
	t.Helper()
	if got.Len() != len(expects) {
		t.Fatalf("population=%d, expected %d (%v)", got.Len(), len(expects), got.Cells())
	}
	for p := range expects {
		if !got.Contains(Cell{X: p[0], Y: p[1]}) {
			t.Fatalf("cell (%d,%d) should be alive, got %v", p[0], p[1], got.Cells())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New()
	l.Replace(cellsOf([2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}))
	l.SetRunning(true)

	if n, ok := l.Step(); !ok || n != 1 {
		t.Fatalf("Step()=(%d,%v), expected (1,true)", n, ok)
	}
	expectCells(t, l.Cells(), map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
		{2, 1}: true,
	})

	l.Step()
	expectCells(t, l.Cells(), map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
	})
}

func TestBlockIsStable(t *testing.T) {
	block := cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	next := Next(block)
	if !next.Equal(block) {
		t.Fatalf("block changed: %v", next.Cells())
	}
	if next == block {
		t.Fatal("Next must return a fresh set")
	}
}

func TestIsolatedCellDies(t *testing.T) {
	if n := Next(cellsOf([2]int{0, 0})).Len(); n != 0 {
		t.Fatalf("isolated cell left %d survivors", n)
	}
}

func TestEmptyStaysEmptyAndCounts(t *testing.T) {
	l := New()
	l.SetRunning(true)
	n, ok := l.Step()
	if !ok || n != 1 {
		t.Fatalf("Step()=(%d,%v), expected (1,true)", n, ok)
	}
	if l.Cells().Len() != 0 {
		t.Fatal("empty board produced cells")
	}
}

func TestStepIsNoopWhenPaused(t *testing.T) {
	l := New()
	l.Toggle(0, 0)
	before := l.Cells()
	n, ok := l.Step()
	if ok || n != 0 {
		t.Fatalf("paused Step()=(%d,%v), expected (0,false)", n, ok)
	}
	if l.Cells() != before || !before.Contains(Cell{}) {
		t.Fatal("paused Step modified the board")
	}

	if got := l.Advance(); got != 1 {
		t.Fatalf("Advance()=%d, expected 1", got)
	}
}

func TestGliderTranslates(t *testing.T) {
	glider := cellsOf([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	cur := glider
	for i := 0; i < 4; i++ {
		cur = Next(cur)
	}
	expects := map[[2]int]bool{}
	for _, c := range glider.Cells() {
		expects[[2]int{c.X + 1, c.Y + 1}] = true
	}
	expectCells(t, cur, expects)
}

func TestGrowthAcrossNegativeCoordinates(t *testing.T) {
	cur := cellsOf([2]int{-1, -5}, [2]int{-1, -4}, [2]int{-1, -3})
	cur = Next(cur)
	expectCells(t, cur, map[[2]int]bool{
		{-2, -4}: true,
		{-1, -4}: true,
		{0, -4}:  true,
	})
}

func TestClearResetsCounters(t *testing.T) {
	l := New()
	l.Toggle(3, 3)
	l.SetRunning(true)
	l.Step()
	l.Clear()
	st := l.Status()
	if st != (Status{}) {
		t.Fatalf("status after Clear=%+v", st)
	}
}

func TestToggleInvolution(t *testing.T) {
	s := cellsOf([2]int{0, 0}, [2]int{5, -2})
	for _, c := range []Cell{{0, 0}, {1, 1}, {-7, 9}} {
		before := s.Contains(c)
		first := s.Toggle(c)
		if first == before {
			t.Fatalf("toggle %v did not flip membership", c)
		}
		s.Toggle(c)
		if s.Contains(c) != before {
			t.Fatalf("double toggle of %v changed membership", c)
		}
	}
	if s.Len() != 2 {
		t.Fatalf("population=%d, expected 2", s.Len())
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := NewCellSet().Bounds(); ok {
		t.Fatal("empty set reported bounds")
	}
	min, max, ok := cellsOf([2]int{3, -1}, [2]int{-2, 4}, [2]int{0, 0}).Bounds()
	if !ok || min != (Cell{X: -2, Y: -1}) || max != (Cell{X: 3, Y: 4}) {
		t.Fatalf("Bounds()=(%v,%v,%v)", min, max, ok)
	}
}
