package batch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"infinite-life/internal/core"
	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

func patternCells(t *testing.T, name string) *life.CellSet {
	t.Helper()
	p, ok := core.LookupPattern(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	cells := life.NewCellSet()
	for _, c := range p.Cells {
		cells.Add(life.Cell{X: c[0], Y: c[1]})
	}
	return cells
}

func TestRunRecordsPopulation(t *testing.T) {
	res, err := Run(context.Background(), patternCells(t, "glider"), 8, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Population) != 9 {
		t.Fatalf("population samples=%d, expected 9", len(res.Population))
	}
	for i, n := range res.Population {
		if n != 5 {
			t.Fatalf("generation %d population=%d", i, n)
		}
	}
	if res.Settled != -1 || res.Lifespan() != 8 {
		t.Fatalf("glider settled=%d lifespan=%d", res.Settled, res.Lifespan())
	}
	lo, _, _ := res.Final.Bounds()
	if lo != (life.Cell{X: 2, Y: 2}) {
		t.Fatalf("glider moved to %v after 8 generations", lo)
	}
}

func TestRunDetectsSettling(t *testing.T) {
	cases := []struct {
		name    string
		settled int
	}{
		{"block", 1},
		{"blinker", 2},
	}
	for _, tc := range cases {
		res, err := Run(context.Background(), patternCells(t, tc.name), 50, nil, true)
		if err != nil {
			t.Fatal(err)
		}
		if res.Settled != tc.settled || res.Generations != tc.settled {
			t.Fatalf("%s settled=%d generations=%d, expected %d", tc.name, res.Settled, res.Generations, tc.settled)
		}
	}
}

func TestRunPacedByClock(t *testing.T) {
	now := time.Unix(0, 0)
	pace := core.NewClock(5*time.Millisecond, func() time.Time { return now })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, patternCells(t, "blinker"), 3, pace, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, expected context.Canceled", err)
	}

	res, err := Run(context.Background(), patternCells(t, "blinker"), 3, core.NewClock(time.Millisecond, nil), false)
	if err != nil || res.Generations != 3 {
		t.Fatalf("paced run generations=%d err=%v", res.Generations, err)
	}
}

func TestSweepOrdersByLifespan(t *testing.T) {
	soup := Soup{Window: viewport.Range{MinX: 0, MinY: 0, MaxX: 15, MaxY: 15}, Threshold: 0.05, Density: 0.6}
	seeds := Seeds(7, 6)
	results, err := Sweep(context.Background(), soup, seeds, 40, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(seeds) {
		t.Fatalf("results=%d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Lifespan() < results[i].Lifespan() {
			t.Fatalf("results out of order at %d: %v then %v", i, results[i-1], results[i])
		}
	}

	again, err := Sweep(context.Background(), soup, seeds, 40, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range results {
		if results[i].Seed != again[i].Seed || !results[i].Final.Equal(again[i].Final) {
			t.Fatalf("sweep not deterministic at %d", i)
		}
	}
}

func TestSoupStaysInWindow(t *testing.T) {
	soup := Soup{Window: viewport.Range{MinX: -4, MinY: 3, MaxX: 4, MaxY: 9}, Threshold: 0.05, Density: 0.6}
	soup.Board(11).Each(func(c life.Cell) bool {
		if !soup.Window.Contains(c.X, c.Y) {
			t.Fatalf("cell %v outside %+v", c, soup.Window)
		}
		return true
	})
}

func TestPlot(t *testing.T) {
	if Plot(nil, 5, "population") != "" {
		t.Fatal("empty series should not plot")
	}
	out := Plot([]int{1, 3, 2, 5}, 5, "population")
	if !strings.Contains(out, "population") {
		t.Fatalf("caption missing:\n%s", out)
	}
}
