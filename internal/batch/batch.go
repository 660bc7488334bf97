// Package batch runs the life engine without a display: single paced runs and
// seed sweeps over random soups.
package batch

import (
	"context"
	"fmt"
	"time"

	"infinite-life/internal/core"
	"infinite-life/pkg/life"

	"github.com/guptarohit/asciigraph"
)

// Result summarises one run.
type Result struct {
	Seed        int64
	Generations int
	Population  []int
	Peak        int
	// Settled is the first generation that repeats one of the previous two, or
	// -1 if the run never settled into a still life or period-2 oscillator.
	Settled int
	Final   *life.CellSet
}

// Lifespan returns how many generations the board kept changing.
func (r Result) Lifespan() int {
	if r.Settled < 0 {
		return r.Generations
	}
	return r.Settled
}

// Run advances cells for up to generations steps and records the population
// after every step, starting with the initial board. A non-nil pace spaces
// generations by its interval. With stopWhenSettled the run ends as soon as
// the board repeats.
func Run(ctx context.Context, cells *life.CellSet, generations int, pace *core.Clock, stopWhenSettled bool) (Result, error) {
	l := life.New()
	l.Replace(cells)

	res := Result{Settled: -1, Population: make([]int, 0, generations+1)}
	record := func() {
		n := l.Cells().Len()
		res.Population = append(res.Population, n)
		if n > res.Peak {
			res.Peak = n
		}
	}
	record()

	var prev, prev2 *life.CellSet
	for gen := 1; gen <= generations; gen++ {
		if err := wait(ctx, pace); err != nil {
			res.Final = l.Cells()
			return res, err
		}
		prev2, prev = prev, l.Cells()
		l.Advance()
		record()
		res.Generations = gen

		if res.Settled < 0 && (l.Cells().Equal(prev) || (prev2 != nil && l.Cells().Equal(prev2))) {
			res.Settled = gen
			if stopWhenSettled {
				break
			}
		}
	}
	res.Final = l.Cells()
	return res, nil
}

func wait(ctx context.Context, pace *core.Clock) error {
	if pace == nil {
		return ctx.Err()
	}
	for !pace.Due() {
		timer := time.NewTimer(pace.Until())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// Plot draws the population series as an ASCII chart.
func Plot(series []int, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	data := make([]float64, len(series))
	for i, v := range series {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data, asciigraph.Height(height), asciigraph.Caption(caption))
}

func (r Result) String() string {
	settled := "never"
	if r.Settled >= 0 {
		settled = fmt.Sprintf("gen %d", r.Settled)
	}
	final := 0
	if r.Final != nil {
		final = r.Final.Len()
	}
	return fmt.Sprintf("seed=%d generations=%d peak=%d final=%d settled=%s", r.Seed, r.Generations, r.Peak, final, settled)
}
