package batch

import (
	"context"
	"sort"
	"sync"

	rng "infinite-life/pkg/core"
	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"
)

// Soup describes the random boards of a sweep.
type Soup struct {
	Window    viewport.Range
	Threshold float64
	Density   float64
}

// Board fills the soup window with noise-shaped clusters for seed.
func (s Soup) Board(seed int64) *life.CellSet {
	cells := life.NewCellSet()
	r := s.Window
	rng.Scatter(seed, r.MinX, r.MinY, r.Width(), r.Height(), s.Threshold, s.Density, func(x, y int) {
		cells.Add(life.Cell{X: x, Y: y})
	})
	return cells
}

// Seeds derives n sub-seeds from seed.
func Seeds(seed int64, n int) []int64 {
	r := rng.NewRNG(seed)
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int63()
	}
	return out
}

// Sweep runs one soup per seed on a pool of workers and returns the results
// ordered by lifespan, longest first. Ties keep seed order.
func Sweep(ctx context.Context, soup Soup, seeds []int64, generations, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	type job struct {
		idx  int
		seed int64
	}
	jobs := make(chan job)
	results := make([]Result, len(seeds))
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := Run(ctx, soup.Board(j.seed), generations, nil, true)
				if err != nil {
					errs <- err
					return
				}
				res.Seed = j.seed
				results[j.idx] = res
			}
		}()
	}

feed:
	for i, seed := range seeds {
		select {
		case jobs <- job{idx: i, seed: seed}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Lifespan() > results[j].Lifespan() })
	return results, nil
}
