package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"infinite-life/internal/app"
	"infinite-life/internal/batch"
	"infinite-life/internal/core"
	"infinite-life/pkg/life"
	"infinite-life/pkg/viewport"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

type runOptions struct {
	load        string
	pattern     string
	generations int
	interval    time.Duration
	out         string
	seed        int64
	soups       int
	size        int
	workers     int
	noPlot      bool
	noColor     bool
}

func main() {
	opts := runOptions{generations: 200, seed: 42, size: 32, workers: runtime.NumCPU()}

	flaggy.SetName("life-run")
	flaggy.SetDescription("Runs the Game of Life without a display")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opts.load, "l", "load", "Layout file to start from")
	flaggy.String(&opts.pattern, "p", "pattern", "Pattern to start from ["+strings.Join(core.PatternNames(), "|")+"]")
	flaggy.Int(&opts.generations, "g", "generations", "Generations to simulate")
	flaggy.Duration(&opts.interval, "i", "interval", "Pause between generations, for example 100ms (0 runs flat out)")
	flaggy.String(&opts.out, "o", "out", "Write the final layout to this file")
	flaggy.Int64(&opts.seed, "s", "seed", "Seed for random soups")
	flaggy.Int(&opts.soups, "n", "soups", "Sweep this many random soups instead of a single run")
	flaggy.Int(&opts.size, "z", "size", "Side of the square soup window in cells")
	flaggy.Int(&opts.workers, "w", "workers", "Worker goroutines for sweeps")
	flaggy.Bool(&opts.noPlot, "q", "no-plot", "Skip the population chart")
	flaggy.Bool(&opts.noColor, "m", "no-color", "Disable colored output")
	flaggy.Parse()

	if opts.generations < 1 {
		flaggy.ShowHelpAndExit("generations must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	au := aurora.NewAurora(!opts.noColor)
	if opts.soups > 0 {
		if err := sweep(ctx, au, opts); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := single(ctx, au, opts); err != nil {
		log.Fatal(err)
	}
}

func single(ctx context.Context, au aurora.Aurora, opts runOptions) error {
	cells, err := startBoard(opts)
	if err != nil {
		return err
	}

	var pace *core.Clock
	if opts.interval > 0 {
		pace = core.NewClock(opts.interval, nil)
	}
	start := time.Now()
	res, err := batch.Run(ctx, cells, opts.generations, pace, false)
	if err != nil && ctx.Err() == nil {
		return err
	}
	res.Seed = opts.seed

	if !opts.noPlot {
		fmt.Println(batch.Plot(res.Population, 10, "population"))
	}
	fmt.Printf("%s %s (%s)\n", au.Green("finished:"), res, time.Since(start).Round(time.Millisecond))

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(life.Encode(res.Final)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
		fmt.Printf("%s %s\n", au.Cyan("saved"), opts.out)
	}
	return nil
}

func startBoard(opts runOptions) (*life.CellSet, error) {
	cfg := app.NewConfig()
	cfg.Seed = opts.seed
	s := app.NewSession(cfg, nil)
	switch {
	case opts.load != "":
		if err := s.LoadFile(opts.load); err != nil {
			return nil, err
		}
	case opts.pattern != "":
		if err := s.Place(opts.pattern, 0, 0); err != nil {
			return nil, err
		}
	default:
		s.Resize(float64(opts.size)*s.View().CellSize, float64(opts.size)*s.View().CellSize)
		s.Randomize()
	}
	return s.Cells(), nil
}

func sweep(ctx context.Context, au aurora.Aurora, opts runOptions) error {
	soup := batch.Soup{
		Window:    viewport.Range{MinX: 0, MinY: 0, MaxX: opts.size - 1, MaxY: opts.size - 1},
		Threshold: 0.05,
		Density:   0.6,
	}
	seeds := batch.Seeds(opts.seed, opts.soups)
	fmt.Printf("Sweeping %d soups (%d workers, %d generations)\n", len(seeds), opts.workers, opts.generations)

	start := time.Now()
	results, err := batch.Sweep(ctx, soup, seeds, opts.generations, opts.workers)
	if err != nil {
		return err
	}

	fmt.Printf("\nTop 5 results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		fmt.Printf("%2d) lifespan=%v %s\n", i+1, au.Red(results[i].Lifespan()), results[i])
	}
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	if !opts.noPlot {
		fmt.Println()
		fmt.Println(batch.Plot(best.Population, 10, fmt.Sprintf("population, seed %d", best.Seed)))
	}
	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(life.Encode(soup.Board(best.Seed))), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
		fmt.Printf("%s starting soup of seed %d to %s\n", au.Cyan("saved"), best.Seed, opts.out)
	}
	return nil
}
