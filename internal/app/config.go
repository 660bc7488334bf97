package app

import (
	"flag"

	"infinite-life/pkg/viewport"
)

const (
	// MinIntervalMS and MaxIntervalMS bound the generation interval.
	MinIntervalMS = 10
	MaxIntervalMS = 1000
	// DefaultLayoutFile is the export/import path when none is configured.
	DefaultLayoutFile = "game-of-life.txt"
)

// Config represents the command-line parameters for the application.
type Config struct {
	IntervalMS int
	CellSize   float64
	Width      int
	Height     int
	HUDWidth   int
	Pattern    string
	Load       string
	File       string
	Seed       int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		IntervalMS: 100,
		CellSize:   viewport.DefaultCellSize,
		Width:      960,
		Height:     640,
		HUDWidth:   220,
		File:       DefaultLayoutFile,
		Seed:       42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "initial cell size in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named pattern to seed at the origin")
	fs.StringVar(&c.Load, "load", c.Load, "layout file to load at startup")
	fs.StringVar(&c.File, "file", c.File, "layout file used by export and import")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for noise randomization")
}
