package main

import (
	"log"
	"strings"

	"infinite-life/internal/app"
	"infinite-life/internal/core"
	"infinite-life/internal/term"

	"github.com/integrii/flaggy"
)

// Patterns are stamped a few cells away from the top-left corner of the field.
const patternMargin = 4

func main() {
	cfg := app.NewConfig()
	noColor := false

	flaggy.SetName("life-term")
	flaggy.SetDescription("Infinite Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.IntervalMS, "i", "interval", "Milliseconds between generations")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Pattern to seed ["+strings.Join(core.PatternNames(), "|")+"]")
	flaggy.String(&cfg.Load, "l", "load", "Layout file to load at startup")
	flaggy.String(&cfg.File, "f", "file", "Layout file used by export and import")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for noise randomization")
	flaggy.Bool(&noColor, "m", "no-color", "Disable colored output")
	flaggy.Parse()

	if cfg.Pattern != "" {
		if _, ok := core.LookupPattern(cfg.Pattern); !ok {
			flaggy.ShowHelpAndExit("unknown pattern")
		}
	}

	session := app.NewSession(cfg, nil)
	if cfg.Load != "" {
		if err := session.LoadFile(cfg.Load); err != nil {
			log.Printf("startup: %v", err)
		}
	}
	if cfg.Pattern != "" {
		if err := session.Place(cfg.Pattern, patternMargin, patternMargin); err != nil {
			log.Fatalf("startup: %v", err)
		}
	}

	if err := term.New(session, !noColor).Run(); err != nil {
		log.Fatal(err)
	}
}
