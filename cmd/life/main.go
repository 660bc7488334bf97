//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"infinite-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	canvasW := cfg.Width - cfg.HUDWidth
	if canvasW < 1 {
		canvasW = cfg.Width
	}
	session := app.NewSession(cfg, nil)
	session.Resize(float64(canvasW), float64(cfg.Height))

	if cfg.Load != "" {
		if err := session.LoadFile(cfg.Load); err != nil {
			log.Printf("startup: %v", err)
		}
	}
	if cfg.Pattern != "" {
		if err := session.Place(cfg.Pattern, 0, 0); err != nil {
			log.Fatalf("startup: %v", err)
		}
		session.Controller().CenterOn(0, 0, float64(canvasW), float64(cfg.Height))
	}

	game := app.New(session, cfg.HUDWidth)

	ebiten.SetWindowTitle("infinite-life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
