//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"plasma/internal/app"
	"plasma/internal/core"
	"plasma/internal/plasma"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 220

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pc, err := cfg.Plasma()
	if err != nil {
		log.Fatal(err)
	}
	face, err := cfg.Face()
	if err != nil {
		log.Fatalf("load font: %v", err)
	}
	surface := core.Size{W: cfg.SurfaceW, H: cfg.SurfaceH}
	session, err := plasma.NewSession(pc.ForSurface(surface), plasma.WithOverlay(plasma.NewOverlay(face)))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("plasma")
	ebiten.SetTPS(cfg.RefreshHz)
	ebiten.SetWindowSize(surface.W, surface.H)

	if err := ebiten.RunGame(app.New(session, hudWidth)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
