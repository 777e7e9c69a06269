//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	l, ok := factory(cfg.SimOptions()).(*life.Life)
	if !ok {
		log.Fatalf("sim %q is not interactive", cfg.Sim)
	}

	game := app.New(life.NewSimulation(l), cfg)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
