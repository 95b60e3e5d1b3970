//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ternary-ca/internal/app"
	"ternary-ca/internal/config"
	"ternary-ca/internal/core"
	_ "ternary-ca/internal/sims/ternary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	cfg := app.NewConfig()
	cfg.ApplySettings(settings)
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
	}

	sim := factory(cfg.SimOptions())
	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("ternary-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
