//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"forklift-ca/internal/app"
	"forklift-ca/internal/config"
	"forklift-ca/internal/core"
	"forklift-ca/internal/input"
	"forklift-ca/internal/sims/cascade"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	sim, err := buildSim(cfg)
	if err != nil {
		log.WithError(err).Fatal("cannot start viewer")
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("forklift-ca - " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildSim(cfg *app.Config) (core.Sim, error) {
	if cfg.Input != "" {
		fc := config.Default()
		fc.Markers = config.MarkerConfig{Occupied: cfg.Occupied, Empty: cfg.Empty}
		markers, err := fc.MarkerSet()
		if err != nil {
			return nil, err
		}
		g, err := input.ReadFile(cfg.Input, markers)
		if err != nil {
			return nil, err
		}
		sc := cascade.DefaultConfig()
		sc.Workers = cfg.Workers
		return cascade.NewFromGrid(g, sc), nil
	}
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}
	return factory(cfg.SimOptions()), nil
}
