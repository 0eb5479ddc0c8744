//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"epi-ca/internal/app"
	"epi-ca/internal/sims/epidemic"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sim, err := epidemic.NewSim(simCfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(simCfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Rate, simCfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("epi-ca: " + simCfg.Scenario)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
