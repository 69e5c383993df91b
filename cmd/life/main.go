//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway-ca/internal/app"
	"conway-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("scene %s: %d live cells", sim.Name(), sim.Population())

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("conway-ca — " + sim.Name())
	ebiten.SetWindowSize(core.Width*core.Scale, core.Height*core.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
