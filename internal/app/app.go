//go:build ebiten

package app

import (
	"conway-ca/internal/core"
	"conway-ca/internal/render"
	"conway-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim       core.Sim
	frame     render.Frame
	presenter *render.Presenter
	hud       *ui.HUD
	clock     *core.FixedStep

	// err holds a presentation failure until the next Update can return it.
	err error
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:       sim,
		frame:     render.NewFrame(),
		presenter: render.NewBoardPresenter(),
		hud:       ui.NewHUD(sim, cfg.HUD),
		clock:     core.NewFixedStep(core.FrameDelay),
	}
}

// Update handles input and advances the simulation once per frame delay.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.hud.Update()

	if g.clock.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	if err := render.Draw(g.frame, g.sim.Cells()); err != nil {
		g.err = err
		return
	}
	if err := g.presenter.Present(screen, g.frame); err != nil {
		g.err = err
		return
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * core.Scale, s.H * core.Scale
}
