//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"conway-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudHeight = 18

type statsProvider interface {
	Generation() int
	Population() int
}

// HUD renders a one-line status strip across the top of the board.
type HUD struct {
	sim     core.Sim
	visible bool
	panel   *ebiten.Image
	line    string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, visible bool) *HUD {
	return &HUD{sim: sim, visible: visible}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update refreshes the cached status line.
func (h *HUD) Update() {
	if !h.visible {
		return
	}
	h.line = h.sim.Name()
	if stats, ok := h.sim.(statsProvider); ok {
		h.line = fmt.Sprintf("%s  gen %d  pop %d", h.sim.Name(), stats.Generation(), stats.Population())
	}
}

// Draw paints the status strip over the top edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || h.line == "" {
		return
	}
	w := screen.Bounds().Dx()
	if h.panel == nil || h.panel.Bounds().Dx() != w {
		h.panel = ebiten.NewImage(w, hudHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.panel, nil)
	text.Draw(screen, h.line, basicfont.Face7x13, 4, hudHeight-5, color.White)
}
