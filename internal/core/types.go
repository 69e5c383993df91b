package core

import "time"

const (
	// Width is the number of grid columns.
	Width = 100
	// Height is the number of grid rows.
	Height = 100
	// Scale is the side length in pixels of one rendered cell.
	Scale = 5
	// FrameDelay is the wall-clock time between generations.
	FrameDelay = 100 * time.Millisecond
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Cells() *Grid
}
