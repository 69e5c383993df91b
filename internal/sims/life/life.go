package life

import "conway-ca/internal/core"

// Neighbors counts live cells in the Moore neighbourhood of (x, y). The grid
// does not wrap: cells beyond the edge are not counted.
func Neighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a single cell.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step returns the next generation of cur as a new grid. cur is not modified.
func Step(cur *core.Grid) *core.Grid {
	s := cur.Size()
	next := core.NewGrid(s.W, s.H)
	StepInto(next, cur)
	return next
}

// StepInto writes the next generation of cur into dst. dst must have the same
// dimensions as cur and must not alias it.
func StepInto(dst, cur *core.Grid) {
	s := cur.Size()
	cells := dst.Cells()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			cells[dst.Index(x, y)] = Rule(cur.Get(x, y), Neighbors(cur, x, y))
		}
	}
}

// Seeder writes an initial pattern into an empty grid.
type Seeder func(g *core.Grid)

// Life implements Conway's Game of Life on a bounded, non-wrapping grid.
type Life struct {
	name       string
	cur        *core.Grid
	nxt        *core.Grid
	seed       Seeder
	generation int
}

// New returns a Life simulation on the fixed board, seeded by seed.
func New(name string, seed Seeder) *Life {
	return NewSized(name, core.Width, core.Height, seed)
}

// NewSized returns a Life simulation with the provided dimensions.
func NewSized(name string, w, h int, seed Seeder) *Life {
	l := &Life{
		name: name,
		cur:  core.NewGrid(w, h),
		nxt:  core.NewGrid(w, h),
		seed: seed,
	}
	l.Reset()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current generation.
func (l *Life) Cells() *core.Grid { return l.cur }

// Generation reports how many steps have run since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Reset clears the board and reapplies the seed pattern.
func (l *Life) Reset() {
	l.cur.Clear()
	l.generation = 0
	if l.seed != nil {
		l.seed(l.cur)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	StepInto(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
