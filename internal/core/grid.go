package core

// Grid stores a fixed-size 2D field of boolean cells in row-major order.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]bool, w*h)}
}

// NewBoard allocates a grid with the simulation's fixed dimensions.
func NewBoard() *Grid { return NewGrid(Width, Height) }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Get returns the cell at (x, y). Coordinates outside the grid read as dead.
func (g *Grid) Get(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	return g.data[y*g.w+x]
}

// Set writes the cell at (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.In(x, y) {
		return
	}
	g.data[y*g.w+x] = alive
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) bool {
	if g.w != src.w || g.h != src.h {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
