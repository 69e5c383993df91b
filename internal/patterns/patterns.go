// Package patterns holds classic Game of Life shapes and places them onto a
// grid. Placement clips against the grid edges: offsets that land outside the
// board are skipped rather than wrapped or reported.
package patterns

import (
	"sort"

	"conway-ca/internal/core"
)

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named, immutable set of live cells.
type Pattern struct {
	name  string
	cells []Offset
}

func newPattern(name string, cells ...Offset) Pattern {
	return Pattern{name: name, cells: cells}
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Cells returns a copy of the pattern's offsets.
func (p Pattern) Cells() []Offset {
	return append([]Offset(nil), p.cells...)
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.cells {
		if c.DX+1 > w {
			w = c.DX + 1
		}
		if c.DY+1 > h {
			h = c.DY + 1
		}
	}
	return w, h
}

// Place sets the pattern's cells alive with the anchor at (x, y). Cells that
// fall outside g are dropped. Existing live cells are never cleared.
func Place(g *core.Grid, p Pattern, x, y int) {
	for _, c := range p.cells {
		if g.In(x+c.DX, y+c.DY) {
			g.Set(x+c.DX, y+c.DY, true)
		}
	}
}

// Still lifes.
var (
	Block   = newPattern("block", Offset{0, 0}, Offset{1, 0}, Offset{0, 1}, Offset{1, 1})
	Beehive = newPattern("beehive",
		Offset{1, 0}, Offset{2, 0},
		Offset{0, 1}, Offset{3, 1},
		Offset{1, 2}, Offset{2, 2},
	)
	Loaf = newPattern("loaf",
		Offset{1, 0}, Offset{2, 0},
		Offset{0, 1}, Offset{3, 1},
		Offset{1, 2}, Offset{3, 2},
		Offset{2, 3},
	)
	Boat = newPattern("boat",
		Offset{0, 0}, Offset{1, 0},
		Offset{0, 1}, Offset{2, 1},
		Offset{1, 2},
	)
)

// Period-2 oscillators.
var (
	Blinker = newPattern("blinker", Offset{0, 0}, Offset{1, 0}, Offset{2, 0})
	Toad    = newPattern("toad",
		Offset{1, 0}, Offset{2, 0}, Offset{3, 0},
		Offset{0, 1}, Offset{1, 1}, Offset{2, 1},
	)
	Beacon = newPattern("beacon",
		Offset{0, 0}, Offset{1, 0},
		Offset{0, 1},
		Offset{3, 2},
		Offset{2, 3}, Offset{3, 3},
	)
)

// Spaceships. Glider travels (+1,+1) every 4 generations, LWSS (+2,0).
var (
	Glider = newPattern("glider",
		Offset{1, 0},
		Offset{2, 1},
		Offset{0, 2}, Offset{1, 2}, Offset{2, 2},
	)
	LWSS = newPattern("lwss",
		Offset{0, 0}, Offset{3, 0},
		Offset{4, 1},
		Offset{0, 2}, Offset{4, 2},
		Offset{1, 3}, Offset{2, 3}, Offset{3, 3}, Offset{4, 3},
	)
)

// GliderGun is the Gosper glider gun: period 30, emitting one glider per
// cycle towards the bottom right.
var GliderGun = newPattern("glider-gun",
	// left block
	Offset{0, 4}, Offset{0, 5}, Offset{1, 4}, Offset{1, 5},

	// left queen bee
	Offset{10, 4}, Offset{10, 5}, Offset{10, 6},
	Offset{11, 3}, Offset{11, 7},
	Offset{12, 2}, Offset{12, 8},
	Offset{13, 2}, Offset{13, 8},
	Offset{14, 5},
	Offset{15, 3}, Offset{15, 7},
	Offset{16, 4}, Offset{16, 5}, Offset{16, 6},
	Offset{17, 5},

	// right queen bee
	Offset{20, 2}, Offset{20, 3}, Offset{20, 4},
	Offset{21, 2}, Offset{21, 3}, Offset{21, 4},
	Offset{22, 1}, Offset{22, 5},
	Offset{24, 0}, Offset{24, 1}, Offset{24, 5}, Offset{24, 6},

	// right block
	Offset{34, 2}, Offset{34, 3},
	Offset{35, 2}, Offset{35, 3},
)

var library = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Block, Beehive, Loaf, Boat, Blinker, Toad, Beacon, Glider, LWSS, GliderGun} {
		library[p.name] = p
	}
}

// Lookup finds a pattern by name.
func Lookup(name string) (Pattern, bool) {
	p, ok := library[name]
	return p, ok
}

// Names lists every known pattern in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
