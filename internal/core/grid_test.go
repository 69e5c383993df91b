package core

import "testing"

func TestGridBoundsPolicy(t *testing.T) {
	g := NewGrid(4, 3)

	g.Set(-1, 0, true)
	g.Set(4, 0, true)
	g.Set(0, 3, true)
	if got := g.Population(); got != 0 {
		t.Fatalf("out-of-bounds writes must be dropped, population=%d", got)
	}
	if g.Get(-1, -1) || g.Get(10, 10) {
		t.Fatal("out-of-bounds reads must report dead")
	}

	g.Set(3, 2, true)
	if !g.Get(3, 2) {
		t.Fatal("expected (3,2) alive")
	}
	if idx := g.Index(3, 2); !g.Cells()[idx] {
		t.Fatalf("Index(3,2)=%d does not address the written cell", idx)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -5)
	if s := g.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", s.W, s.H)
	}
}

func TestNewBoardUsesFixedSize(t *testing.T) {
	g := NewBoard()
	if s := g.Size(); s.W != Width || s.H != Height {
		t.Fatalf("board size %dx%d, expected %dx%d", s.W, s.H, Width, Height)
	}
	if len(g.Cells()) != Width*Height {
		t.Fatalf("board has %d cells", len(g.Cells()))
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 2, true)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone must equal source")
	}
	c.Set(0, 0, true)
	if g.Get(0, 0) {
		t.Fatal("clone must not share storage with source")
	}
	if c.Equal(g) {
		t.Fatal("grids with different cells must not be equal")
	}
	if NewGrid(5, 4).Equal(NewGrid(4, 5)) {
		t.Fatal("grids with different sizes must not be equal")
	}

	if !g.CopyFrom(c) || !g.Equal(c) {
		t.Fatal("CopyFrom should overwrite with matching dimensions")
	}
	if g.CopyFrom(NewGrid(2, 2)) {
		t.Fatal("CopyFrom must reject mismatched dimensions")
	}

	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}
