package patterns

import (
	"slices"
	"testing"

	"conway-ca/internal/core"

	"github.com/pkg/errors"
)

func TestLibraryShapes(t *testing.T) {
	cases := []struct {
		name  string
		cells int
		w, h  int
	}{
		{"block", 4, 2, 2},
		{"beehive", 6, 4, 3},
		{"loaf", 7, 4, 4},
		{"boat", 5, 3, 3},
		{"blinker", 3, 3, 1},
		{"toad", 6, 4, 2},
		{"beacon", 6, 4, 4},
		{"glider", 5, 3, 3},
		{"lwss", 9, 5, 4},
		{"glider-gun", 36, 36, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := Lookup(tc.name)
			if !ok {
				t.Fatalf("pattern %q not registered", tc.name)
			}
			if got := len(p.Cells()); got != tc.cells {
				t.Fatalf("expected %d cells, got %d", tc.cells, got)
			}
			w, h := p.Bounds()
			if w != tc.w || h != tc.h {
				t.Fatalf("expected bounds %dx%d, got %dx%d", tc.w, tc.h, w, h)
			}
			seen := map[Offset]bool{}
			for _, c := range p.Cells() {
				if seen[c] {
					t.Fatalf("duplicate offset %+v", c)
				}
				seen[c] = true
			}
		})
	}
	if got := len(Names()); got != len(cases) {
		t.Fatalf("expected %d registered patterns, got %d", len(cases), got)
	}
	if !slices.IsSorted(Names()) {
		t.Fatal("Names must be sorted")
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	cells := Glider.Cells()
	cells[0] = Offset{DX: 99, DY: 99}
	if Glider.Cells()[0] == cells[0] {
		t.Fatal("mutating Cells result must not alter the pattern")
	}
}

func TestPlaceWritesOffsetsAtAnchor(t *testing.T) {
	g := core.NewBoard()
	Place(g, Glider, 10, 20)

	if got := g.Population(); got != 5 {
		t.Fatalf("expected 5 live cells, got %d", got)
	}
	for _, c := range Glider.Cells() {
		if !g.Get(10+c.DX, 20+c.DY) {
			t.Fatalf("expected (%d,%d) alive", 10+c.DX, 20+c.DY)
		}
	}
}

func TestPlaceClipsGliderGunAtEdge(t *testing.T) {
	g := core.NewBoard()
	x, y := core.Width-20, core.Height-5
	Place(g, GliderGun, x, y)

	want := 0
	for _, c := range GliderGun.Cells() {
		if x+c.DX < core.Width && y+c.DY < core.Height {
			want++
			if !g.Get(x+c.DX, y+c.DY) {
				t.Fatalf("in-bounds offset %+v not set", c)
			}
		}
	}
	if want != 8 {
		t.Fatalf("test setup expected 8 in-bounds cells, computed %d", want)
	}
	if got := g.Population(); got != want {
		t.Fatalf("expected only %d in-bounds cells alive, got %d", want, got)
	}
}

func TestPlaceNegativeAnchorClips(t *testing.T) {
	g := core.NewBoard()
	Place(g, Block, -1, -1)
	if got := g.Population(); got != 1 || !g.Get(0, 0) {
		t.Fatalf("expected only (0,0) alive, population=%d", got)
	}
}

func TestPlaceIsUnion(t *testing.T) {
	a := core.NewBoard()
	Place(a, Block, 5, 5)
	Place(a, Blinker, 5, 6)

	b := core.NewBoard()
	Place(b, Blinker, 5, 6)
	Place(b, Block, 5, 5)

	if !a.Equal(b) {
		t.Fatal("overlapping placements must commute")
	}
	// block {5..6}x{5..6} plus blinker {5..7}x{6}, overlap (5,6),(6,6)
	if got := a.Population(); got != 5 {
		t.Fatalf("expected union of 5 cells, got %d", got)
	}
}

func TestApplyRejectsUnknownPattern(t *testing.T) {
	g := core.NewBoard()
	err := Apply(g, []Placement{
		{"block", 0, 0},
		{"pulsar", 10, 10},
		{"block", 20, 20},
	})
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	if !g.Get(0, 0) {
		t.Fatal("placements before the failure must stay applied")
	}
	if g.Get(20, 20) {
		t.Fatal("placements after the failure must not run")
	}
}

func TestBuiltInScenesApplyCleanly(t *testing.T) {
	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			seed, err := Seeder(name)
			if err != nil {
				t.Fatalf("Seeder(%q): %v", name, err)
			}
			g := core.NewBoard()
			seed(g)
			if g.Population() == 0 {
				t.Fatal("scene placed no cells")
			}
		})
	}
}

func TestShowcaseContainsGliderGun(t *testing.T) {
	s, ok := Scene(DefaultScene)
	if !ok {
		t.Fatal("default scene missing")
	}
	if !slices.Contains(s, Placement{"glider-gun", 10, 60}) {
		t.Fatal("showcase should anchor a glider gun at (10,60)")
	}
}

func TestSceneReturnsCopy(t *testing.T) {
	s, _ := Scene("gun")
	s[0].Pattern = "nope"
	again, _ := Scene("gun")
	if again[0].Pattern == "nope" {
		t.Fatal("Scene must return a copy")
	}
}

func TestSeederUnknownScene(t *testing.T) {
	if _, err := Seeder("void"); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("expected ErrUnknownScene, got %v", err)
	}
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("glider@10, 20")
	if err != nil {
		t.Fatal(err)
	}
	if p != (Placement{Pattern: "glider", X: 10, Y: 20}) {
		t.Fatalf("unexpected placement %+v", p)
	}

	for _, bad := range []string{"glider", "@1,2", "glider@1", "glider@x,2", "glider@1,y"} {
		if _, err := ParsePlacement(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
	if _, err := ParsePlacement("pulsar@1,2"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}
