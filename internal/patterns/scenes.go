package patterns

import (
	"sort"
	"strconv"
	"strings"

	"conway-ca/internal/core"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned when a placement names no known pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

// ErrUnknownScene is returned when a scene name is not registered.
var ErrUnknownScene = errors.New("unknown scene")

// Placement anchors a named pattern at (X, Y).
type Placement struct {
	Pattern string
	X, Y    int
}

// Apply places each entry in order. It stops at the first unknown pattern;
// entries before it stay on the grid.
func Apply(g *core.Grid, placements []Placement) error {
	for i, pl := range placements {
		p, ok := Lookup(pl.Pattern)
		if !ok {
			return errors.Wrapf(ErrUnknownPattern, "placement %d: %q", i, pl.Pattern)
		}
		Place(g, p, pl.X, pl.Y)
	}
	return nil
}

// DefaultScene is used when no scene is requested.
const DefaultScene = "showcase"

var scenes = map[string][]Placement{
	"showcase": showcase,
	"gun":      gun,
}

// Scene returns a copy of a built-in scene.
func Scene(name string) ([]Placement, bool) {
	s, ok := scenes[name]
	if !ok {
		return nil, false
	}
	return append([]Placement(nil), s...), true
}

// SceneNames lists the built-in scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seeder returns a function that writes the named scene into a grid.
func Seeder(name string) (func(g *core.Grid), error) {
	s, ok := Scene(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", name)
	}
	if err := Apply(core.NewBoard(), s); err != nil {
		return nil, errors.Wrapf(err, "scene %q", name)
	}
	return func(g *core.Grid) {
		// Validated above.
		_ = Apply(g, s)
	}, nil
}

var gun = []Placement{
	{"glider-gun", 2, 2},
	{"block", 80, 80},
	{"beehive", 60, 70},
	{"blinker", 85, 40},
}

var showcase = []Placement{
	// labelled rows
	{"block", 4, 4},
	{"beehive", 16, 4},
	{"loaf", 30, 4},
	{"boat", 45, 4},
	{"blinker", 4, 20},
	{"toad", 16, 20},
	{"beacon", 30, 20},
	{"glider", 4, 36},
	{"lwss", 16, 36},

	{"glider", 60, 15},
	{"block", 70, 25},
	{"lwss", 50, 50},
	{"blinker", 40, 10},
	{"beacon", 20, 50},
	{"boat", 35, 30},

	{"glider", 80, 10},
	{"block", 75, 15},
	{"beehive", 65, 35},
	{"blinker", 55, 40},
	{"loaf", 25, 60},
	{"boat", 15, 70},
	{"beacon", 45, 60},
	{"toad", 70, 70},
	{"lwss", 5, 90},

	// scatter
	{"toad", 17, 72},
	{"glider", 10, 49},
	{"loaf", 72, 51},
	{"toad", 16, 43},
	{"beacon", 32, 57},
	{"glider", 32, 81},
	{"beehive", 68, 11},
	{"glider", 92, 79},
	{"beacon", 77, 25},
	{"block", 94, 55},
	{"beacon", 57, 16},
	{"blinker", 49, 52},
	{"beehive", 35, 50},
	{"block", 7, 34},
	{"boat", 73, 78},
	{"loaf", 85, 24},
	{"beehive", 27, 43},
	{"boat", 7, 8},
	{"glider", 38, 82},
	{"loaf", 89, 32},
	{"lwss", 44, 40},
	{"loaf", 3, 81},
	{"blinker", 95, 16},
	{"block", 53, 23},
	{"loaf", 59, 14},
	{"lwss", 19, 27},
	{"loaf", 34, 54},
	{"blinker", 16, 24},
	{"beehive", 4, 32},
	{"blinker", 47, 8},
	{"toad", 28, 72},
	{"boat", 68, 52},
	{"block", 70, 46},
	{"beehive", 47, 45},
	{"beehive", 79, 9},
	{"boat", 8, 35},
	{"loaf", 56, 14},
	{"boat", 91, 16},
	{"beehive", 55, 31},
	{"boat", 9, 49},
	{"boat", 6, 69},
	{"loaf", 87, 19},
	{"beacon", 48, 88},
	{"loaf", 1, 25},
	{"beehive", 14, 7},
	{"boat", 76, 81},
	{"toad", 10, 27},
	{"boat", 90, 42},
	{"lwss", 83, 70},
	{"block", 31, 23},
	{"blinker", 49, 19},
	{"beehive", 10, 24},
	{"blinker", 35, 67},
	{"beehive", 92, 76},
	{"lwss", 77, 26},
	{"blinker", 95, 79},
	{"beehive", 7, 39},
	{"glider", 55, 70},
	{"beacon", 78, 62},
	{"loaf", 89, 54},

	{"glider-gun", 10, 60},
}

// ParsePlacement reads a placement written as "name@x,y".
func ParsePlacement(s string) (Placement, error) {
	name, at, ok := strings.Cut(s, "@")
	if !ok || name == "" {
		return Placement{}, errors.Errorf("placement %q: want name@x,y", s)
	}
	xs, ys, ok := strings.Cut(at, ",")
	if !ok {
		return Placement{}, errors.Errorf("placement %q: want name@x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Placement{}, errors.Wrapf(err, "placement %q: x", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Placement{}, errors.Wrapf(err, "placement %q: y", s)
	}
	if _, known := Lookup(name); !known {
		return Placement{}, errors.Wrapf(ErrUnknownPattern, "placement %q", s)
	}
	return Placement{Pattern: name, X: x, Y: y}, nil
}
