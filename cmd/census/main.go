// Command census runs a scene headlessly and prints the population at a
// fixed generation interval.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"conway-ca/internal/core"
	"conway-ca/internal/patterns"
	"conway-ca/internal/sims/life"

	"github.com/pkg/errors"
)

type placementList []string

func (l *placementList) String() string {
	return strings.Join(*l, ",")
}

func (l *placementList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("census", flag.ContinueOnError)
	scene := fs.String("scene", patterns.DefaultScene, "initial pattern layout")
	steps := fs.Int("steps", 300, "generations to simulate")
	every := fs.Int("every", 30, "report interval in generations")
	var extra placementList
	fs.Var(&extra, "place", "extra pattern in name@x,y form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *steps < 0 {
		return errors.Errorf("steps must be non-negative, got %d", *steps)
	}
	if *every <= 0 {
		*every = 1
	}

	placements, ok := patterns.Scene(*scene)
	if !ok {
		return errors.Wrapf(patterns.ErrUnknownScene, "%q", *scene)
	}
	for _, s := range extra {
		p, err := patterns.ParsePlacement(s)
		if err != nil {
			return err
		}
		placements = append(placements, p)
	}

	board := core.NewBoard()
	if err := patterns.Apply(board, placements); err != nil {
		return err
	}
	sim := life.New(*scene, func(g *core.Grid) { g.CopyFrom(board) })

	fmt.Fprintf(w, "scene %s, %d placements\n", sim.Name(), len(placements))
	fmt.Fprintf(w, "%6s %6s\n", "gen", "pop")
	report := func() {
		fmt.Fprintf(w, "%6d %6d\n", sim.Generation(), sim.Population())
	}
	report()
	for i := 1; i <= *steps; i++ {
		sim.Step()
		if i%*every == 0 || i == *steps {
			report()
		}
	}
	return nil
}
