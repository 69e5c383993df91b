package app

import (
	"flag"

	"conway-ca/internal/patterns"
	"conway-ca/internal/sims/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scene string
	HUD   bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Scene: patterns.DefaultScene}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial pattern layout")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the generation/population overlay")
}

// Validate reports whether the configuration names a known scene.
func (c *Config) Validate() error {
	if _, ok := patterns.Scene(c.Scene); !ok {
		return errors.Wrapf(patterns.ErrUnknownScene, "scene %q (have %v)", c.Scene, patterns.SceneNames())
	}
	return nil
}

// NewSim builds the Life simulation seeded with the configured scene.
func (c *Config) NewSim() (*life.Life, error) {
	seed, err := patterns.Seeder(c.Scene)
	if err != nil {
		return nil, err
	}
	return life.New(c.Scene, seed), nil
}
