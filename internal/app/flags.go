package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scene string
	Scale int
	Seed  int64
	Tiles int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "default", Scale: 1, Seed: 42, Tiles: 12}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene name or path to a .yaml scene file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random scene")
	fs.IntVar(&c.Tiles, "tiles", c.Tiles, "tile count for the random scene")
}
