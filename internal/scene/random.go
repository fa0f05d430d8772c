package scene

import (
	"image/color"
	"strconv"

	"mosaic/internal/core"
)

func init() {
	Register("random", buildRandom)
}

// RandomConfig holds parameters for the randomly seeded scene.
type RandomConfig struct {
	Cols     int
	Rows     int
	Tiles    int
	TileSize int
	Seed     int64
}

// DefaultRandomConfig returns the default configuration.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{Cols: 10, Rows: 8, Tiles: 12, TileSize: 48, Seed: 42}
}

// RandomFromMap populates a RandomConfig from a string map.
func RandomFromMap(opts map[string]string) RandomConfig {
	c := DefaultRandomConfig()
	if opts == nil {
		return c
	}
	if v, ok := opts["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := opts["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := opts["tiles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Tiles = parsed
		}
	}
	if v, ok := opts["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := opts["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// buildRandom scatters randomly colored tiles over a fixed board using a
// deterministic seed, so the same seed always yields the same mosaic.
func buildRandom(opts map[string]string) *Scene {
	c := RandomFromMap(opts)
	g := core.New(c.TileSize)
	// Establish the full board bounds up front; the scattered tiles rarely
	// hit the far corner themselves.
	g.Get(c.Cols-1, c.Rows-1)
	rng := core.NewRNG(c.Seed)
	for i := 0; i < c.Tiles; i++ {
		g.Set(rng.IntN(c.Cols), rng.IntN(c.Rows), core.NewFilled(rng.Color()))
	}
	return &Scene{
		Name:       "random",
		Grid:       g,
		Width:      c.Cols * c.TileSize,
		Height:     c.Rows * c.TileSize,
		Background: color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	}
}
