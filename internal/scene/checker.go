package scene

import (
	"image/color"
	"strconv"

	"mosaic/internal/core"
)

func init() {
	Register("checker", buildChecker)
}

// CheckerConfig holds parameters for the checkerboard scene.
type CheckerConfig struct {
	Cols     int
	Rows     int
	TileSize int
}

// DefaultCheckerConfig returns the default configuration.
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{Cols: 8, Rows: 8, TileSize: 40}
}

// CheckerFromMap populates a CheckerConfig from a string map.
func CheckerFromMap(opts map[string]string) CheckerConfig {
	c := DefaultCheckerConfig()
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
	if v, ok := opts["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	return c
}

// buildChecker fills alternating cells with white tiles, leaving the other
// half to the grid's lazy empty fill.
func buildChecker(opts map[string]string) *Scene {
	c := CheckerFromMap(opts)
	g := core.New(c.TileSize)
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			if (col+row)%2 == 0 {
				g.Set(col, row, core.NewFilled(color.White))
			}
		}
	}
	// Touch the far corner so the bounds span the full board even when the
	// last cell landed on an unfilled square.
	g.Get(c.Cols-1, c.Rows-1)
	return &Scene{
		Name:       "checker",
		Grid:       g,
		Width:      c.Cols * c.TileSize,
		Height:     c.Rows * c.TileSize,
		Background: color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	}
}
