package scene

import (
	"image/color"

	"mosaic/internal/core"
)

func init() {
	Register("default", buildDefault)
}

// buildDefault seeds the demo mosaic: white tiles at (0,0) and (5,7), a
// red tile at (2,2) and a black tile at (4,4) on an 80px grid.
func buildDefault(map[string]string) *Scene {
	g := core.New(80)
	g.Set(0, 0, core.NewFilled(color.White))
	g.Set(5, 7, core.NewFilled(color.White))
	g.Set(2, 2, core.NewFilled(color.RGBA{R: 0xff, A: 0xff}))
	g.Set(4, 4, core.NewFilled(color.Black))
	return &Scene{
		Name:       "default",
		Grid:       g,
		Width:      g.ColumnCount() * g.TileSize(),
		Height:     g.RowCount() * g.TileSize(),
		Background: color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	}
}
