package render

import (
	"image"
	"image/color"

	"mosaic/internal/core"
)

// Compose paints the grid onto dst. Tiles are visited in row-major order
// and placed with a running cursor that advances by the grid's tile size,
// wrapping to the next band when it reaches the canvas width. Transparent
// tile pixels leave the background untouched.
func Compose(dst *image.RGBA, g *core.TileGrid, bg color.RGBA) {
	fillRGBA(dst, bg)
	size := g.TileSize()
	if size <= 0 {
		return
	}
	width := dst.Rect.Dx()
	x, y := 0, 0
	g.Each(func(col, row int, t core.Tile) bool {
		blit(dst, t.Draw(), x, y)
		x += size
		if x >= width {
			x = 0
			y += size
		}
		return true
	})
}

// fillRGBA clears the canvas to the given color.
func fillRGBA(dst *image.RGBA, c color.RGBA) {
	pix := dst.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// blit copies src onto dst at (x, y), skipping fully transparent source
// pixels and anything outside the canvas.
func blit(dst, src *image.RGBA, x, y int) {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	dw := dst.Rect.Dx()
	dh := dst.Rect.Dy()
	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= dh {
			continue
		}
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= dw {
				continue
			}
			si := src.PixOffset(src.Rect.Min.X+sx, src.Rect.Min.Y+sy)
			if src.Pix[si+3] == 0 {
				continue
			}
			di := dst.PixOffset(dst.Rect.Min.X+dx, dst.Rect.Min.Y+dy)
			dst.Pix[di+0] = src.Pix[si+0]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+2]
			dst.Pix[di+3] = src.Pix[si+3]
		}
	}
}
