package core

import (
	"image"
	"image/color"
)

// Tile is the visual content of one grid cell. A tile knows its own pixel
// dimensions and renders itself into an RGBA image of exactly that size.
type Tile interface {
	Width() int
	Height() int
	Resize(w, h int)
	Draw() *image.RGBA
}

// geom carries the mutable pixel dimensions shared by the tile variants.
type geom struct {
	w, h int
}

// Width returns the tile width in pixels.
func (g *geom) Width() int { return g.w }

// Height returns the tile height in pixels.
func (g *geom) Height() int { return g.h }

// Resize sets the tile dimensions in pixels.
func (g *geom) Resize(w, h int) {
	g.w = w
	g.h = h
}

// Filled is a tile painted as a solid rectangle of its color.
type Filled struct {
	geom
	Color color.Color
}

// NewFilled returns a filled tile in the given color. The grid assigns the
// dimensions when the tile is stored.
func NewFilled(c color.Color) *Filled {
	return &Filled{Color: c}
}

// Draw renders the tile as a solid width*height rectangle.
func (t *Filled) Draw() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.w, t.h))
	r, g, b, a := t.Color.RGBA()
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = uint8(r >> 8)
		pix[i+1] = uint8(g >> 8)
		pix[i+2] = uint8(b >> 8)
		pix[i+3] = uint8(a >> 8)
	}
	return img
}

// Empty is a tile that occupies layout space but paints nothing.
type Empty struct {
	geom
}

// NewEmpty returns an empty tile.
func NewEmpty() *Empty { return &Empty{} }

// Draw renders a fully transparent width*height region.
func (t *Empty) Draw() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, t.w, t.h))
}
