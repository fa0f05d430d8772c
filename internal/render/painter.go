//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a composed RGBA canvas into a single ebiten image.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for a canvas of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the canvas pixels and draws them scaled onto dst.
func (p *Painter) Blit(dst *ebiten.Image, canvas *image.RGBA, scale int) {
	if canvas.Rect.Dx() != p.w || canvas.Rect.Dy() != p.h {
		return
	}
	p.img.WritePixels(canvas.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
