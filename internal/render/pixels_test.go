package render

import (
	"image"
	"image/color"
	"testing"

	"mosaic/internal/core"
)

func TestComposeUntouchedGridLeavesBackground(t *testing.T) {
	bg := color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	Compose(dst, core.New(2), bg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := dst.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, expected background %v", x, y, got, bg)
			}
		}
	}
}

func TestComposePlacesTilesAndKeepsBackgroundUnderEmpty(t *testing.T) {
	bg := color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	red := color.RGBA{R: 0xff, A: 0xff}

	g := core.New(2)
	g.Set(1, 0, core.NewFilled(red))
	g.Get(1, 1) // grow to a 2x2 board

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Compose(dst, g, bg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := bg
			if x >= 2 && y < 2 {
				want = red
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestComposeCursorWrapsAtCanvasWidth(t *testing.T) {
	bg := color.RGBA{A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	// A single grid row of three tiles on a canvas two tiles wide: the
	// third tile must wrap into the next band.
	g := core.New(2)
	g.Set(2, 0, core.NewFilled(blue))

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Compose(dst, g, bg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := bg
			if x < 2 && y >= 2 {
				want = blue
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}
