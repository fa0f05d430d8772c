//go:build ebiten

package app

import (
	"image"
	"time"

	"mosaic/internal/render"
	"mosaic/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a composed scene to the ebiten.Game interface. The canvas is
// composed once up front; the frame loop only re-blits it.
type Game struct {
	scene   *scene.Scene
	rebuild func(seed int64) *scene.Scene
	canvas  *image.RGBA
	painter *render.Painter
	scale   int
	seed    int64
}

// New composes the scene and wraps it for display. rebuild may be nil for
// scenes that cannot be reseeded; when set it must return a scene with the
// same canvas geometry.
func New(s *scene.Scene, rebuild func(seed int64) *scene.Scene, scale int, seed int64) *Game {
	g := &Game{
		scene:   s,
		rebuild: rebuild,
		painter: render.NewPainter(s.Width, s.Height),
		scale:   scale,
		seed:    seed,
	}
	g.compose()
	return g
}

func (g *Game) compose() {
	g.canvas = image.NewRGBA(image.Rect(0, 0, g.scene.Width, g.scene.Height))
	render.Compose(g.canvas, g.scene.Grid, g.scene.Background)
}

// Update handles the quit and reseed keys.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.rebuild != nil && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.scene = g.rebuild(g.seed)
		g.compose()
	}
	return nil
}

// Draw renders the composed canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.canvas, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width * g.scale, g.scene.Height * g.scale
}
