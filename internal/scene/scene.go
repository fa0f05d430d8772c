package scene

import (
	"image/color"

	"mosaic/internal/core"
)

// Scene couples a tile grid with the canvas geometry it is composed onto.
type Scene struct {
	Name       string
	Grid       *core.TileGrid
	Width      int // canvas width in pixels
	Height     int // canvas height in pixels
	Background color.RGBA
}

// Builder constructs a Scene using an optional option map.
type Builder func(opts map[string]string) *Scene

var scenes = map[string]Builder{}

// Register adds a scene builder under the provided name.
func Register(name string, b Builder) {
	if name == "" || b == nil {
		return
	}
	scenes[name] = b
}

// Scenes exposes the registry of available scene builders.
func Scenes() map[string]Builder {
	return scenes
}
