package scene

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"mosaic/internal/core"
)

// File is the on-disk YAML form of a scene.
type File struct {
	Name       string     `yaml:"name"`
	TileSize   int        `yaml:"tileSize"`
	Screen     ScreenSize `yaml:"screen"`
	Background string     `yaml:"background"`
	Tiles      []SeedTile `yaml:"tiles"`
}

// ScreenSize is the canvas geometry in pixels. A zero value means "derive
// from the grid bounds".
type ScreenSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SeedTile places one filled tile before the first compose pass.
type SeedTile struct {
	Col   int    `yaml:"col"`
	Row   int    `yaml:"row"`
	Color string `yaml:"color"`
}

// Load reads a YAML scene file and builds the grid it describes.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	g := core.New(f.TileSize)
	for _, s := range f.Tiles {
		c, _ := lookupColor(s.Color)
		g.Set(s.Col, s.Row, core.NewFilled(c))
	}

	bg := color.RGBA{A: 0xff}
	if f.Background != "" {
		bg, _ = lookupColor(f.Background)
	}

	w, h := f.Screen.Width, f.Screen.Height
	if w == 0 {
		w = g.ColumnCount() * f.TileSize
	}
	if h == 0 {
		h = g.RowCount() * f.TileSize
	}

	name := f.Name
	if name == "" {
		name = "scene"
	}
	return &Scene{Name: name, Grid: g, Width: w, Height: h, Background: bg}, nil
}

func validate(f *File) error {
	if f.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %d", f.TileSize)
	}
	if f.Screen.Width < 0 || f.Screen.Height < 0 {
		return fmt.Errorf("screen size must not be negative, got %dx%d", f.Screen.Width, f.Screen.Height)
	}
	if (f.Screen.Width == 0 || f.Screen.Height == 0) && len(f.Tiles) == 0 {
		return fmt.Errorf("scene needs an explicit screen size or at least one tile")
	}
	if f.Background != "" {
		if _, ok := lookupColor(f.Background); !ok {
			return fmt.Errorf("unknown background color %q", f.Background)
		}
	}
	for i, s := range f.Tiles {
		if _, ok := lookupColor(s.Color); !ok {
			return fmt.Errorf("tile %d: unknown color %q", i, s.Color)
		}
	}
	return nil
}

func lookupColor(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	return c, ok
}
