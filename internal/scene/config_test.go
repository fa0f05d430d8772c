package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/colornames"

	"mosaic/internal/core"
)

func TestLoadSceneFile(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Scene)
	}{
		{
			name: "valid scene",
			yamlContent: `
name: demo
tileSize: 60
screen:
  width: 480
  height: 360
background: dimgray
tiles:
  - col: 0
    row: 0
    color: white
  - col: 3
    row: 1
    color: crimson
`,
			validate: func(t *testing.T, s *Scene) {
				if s.Name != "demo" {
					t.Errorf("name = %q, expected demo", s.Name)
				}
				if s.Width != 480 || s.Height != 360 {
					t.Errorf("screen = %dx%d, expected 480x360", s.Width, s.Height)
				}
				if s.Background != colornames.Dimgray {
					t.Errorf("background = %v, expected dimgray", s.Background)
				}
				if s.Grid.ColumnCount() != 4 || s.Grid.RowCount() != 2 {
					t.Errorf("grid bounds = (%d, %d), expected (2, 4)", s.Grid.RowCount(), s.Grid.ColumnCount())
				}
				tile, ok := s.Grid.Get(3, 1).(*core.Filled)
				if !ok {
					t.Fatalf("seeded cell is %T, expected *core.Filled", s.Grid.Get(3, 1))
				}
				if tile.Color != colornames.Crimson {
					t.Errorf("seeded color = %v, expected crimson", tile.Color)
				}
				if tile.Width() != 60 || tile.Height() != 60 {
					t.Errorf("seeded tile size = %dx%d, expected 60x60", tile.Width(), tile.Height())
				}
			},
		},
		{
			name: "screen derived from grid bounds",
			yamlContent: `
tileSize: 10
tiles:
  - col: 2
    row: 1
    color: white
`,
			validate: func(t *testing.T, s *Scene) {
				if s.Width != 30 || s.Height != 20 {
					t.Errorf("derived screen = %dx%d, expected 30x20", s.Width, s.Height)
				}
				if s.Name != "scene" {
					t.Errorf("name = %q, expected fallback scene", s.Name)
				}
			},
		},
		{
			name: "missing tile size",
			yamlContent: `
screen:
  width: 100
  height: 100
`,
			wantErr:     true,
			errContains: "tileSize",
		},
		{
			name: "unknown tile color",
			yamlContent: `
tileSize: 10
tiles:
  - col: 0
    row: 0
    color: blurple
`,
			wantErr:     true,
			errContains: "unknown color",
		},
		{
			name: "unknown background color",
			yamlContent: `
tileSize: 10
background: blurple
tiles:
  - col: 0
    row: 0
    color: white
`,
			wantErr:     true,
			errContains: "unknown background",
		},
		{
			name: "negative screen size",
			yamlContent: `
tileSize: 10
screen:
  width: -5
  height: 100
tiles:
  - col: 0
    row: 0
    color: white
`,
			wantErr:     true,
			errContains: "screen size",
		},
		{
			name: "no tiles and no screen",
			yamlContent: `
tileSize: 10
`,
			wantErr:     true,
			errContains: "screen size or at least one tile",
		},
		{
			name:        "malformed yaml",
			yamlContent: "tileSize: [",
			wantErr:     true,
			errContains: "parse scene YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("write temp scene: %v", err)
			}

			s, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got scene %+v", s)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, s)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
