//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"strings"

	"mosaic/internal/app"
	"mosaic/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var s *scene.Scene
	var rebuild func(seed int64) *scene.Scene

	if strings.HasSuffix(cfg.Scene, ".yaml") || strings.HasSuffix(cfg.Scene, ".yml") {
		loaded, err := scene.Load(cfg.Scene)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		s = loaded
	} else {
		builder, ok := scene.Scenes()[cfg.Scene]
		if !ok {
			log.Fatalf("unknown scene %q", cfg.Scene)
		}
		opts := map[string]string{
			"seed":  strconv.FormatInt(cfg.Seed, 10),
			"tiles": strconv.Itoa(cfg.Tiles),
		}
		s = builder(opts)
		rebuild = func(seed int64) *scene.Scene {
			opts["seed"] = strconv.FormatInt(seed, 10)
			return builder(opts)
		}
	}

	game := app.New(s, rebuild, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("mosaic — " + s.Name)
	ebiten.SetWindowSize(s.Width*cfg.Scale, s.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
