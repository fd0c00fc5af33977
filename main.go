package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	envFile := flag.String("env", ".env", "Path to a .env file")
	tile := flag.String("tile", "", "Background tile image (PNG, JPEG, WebP or TGA)")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	reduced := flag.Bool("reduced-motion", false, "Skip animations and show pages immediately")
	flag.Parse()

	cfg, err := config.Setup(*configFile, *envFile, config.Flags{
		TileImage:     *tile,
		Width:         *width,
		Height:        *height,
		ReducedMotion: *reduced,
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("config: %s", w)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Zahin Mohammad")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
