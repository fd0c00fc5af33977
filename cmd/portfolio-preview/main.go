package main

import (
	"flag"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/preview"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/tiles"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	tile := flag.String("tile", "", "Tile source image")
	addr := flag.String("addr", "", "Listen address (default :$PORT or :8080)")
	flag.Parse()

	// .env is already loaded by the autoload import.
	cfg, err := config.Setup(*configFile, "", config.Flags{TileImage: *tile, Addr: *addr})
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("config: %s", w)
	}

	src, name := tiles.Source(cfg.TileImage)
	srv := preview.New(cfg, src, name)
	if err := srv.Run(cfg.PreviewAddr); err != nil {
		log.Fatal(err)
	}
}
