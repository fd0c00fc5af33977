package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/tiles"
)

type job struct {
	page    page.Page
	density int
}

func main() {
	configFile := flag.String("config", "", "Path to a JSON config file")
	envFile := flag.String("env", ".env", "Path to a .env file")
	tile := flag.String("tile", "", "Tile source image (png, jpeg, tga, webp); default is a generated starfield")
	width := flag.Int("width", 0, "Viewport width (default from config)")
	height := flag.Int("height", 0, "Viewport height (default from config)")
	outputDir := flag.String("output", "backgrounds", "Output directory")
	only := flag.String("page", "", "Render only this page")
	all := flag.Bool("all-densities", false, "Render every page at every density, for cross-fade previews")
	workers := flag.Int("workers", 4, "Number of render goroutines")

	flag.Parse()

	cfg, err := config.Setup(*configFile, *envFile, config.Flags{
		TileImage: *tile,
		Width:     *width,
		Height:    *height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, w := range cfg.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	pages := page.All()
	if *only != "" {
		p, err := page.Parse(*only)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		pages = []page.Page{p}
	}

	var jobs []job
	for _, p := range pages {
		if *all {
			for _, d := range config.Densities {
				jobs = append(jobs, job{page: p, density: d})
			}
			continue
		}
		jobs = append(jobs, job{page: p, density: cfg.Depth.Density(p)})
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, srcName := tiles.Source(cfg.TileImage)
	renderer := tiles.NewRenderer(nil)

	fmt.Printf("Backgrounds: %d, Viewport: %dx%d, Source: %s\n", len(jobs), cfg.Window.Width, cfg.Window.Height, srcName)
	fmt.Printf("Output: %s\n", *outputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	if *workers < 1 {
		*workers = 1
	}
	queue := make(chan job)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				path, err := render(renderer, src, srcName, cfg, j, *outputDir, *all)
				mu.Lock()
				if err != nil {
					failed++
					fmt.Printf("  FAIL %-8s x%d: %v\n", j.page, j.density, err)
				} else {
					fmt.Printf("  OK   %-8s x%d -> %s\n", j.page, j.density, path)
				}
				mu.Unlock()
			}
		}()
	}
	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %s: %d ok, %d failed\n", time.Since(start).Round(time.Millisecond), len(jobs)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func render(r *tiles.Renderer, src image.Image, srcName string, cfg config.Config, j job, outDir string, suffix bool) (string, error) {
	key := tiles.Key{Source: srcName, Density: j.density, Width: cfg.Window.Width, Height: cfg.Window.Height}
	bmp := r.Render(src, key, tiles.LayoutFor(j.page))
	if bmp == nil {
		return "", fmt.Errorf("render failed")
	}

	name := j.page.String() + ".webp"
	if suffix {
		name = fmt.Sprintf("%s-x%d.webp", j.page, j.density)
	}
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := tiles.EncodeWebP(f, bmp.Image); err != nil {
		return "", err
	}
	return path, nil
}
