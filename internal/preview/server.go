// Package preview serves the transition tables and rendered backgrounds over
// HTTP so they can be inspected without opening the game window.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/config"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/spatial"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/tiles"
)

// MaxDimension bounds requested background sizes.
const MaxDimension = 4096

// Server exposes the portfolio's transition data.
type Server struct {
	cfg     config.Config
	src     image.Image
	srcName string
	cache   *tiles.Cache
	engine  *gin.Engine
}

// New builds a server that renders backgrounds from src.
func New(cfg config.Config, src image.Image, srcName string) *Server {
	s := &Server{
		cfg:     cfg,
		src:     src,
		srcName: srcName,
		cache:   tiles.NewCache(nil),
		engine:  gin.Default(),
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("preview: listening on %s", addr)
	if err := s.engine.Run(addr); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	api.GET("/pages", s.pages)
	api.GET("/timings", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.cfg.Timings)
	})
	api.GET("/depth", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.cfg.Depth)
	})
	api.GET("/transitions", s.transitions)
	api.GET("/transitions/:from/:to", s.transition)
	api.GET("/transitions/:from/:to/frames", s.frames)

	r.GET("/backgrounds/:file", s.background)
}

type pageInfo struct {
	ID      page.Page `json:"id"`
	Label   string    `json:"label"`
	Index   int       `json:"index"`
	Density int       `json:"grid_density"`
}

func (s *Server) pages(c *gin.Context) {
	out := make([]pageInfo, 0, page.Count)
	for _, p := range page.All() {
		out = append(out, pageInfo{
			ID:      p,
			Label:   p.Label(),
			Index:   p.Index(),
			Density: s.cfg.Depth.Density(p),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) transitions(c *gin.Context) {
	var out []spatial.Descriptor
	for _, from := range page.All() {
		for _, to := range page.All() {
			if from == to {
				continue
			}
			d, _ := spatial.Describe(from, to, s.cfg.Depth)
			out = append(out, d)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) describe(c *gin.Context) (spatial.Descriptor, bool) {
	from, err := page.Parse(c.Param("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return spatial.Descriptor{}, false
	}
	to, err := page.Parse(c.Param("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return spatial.Descriptor{}, false
	}
	if from == to {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are the same page"})
		return spatial.Descriptor{}, false
	}
	d, ok := spatial.Describe(from, to, s.cfg.Depth)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no transition"})
		return spatial.Descriptor{}, false
	}
	return d, true
}

func (s *Server) transition(c *gin.Context) {
	d, ok := s.describe(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d)
}

// frames samples the runtime of a transition at a fixed frame interval.
func (s *Server) frames(c *gin.Context) {
	d, ok := s.describe(c)
	if !ok {
		return
	}
	step, err := strconv.ParseFloat(c.DefaultQuery("step", "16"), 64)
	if err != nil || step <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step must be a positive number of milliseconds"})
		return
	}

	var out []spatial.Runtime
	rt := spatial.Rest()
	for now := 0.0; !rt.Done; now += step {
		rt = spatial.Step(rt, d, now)
		out = append(out, rt)
	}
	c.JSON(http.StatusOK, gin.H{"descriptor": d, "frames": out})
}

var errBadFile = errors.New("expected <page>.webp")

// background renders the tiled background for a page as WebP. Size and
// density come from the query and default to the configured window and the
// page's own density.
func (s *Server) background(c *gin.Context) {
	p, err := parseBackgroundFile(c.Param("file"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	w, err1 := dimension(c.Query("w"), s.cfg.Window.Width)
	h, err2 := dimension(c.Query("h"), s.cfg.Window.Height)
	if err := errors.Join(err1, err2); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	density := s.cfg.Depth.Density(p)
	if q := c.Query("density"); q != "" {
		density, err = strconv.Atoi(q)
		if err != nil || !config.ValidDensity(density) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("density must be one of %v", config.Densities)})
			return
		}
	}

	key := tiles.Key{Source: s.srcName, Density: density, Width: w, Height: h}
	bmp := s.cache.Get(s.src, key, tiles.LayoutFor(p))
	if bmp == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	var buf bytes.Buffer
	if err := tiles.EncodeWebP(&buf, bmp.Image); err != nil {
		log.Printf("preview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode failed"})
		return
	}
	c.Header("X-Grid", fmt.Sprintf("%dx%d@%d", bmp.Grid.Cols, bmp.Grid.Rows, bmp.Grid.TileSize))
	c.Data(http.StatusOK, "image/webp", buf.Bytes())
}

func parseBackgroundFile(file string) (page.Page, error) {
	name, ok := strings.CutSuffix(file, ".webp")
	if !ok {
		return 0, errBadFile
	}
	return page.Parse(name)
}

func dimension(q string, def int) (int, error) {
	if q == "" {
		return def, nil
	}
	n, err := strconv.Atoi(q)
	if err != nil || n <= 0 || n > MaxDimension {
		return 0, fmt.Errorf("dimension %q must be between 1 and %d", q, MaxDimension)
	}
	return n, nil
}
