// Package tiles renders a square source image as a deterministic grid of
// mirrored tiles. The same source, viewport and density always produce the
// same pixels.
package tiles

import (
	"math"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
)

// Layout sizes the canvas relative to the viewport and positions the grid.
type Layout struct {
	SizeMultiplier float64 // canvas = viewport * SizeMultiplier + ExtraSize
	ExtraSize      float64
	TileOffset     int // pixel offset applied to every tile on both axes
	ExtraTiles     int // rows and cols drawn beyond the canvas for panning
}

// DefaultLayout is a viewport-sized canvas with one spare row and column.
var DefaultLayout = Layout{SizeMultiplier: 1, ExtraTiles: 1}

var pageLayouts = map[page.Page]Layout{
	page.About:    {SizeMultiplier: 1.0, ExtraTiles: 1},
	page.Passions: {SizeMultiplier: 1.0, ExtraTiles: 4},
	page.Projects: {SizeMultiplier: 1.3, ExtraTiles: 1},
	page.Stack:    {SizeMultiplier: 1.0, ExtraSize: 200, TileOffset: -640, ExtraTiles: 4},
}

// LayoutFor returns the background layout used by page p.
func LayoutFor(p page.Page) Layout {
	if l, ok := pageLayouts[p]; ok {
		return l
	}
	return DefaultLayout
}

// Grid is the resolved geometry of one render.
type Grid struct {
	CanvasW, CanvasH int
	TileSize         int
	Cols, Rows       int
	Offset           int
}

// Empty reports whether the grid has nothing to draw.
func (g Grid) Empty() bool {
	return g.CanvasW <= 0 || g.CanvasH <= 0 || g.TileSize <= 0
}

// Plan computes the canvas and tile geometry for a viewport at density
// tiles per axis. A non-positive density is treated as 1.
func Plan(viewW, viewH, density int, l Layout) Grid {
	if density <= 0 {
		density = 1
	}
	mult := l.SizeMultiplier
	if mult <= 0 {
		mult = 1
	}

	g := Grid{
		CanvasW: int(math.Ceil(float64(viewW)*mult + l.ExtraSize)),
		CanvasH: int(math.Ceil(float64(viewH)*mult + l.ExtraSize)),
		Offset:  l.TileOffset,
	}
	if viewW <= 0 || viewH <= 0 || g.CanvasW <= 0 || g.CanvasH <= 0 {
		return Grid{}
	}

	g.TileSize = int(math.Ceil(float64(max(viewW, viewH)) / float64(density)))
	if g.TileSize <= 0 {
		return Grid{}
	}
	g.Cols = ceilDiv(g.CanvasW, g.TileSize) + l.ExtraTiles
	g.Rows = ceilDiv(g.CanvasH, g.TileSize) + l.ExtraTiles
	// A negative offset shifts the grid up and left; add enough cells to
	// still reach the far edges.
	if g.Offset < 0 {
		shift := ceilDiv(-g.Offset, g.TileSize)
		g.Cols += shift
		g.Rows += shift
	}
	return g
}

// Cell returns the top-left pixel of the tile at (row, col).
func (g Grid) Cell(row, col int) (x, y int) {
	return col*g.TileSize + g.Offset, row*g.TileSize + g.Offset
}

// FlipAt reports whether the tile at (row, col) is mirrored horizontally
// and vertically. The result depends only on position.
func FlipAt(row, col int) (flipX, flipY bool) {
	seed := col + row*1000
	return (seed*73+1)%2 == 0, (seed*97+1)%2 == 0
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
