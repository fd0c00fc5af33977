package tiles

import (
	"image"
	"log"

	"golang.org/x/image/draw"
)

// Key identifies a rendered bitmap.
type Key struct {
	Source        string
	Density       int
	Width, Height int // viewport, not canvas
}

// Bitmap is a rendered tiled canvas.
type Bitmap struct {
	Image *image.RGBA
	Key   Key
	Grid  Grid
}

// Renderer draws tile grids. The zero value uses Catmull-Rom scaling.
type Renderer struct {
	Scaler draw.Scaler
}

// NewRenderer returns a renderer using s, or Catmull-Rom when s is nil.
func NewRenderer(s draw.Scaler) *Renderer {
	return &Renderer{Scaler: s}
}

// Render draws src as a mirrored tile grid sized for key's viewport and
// density. A nil source or an empty grid is logged and yields nil.
func (r *Renderer) Render(src image.Image, key Key, l Layout) *Bitmap {
	if src == nil {
		log.Printf("tiles: no source image for %q", key.Source)
		return nil
	}
	g := Plan(key.Width, key.Height, key.Density, l)
	if g.Empty() {
		log.Printf("tiles: empty canvas for %q (%dx%d, density %d)", key.Source, key.Width, key.Height, key.Density)
		return nil
	}

	variants := r.variants(src, g.TileSize)
	canvas := image.NewRGBA(image.Rect(0, 0, g.CanvasW, g.CanvasH))
	bounds := canvas.Bounds()

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.Cell(row, col)
			cell := image.Rect(x, y, x+g.TileSize, y+g.TileSize)
			if !cell.Overlaps(bounds) {
				continue
			}
			fx, fy := FlipAt(row, col)
			draw.Draw(canvas, cell, variants[variantIndex(fx, fy)], image.Point{}, draw.Src)
		}
	}

	return &Bitmap{Image: canvas, Key: key, Grid: g}
}

func variantIndex(flipX, flipY bool) int {
	i := 0
	if flipX {
		i |= 1
	}
	if flipY {
		i |= 2
	}
	return i
}

// variants returns the scaled tile and its three mirrors, indexed by
// variantIndex.
func (r *Renderer) variants(src image.Image, size int) [4]*image.RGBA {
	scaler := r.Scaler
	if scaler == nil {
		scaler = draw.CatmullRom
	}

	base := image.NewRGBA(image.Rect(0, 0, size, size))
	scaler.Scale(base, base.Bounds(), src, src.Bounds(), draw.Src, nil)

	var out [4]*image.RGBA
	out[0] = base
	out[1] = mirror(base, true, false)
	out[2] = mirror(base, false, true)
	out[3] = mirror(base, true, true)
	return out
}

func mirror(src *image.RGBA, flipX, flipY bool) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(b)
	for y := 0; y < h; y++ {
		sy := y
		if flipY {
			sy = h - 1 - y
		}
		for x := 0; x < w; x++ {
			sx := x
			if flipX {
				sx = w - 1 - x
			}
			si := src.PixOffset(sx, sy)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
