package tiles

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"golang.org/x/image/draw"
)

func TestPlan(t *testing.T) {
	type tc struct {
		w, h, density int
		layout        Layout
		want          Grid
	}

	tests := map[string]tc{
		"about at 1": {
			w: 1280, h: 800, density: 1, layout: LayoutFor(page.About),
			want: Grid{CanvasW: 1280, CanvasH: 800, TileSize: 1280, Cols: 2, Rows: 2},
		},
		"passions at 2": {
			w: 1280, h: 800, density: 2, layout: LayoutFor(page.Passions),
			want: Grid{CanvasW: 1280, CanvasH: 800, TileSize: 640, Cols: 6, Rows: 6},
		},
		"projects at 4": {
			w: 1000, h: 700, density: 4, layout: LayoutFor(page.Projects),
			want: Grid{CanvasW: 1300, CanvasH: 910, TileSize: 250, Cols: 7, Rows: 5},
		},
		"stack at 8": {
			w: 1280, h: 800, density: 8, layout: LayoutFor(page.Stack),
			want: Grid{CanvasW: 1480, CanvasH: 1000, TileSize: 160, Cols: 18, Rows: 15, Offset: -640},
		},
		"odd size rounds up": {
			w: 1001, h: 500, density: 8, layout: DefaultLayout,
			want: Grid{CanvasW: 1001, CanvasH: 500, TileSize: 126, Cols: 9, Rows: 5},
		},
		"zero viewport": {
			w: 0, h: 800, density: 2, layout: DefaultLayout,
			want: Grid{},
		},
		"zero density treated as 1": {
			w: 100, h: 50, density: 0, layout: DefaultLayout,
			want: Grid{CanvasW: 100, CanvasH: 50, TileSize: 100, Cols: 2, Rows: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Plan(tt.w, tt.h, tt.density, tt.layout)
			if got != tt.want {
				t.Errorf("Plan() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlanCoversCanvasWithNegativeOffset(t *testing.T) {
	for _, w := range []int{64, 320, 1280, 2560} {
		g := Plan(w, w*3/4, 8, LayoutFor(page.Stack))
		x, y := g.Cell(g.Rows-1, g.Cols-1)
		if x+g.TileSize < g.CanvasW || y+g.TileSize < g.CanvasH {
			t.Errorf("width %d: grid ends at (%d, %d), canvas is %dx%d", w, x+g.TileSize, y+g.TileSize, g.CanvasW, g.CanvasH)
		}
	}
}

func TestFlipAt(t *testing.T) {
	type tc struct {
		row, col     int
		flipX, flipY bool
	}

	// seed*73+1 and seed*97+1 share parity, so both flips follow seed parity.
	tests := map[string]tc{
		"origin":      {row: 0, col: 0, flipX: false, flipY: false},
		"odd col":     {row: 0, col: 1, flipX: true, flipY: true},
		"next row":    {row: 1, col: 0, flipX: false, flipY: false},
		"row 3 col 7": {row: 3, col: 7, flipX: true, flipY: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fx, fy := FlipAt(tt.row, tt.col)
			if fx != tt.flipX || fy != tt.flipY {
				t.Errorf("FlipAt(%d, %d) = %v, %v, want %v, %v", tt.row, tt.col, fx, fy, tt.flipX, tt.flipY)
			}
		})
	}
}

func TestFlipAtDeterministic(t *testing.T) {
	for row := 0; row < 20; row++ {
		for col := 0; col < 20; col++ {
			x1, y1 := FlipAt(row, col)
			x2, y2 := FlipAt(row, col)
			if x1 != x2 || y1 != y2 {
				t.Fatalf("FlipAt(%d, %d) not deterministic", row, col)
			}
		}
	}
}

// quadrants returns a 4x4 source with a distinct colour in each quadrant so
// mirroring is observable.
func quadrants() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	colors := []color.RGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 255, 0, 255},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, colors[(y/2)*2+x/2])
		}
	}
	return img
}

func TestRenderMirrorsTiles(t *testing.T) {
	r := NewRenderer(draw.NearestNeighbor)
	key := Key{Source: "quad", Density: 2, Width: 8, Height: 8}
	b := r.Render(quadrants(), key, Layout{SizeMultiplier: 1})
	if b == nil {
		t.Fatal("Render() = nil")
	}
	if b.Grid.TileSize != 4 || b.Grid.Cols != 2 || b.Grid.Rows != 2 {
		t.Fatalf("grid = %+v", b.Grid)
	}

	src := quadrants()
	// Tile (0,0) is not flipped, tile (0,1) is flipped on both axes.
	if got, want := b.Image.RGBAAt(0, 0), src.RGBAAt(0, 0); got != want {
		t.Errorf("tile (0,0) top-left = %v, want %v", got, want)
	}
	if got, want := b.Image.RGBAAt(4, 0), src.RGBAAt(3, 3); got != want {
		t.Errorf("tile (0,1) top-left = %v, want %v", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	src := Starfield(64, 7)
	key := Key{Source: "stars", Density: 4, Width: 200, Height: 120}

	a := NewRenderer(nil).Render(src, key, LayoutFor(page.Stack))
	b := NewRenderer(nil).Render(src, key, LayoutFor(page.Stack))
	if a == nil || b == nil {
		t.Fatal("Render() = nil")
	}
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Error("two renders of the same key differ")
	}
}

func TestRenderFailures(t *testing.T) {
	r := NewRenderer(nil)
	if b := r.Render(nil, Key{Density: 1, Width: 10, Height: 10}, DefaultLayout); b != nil {
		t.Error("Render(nil source) != nil")
	}
	if b := r.Render(quadrants(), Key{Density: 1}, DefaultLayout); b != nil {
		t.Error("Render(zero viewport) != nil")
	}
}

func TestCache(t *testing.T) {
	c := NewCache(NewRenderer(draw.NearestNeighbor))
	src := quadrants()
	key := Key{Source: "quad", Density: 2, Width: 16, Height: 16}

	first := c.Get(src, key, DefaultLayout)
	second := c.Get(src, key, DefaultLayout)
	if first == nil || first != second {
		t.Fatal("cache did not return the stored bitmap")
	}
	if c.Get(nil, Key{Source: "missing", Density: 1, Width: 4, Height: 4}, DefaultLayout) != nil {
		t.Error("failed render returned a bitmap")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Invalidate()
	if c.Len() != 0 {
		t.Errorf("Len() after Invalidate = %d, want 0", c.Len())
	}
	if third := c.Get(src, key, DefaultLayout); third == first {
		t.Error("Get after Invalidate returned the stale bitmap")
	}
}

func TestStarfieldDeterministic(t *testing.T) {
	a := Starfield(48, 42)
	b := Starfield(48, 42)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Starfield is not deterministic")
	}
	c := Starfield(48, 43)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds produced the same starfield")
	}
}

func TestWebPRoundTrip(t *testing.T) {
	src := Starfield(32, 1)
	var buf bytes.Buffer
	if err := EncodeWebP(&buf, src); err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}
	img, err := DecodeSource(&buf)
	if err != nil {
		t.Fatalf("DecodeSource: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}

// tgaPixels is an uncompressed 24-bit 2x1 TGA, top-left origin: red, blue.
// The decoder reads the 26-byte footer, so it is included.
var tgaPixels = []byte{
	0, 0, 2, // id length, no colour map, true colour
	0, 0, 0, 0, 0, // colour map spec
	0, 0, 0, 0, // x, y origin
	2, 0, 1, 0, // width, height
	24, 0x20, // depth, descriptor
	0, 0, 255, // BGR red
	255, 0, 0, // BGR blue
	0, 0, 0, 0, // no extension area
	0, 0, 0, 0, // no developer area
	'T', 'R', 'U', 'E', 'V', 'I', 'S', 'I', 'O', 'N', '-', 'X', 'F', 'I', 'L', 'E', '.', 0,
}

func TestDecodeSourceFormats(t *testing.T) {
	src := Starfield(16, 3)
	encode := func(fn func(*bytes.Buffer) error) []byte {
		var buf bytes.Buffer
		if err := fn(&buf); err != nil {
			t.Fatalf("encode: %v", err)
		}
		return buf.Bytes()
	}

	pngData := encode(func(b *bytes.Buffer) error { return png.Encode(b, src) })
	jpegData := encode(func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) })
	webpData := encode(func(b *bytes.Buffer) error { return EncodeWebP(b, src) })

	tests := map[string]struct {
		data []byte
		size image.Point
	}{
		"png":  {data: pngData, size: image.Pt(16, 16)},
		"jpeg": {data: jpegData, size: image.Pt(16, 16)},
		"webp": {data: webpData, size: image.Pt(16, 16)},
		"tga":  {data: tgaPixels, size: image.Pt(2, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			img, err := DecodeSource(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("DecodeSource: %v", err)
			}
			if got := img.Bounds().Size(); got != tt.size {
				t.Errorf("size = %v, want %v", got, tt.size)
			}
		})
	}
}

func TestDecodeTGAPixels(t *testing.T) {
	img, err := DecodeSource(bytes.NewReader(tgaPixels))
	if err != nil {
		t.Fatalf("DecodeSource: %v", err)
	}
	r, _, b, _ := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("first pixel r=%d b=%d, want red", r>>8, b>>8)
	}
}

func TestLoadSourceByExtension(t *testing.T) {
	dir := t.TempDir()

	tgaPath := filepath.Join(dir, "tile.TGA")
	if err := os.WriteFile(tgaPath, tgaPixels, 0o644); err != nil {
		t.Fatal(err)
	}
	if img, err := LoadSource(tgaPath); err != nil || img.Bounds().Dx() != 2 {
		t.Errorf("LoadSource(tga) = %v, %v", img, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Starfield(8, 1)); err != nil {
		t.Fatal(err)
	}
	pngPath := filepath.Join(dir, "tile.png")
	if err := os.WriteFile(pngPath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	img, name := Source(pngPath)
	if name != pngPath || img.Bounds().Dx() != 8 {
		t.Errorf("Source(png) = %q, %v; want the file, not the starfield", name, img.Bounds())
	}
}

func TestDecodeSourceRejectsGarbage(t *testing.T) {
	if _, err := DecodeSource(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("DecodeSource(garbage) succeeded")
	}
}

func TestLoadSourceMissing(t *testing.T) {
	if _, err := LoadSource("does-not-exist.png"); err == nil {
		t.Error("LoadSource(missing) succeeded")
	}
}

func TestSourceFallsBackToStarfield(t *testing.T) {
	img, name := Source("no/such/tile.png")
	if name != StarfieldName {
		t.Errorf("name = %q, want %q", name, StarfieldName)
	}
	if img.Bounds().Dx() != StarfieldSize {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), StarfieldSize)
	}
}

func TestCacheSeparatesLayouts(t *testing.T) {
	c := NewCache(NewRenderer(draw.NearestNeighbor))
	key := Key{Source: "quad", Density: 2, Width: 40, Height: 30}
	a := c.Get(quadrants(), key, LayoutFor(page.Passions))
	b := c.Get(quadrants(), key, LayoutFor(page.Projects))
	if a == nil || b == nil || a == b {
		t.Fatal("layouts share a cache entry")
	}
	if b.Grid.CanvasW != 52 {
		t.Errorf("projects canvas width = %d, want 52", b.Grid.CanvasW)
	}
}
