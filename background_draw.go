package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zahin-Mohammad-plug/zahin.org/internal/page"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/parallax"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/spatial"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/tiles"
	"github.com/Zahin-Mohammad-plug/zahin.org/internal/transition"
)

// background returns the tiled canvas for p at density, rendering it on first
// use. It returns nil while the tile cannot be drawn.
func (g *Game) background(p page.Page, density int) *ebiten.Image {
	k := bgKey{page: p, density: density, w: g.viewport.W, h: g.viewport.H}
	if img, ok := g.bgImages[k]; ok {
		return img
	}
	key := tiles.Key{Source: g.tileName, Density: density, Width: k.w, Height: k.h}
	bmp := g.tiles.Get(g.tileSrc, key, tiles.LayoutFor(p))
	if bmp == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(bmp.Image)
	g.bgImages[k] = img
	return img
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	depth := g.cfg.Depth
	rt := g.animator.Runtime()
	layers := parallax.Compose(rt, depth, g.state.Direction == transition.Forward)

	mainPage := g.state.Current
	mainDensity := depth.Density(mainPage)
	blend := parallax.Blend{Main: 1}

	var incoming *ebiten.Image
	var incomingPage page.Page
	if g.animator.Running() {
		d := g.animator.Descriptor()
		mainPage, mainDensity = d.From, d.FromDensity
		blend = parallax.Crossfade(d.FromDensity, d.ToDensity, rt.Progress, d.IsSkip)
		if blend.Active {
			incomingPage = d.To
			incoming = g.background(d.To, d.ToDensity)
		}
	}
	base := g.background(mainPage, mainDensity)

	offset := spatial.Vec{
		X: layers.Background.X + layers.Drift.X,
		Y: layers.Background.Y + layers.Drift.Y,
	}

	if blend.IncomingOnTop {
		g.drawTiles(screen, base, mainPage, offset, blend.Main, blend.Blur)
		g.drawTiles(screen, incoming, incomingPage, offset, blend.Incoming, blend.Blur)
	} else {
		g.drawTiles(screen, incoming, incomingPage, offset, blend.Incoming, blend.Blur)
		g.drawTiles(screen, base, mainPage, offset, blend.Main, blend.Blur)
	}

	g.drawShade(screen)
}

// drawTiles centres a background canvas on the screen, applies the parallax
// offset and, for projects, a slow pan.
func (g *Game) drawTiles(screen, img *ebiten.Image, p page.Page, off spatial.Vec, alpha, blur float64) {
	if img == nil || alpha <= 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	x := float64(sw-iw)/2 + off.X
	y := float64(sh-ih)/2 + off.Y
	if p == page.Projects && g.cfg.Timings.PanDuration > 0 && !g.cfg.ReducedMotion {
		phase := 2 * math.Pi * g.now / g.cfg.Timings.PanDuration
		x += math.Sin(phase) * float64(iw-sw) / 4
		y += math.Cos(phase) * float64(ih-sh) / 4
	}

	if blur < 0.5 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(img, op)
		return
	}

	// Approximate a gaussian blur with a ring of offset copies.
	const samples = 8
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha * 0.4))
	screen.DrawImage(img, op)
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / samples
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x+math.Cos(a)*blur/2, y+math.Sin(a)*blur/2)
		op.ColorScale.ScaleAlpha(float32(alpha * 0.15))
		screen.DrawImage(img, op)
	}
}

// drawShade darkens the top and bottom so the nav and contact links stay
// readable over bright tiles.
func (g *Game) drawShade(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.shade == nil || g.shade.Bounds().Dx() != sw || g.shade.Bounds().Dy() != sh {
		if g.shade != nil {
			g.shade.Deallocate()
		}
		g.shade = createGradient(sw, sh, []GradientStop{
			{Offset: 0, Color: color.RGBA{0, 0, 0, 150}},
			{Offset: 0.18, Color: color.RGBA{0, 0, 0, 30}},
			{Offset: 0.8, Color: color.RGBA{0, 0, 0, 30}},
			{Offset: 1, Color: color.RGBA{0, 0, 0, 170}},
		})
	}
	screen.DrawImage(g.shade, nil)
}
