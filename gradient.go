package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GradientStop is a colour at a vertical offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// createGradient builds a vertical gradient image.
func createGradient(width, height int, stops []GradientStop) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}

		c := stops[len(stops)-1].Color
		for i := 0; i < len(stops)-1; i++ {
			if t >= stops[i].Offset && t <= stops[i+1].Offset {
				span := stops[i+1].Offset - stops[i].Offset
				localT := 0.0
				if span > 0 {
					localT = (t - stops[i].Offset) / span
				}
				c = lerpColor(stops[i].Color, stops[i+1].Color, localT)
				break
			}
		}

		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	return ebiten.NewImageFromImage(img)
}

// lerpColor mixes premultiplied colours.
func lerpColor(c1, c2 color.Color, t float64) color.Color {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()

	r := uint8(float64(r1>>8)*(1-t) + float64(r2>>8)*t)
	g := uint8(float64(g1>>8)*(1-t) + float64(g2>>8)*t)
	b := uint8(float64(b1>>8)*(1-t) + float64(b2>>8)*t)
	a := uint8(float64(a1>>8)*(1-t) + float64(a2>>8)*t)

	return color.RGBA{r, g, b, a}
}

// hsl returns an opaque colour for hue in degrees and s, l in [0, 1].
func hsl(hue, s, l float64) color.RGBA {
	r, g, b := hslToRGB(hue/360, s, l)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// withAlpha returns c at alpha a, as a non-premultiplied colour.
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(max(0, min(1, a)) * 255)}
}

func hslToRGB(h, s, l float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}

	hue2rgb := func(p, q, t float64) float64 {
		if t < 0 {
			t += 1
		}
		if t > 1 {
			t -= 1
		}
		switch {
		case t < 1.0/6.0:
			return p + (q-p)*6*t
		case t < 1.0/2.0:
			return q
		case t < 2.0/3.0:
			return p + (q-p)*(2.0/3.0-t)*6
		}
		return p
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hue2rgb(p, q, h+1.0/3.0), hue2rgb(p, q, h), hue2rgb(p, q, h-1.0/3.0)
}
