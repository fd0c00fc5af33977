package tiles

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Starfield generates a square space tile: a dark vertical gradient with
// scattered stars. The same size and seed give the same image.
func Starfield(size int, seed int64) *image.RGBA {
	if size <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	top := color.RGBA{6, 8, 22, 255}
	bottom := color.RGBA{18, 10, 38, 255}
	for y := 0; y < size; y++ {
		c := lerpColor(top, bottom, float64(y)/float64(size))
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	stars := size * size / 900
	for i := 0; i < stars; i++ {
		x := rng.Intn(size)
		y := rng.Intn(size)
		bright := uint8(140 + rng.Intn(116))
		tint := rng.Intn(3)
		c := color.RGBA{bright, bright, bright, 255}
		switch tint {
		case 1:
			c.B = 255
		case 2:
			c.R = 255
		}
		img.SetRGBA(x, y, c)
		if rng.Intn(8) == 0 {
			glow(img, x, y, c)
		}
	}
	return img
}

func glow(img *image.RGBA, cx, cy int, c color.RGBA) {
	b := img.Bounds()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if !p.In(b) {
				continue
			}
			bg := img.RGBAAt(p.X, p.Y)
			img.SetRGBA(p.X, p.Y, lerpColor(bg, c, 0.4))
		}
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
