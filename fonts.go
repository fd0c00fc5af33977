package main

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	heading *text.GoTextFace
	title   *text.GoTextFace
	body    *text.GoTextFace
	small   *text.GoTextFace
	nav     *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("font regular: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("font bold: %w", err)
	}
	serif, err := text.NewGoTextFaceSource(bytes.NewReader(gobolditalic.TTF))
	if err != nil {
		return nil, fmt.Errorf("font bold italic: %w", err)
	}

	return &fonts{
		heading: &text.GoTextFace{Source: serif, Size: 34},
		title:   &text.GoTextFace{Source: bold, Size: 18},
		body:    &text.GoTextFace{Source: regular, Size: 14},
		small:   &text.GoTextFace{Source: regular, Size: 12},
		nav:     &text.GoTextFace{Source: bold, Size: 13},
	}, nil
}

type align int

const (
	alignStart align = iota
	alignCenter
	alignEnd
)

// drawText draws s with its top edge at y.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, alpha float64, a align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = face.Size * 1.45
	switch a {
	case alignCenter:
		op.PrimaryAlign = text.AlignCenter
	case alignEnd:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, s, face, op)
}

// wrap breaks s into lines no wider than maxW.
func wrap(s string, face *text.GoTextFace, maxW float64) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var (
		out  strings.Builder
		line = words[0]
	)
	for _, w := range words[1:] {
		candidate := line + " " + w
		if cw, _ := text.Measure(candidate, face, 0); cw > maxW {
			out.WriteString(line)
			out.WriteByte('\n')
			line = w
			continue
		}
		line = candidate
	}
	out.WriteString(line)
	return out.String()
}

// measure returns the size of s as laid out by drawText.
func measure(s string, face *text.GoTextFace) (float64, float64) {
	return text.Measure(s, face, face.Size*1.45)
}
