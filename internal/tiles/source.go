package tiles

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"
)

// LoadSource reads a tile source image. PNG, JPEG, TGA and WebP are
// supported.
func LoadSource(path string) (image.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tiles: read %s: %w", path, err)
	}
	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = decodeTGA(raw)
	} else {
		img, err = DecodeSource(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("tiles: %s: %w", path, err)
	}
	return img, nil
}

// StarfieldName is the cache source name of the generated tile.
const StarfieldName = "starfield"

// StarfieldSize is the edge length of the generated tile.
const StarfieldSize = 512

// Source returns the tile at path and its cache name. An empty path, or one
// that fails to load, yields the generated starfield. Failures are logged.
func Source(path string) (image.Image, string) {
	if path != "" {
		img, err := LoadSource(path)
		if err == nil {
			return img, path
		}
		log.Printf("tiles: %v; using starfield", err)
	}
	return Starfield(StarfieldSize, 1), StarfieldName
}

// DecodeSource decodes a PNG, JPEG, WebP or TGA tile source from r. TGA has
// no signature, so it is only tried once the registered formats reject the
// data.
func DecodeSource(r io.Reader) (image.Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode: read: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if errors.Is(err, image.ErrFormat) {
		return decodeTGA(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return checkBounds(img)
}

func decodeTGA(raw []byte) (image.Image, error) {
	img, err := tga.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode tga: %w", err)
	}
	return checkBounds(img)
}

func checkBounds(img image.Image) (image.Image, error) {
	if img.Bounds().Empty() {
		return nil, errors.New("decode: empty image")
	}
	return img, nil
}

// EncodeWebP writes img to w as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("tiles: webp encode: %w", err)
	}
	return nil
}
