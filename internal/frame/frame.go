// Package frame decodes still frames from files or request bodies.
package frame

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// MaxBytes caps the size of a frame read by Decode.
	MaxBytes = 32 << 20
	// MaxPixels caps the declared width*height of a decoded frame.
	MaxPixels = 40 << 20
)

// ErrTooLarge is returned for frames over MaxBytes or MaxPixels.
var ErrTooLarge = errors.New("frame: too large")

// Load decodes the image file at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads one image in any registered format and returns it with the
// format name.
func Decode(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read frame: %w", err)
	}
	if len(data) > MaxBytes {
		return nil, "", fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, MaxBytes)
	}

	// Decoders allocate the whole bitmap up front, so check the header first.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode frame header: %w", err)
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > MaxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, MaxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode frame: %w", err)
	}
	return img, format, nil
}

// ToRGBA converts img to *image.RGBA. The sampler reads RGBA pixels
// straight from the buffer and falls back to img.At for other types, so
// callers convert decoded frames once before scanning.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
