// Package colorspace converts 8-bit RGB samples into the HSV and CIE-LAB
// spaces used by the facelet classifier.
package colorspace

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit colour sample.
type RGB struct {
	R, G, B uint8
}

// FromColor converts any image colour to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Colorful returns the sample as a go-colorful colour with channels in [0,1].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Brightness returns the mean of the three channels.
func (c RGB) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3
}

// Max returns the largest channel.
func (c RGB) Max() uint8 {
	return max(c.R, c.G, c.B)
}

// Min returns the smallest channel.
func (c RGB) Min() uint8 {
	return min(c.R, c.G, c.B)
}

// HSV holds hue in degrees [0,360) and saturation and value scaled to [0,255].
type HSV struct {
	H, S, V float64
}

// ToHSV converts c to HSV. Black has zero saturation and hue.
func ToHSV(c RGB) HSV {
	if c.Max() == 0 {
		return HSV{}
	}
	h, s, v := c.Colorful().Hsv()
	if math.IsNaN(h) || c.Max() == c.Min() {
		h = 0
	}
	if h >= 360 {
		h -= 360
	}
	return HSV{H: h, S: s * 255, V: v * 255}
}

// Lab holds CIE-LAB coordinates with L in [0,100] and a, b roughly in
// [-128,128].
type Lab struct {
	L, A, B float64
}

// ToLab converts c through gamma-corrected sRGB and XYZ to CIE-LAB with the
// D65 white point.
func ToLab(c RGB) Lab {
	l, a, b := c.Colorful().Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// Chroma returns the LAB chroma sqrt(a² + b²).
func (l Lab) Chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// Hue returns the LAB hue angle in degrees [0,360).
func (l Lab) Hue() float64 {
	h := math.Atan2(l.B, l.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// Distance returns the Euclidean distance between two samples in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
