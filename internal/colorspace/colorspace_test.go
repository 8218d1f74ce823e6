package colorspace

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHSV(t *testing.T) {
	cases := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSV{0, 0, 255}},
		{"red", RGB{255, 0, 0}, HSV{0, 255, 255}},
		{"green", RGB{0, 255, 0}, HSV{120, 255, 255}},
		{"blue", RGB{0, 0, 255}, HSV{240, 255, 255}},
		{"yellow", RGB{255, 213, 0}, HSV{50.12, 255, 255}},
		{"magenta-red", RGB{255, 0, 1}, HSV{359.76, 255, 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ToHSV(c.in)
			assert.InDelta(t, c.want.H, got.H, 0.05)
			assert.InDelta(t, c.want.S, got.S, 0.05)
			assert.InDelta(t, c.want.V, got.V, 0.05)
			assert.GreaterOrEqual(t, got.H, 0.0)
			assert.Less(t, got.H, 360.0)
		})
	}
}

func TestToLab(t *testing.T) {
	white := ToLab(RGB{255, 255, 255})
	assert.InDelta(t, 100, white.L, 0.1)
	assert.InDelta(t, 0, white.Chroma(), 0.5)

	black := ToLab(RGB{0, 0, 0})
	assert.InDelta(t, 0, black.L, 0.01)
	assert.False(t, math.IsNaN(black.A) || math.IsNaN(black.B))

	// sRGB red is L≈53.2, a≈80.1, b≈67.2 under D65.
	red := ToLab(RGB{255, 0, 0})
	assert.InDelta(t, 53.2, red.L, 0.5)
	assert.InDelta(t, 80.1, red.A, 1.0)
	assert.InDelta(t, 67.2, red.B, 1.0)
}

func TestLabHue(t *testing.T) {
	assert.InDelta(t, 90, Lab{L: 50, A: 0, B: 10}.Hue(), 1e-9)
	assert.InDelta(t, 270, Lab{L: 50, A: 0, B: -10}.Hue(), 1e-9)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(RGB{10, 20, 30}, RGB{10, 20, 30}))
	assert.InDelta(t, math.Sqrt(3)*255, Distance(RGB{0, 0, 0}, RGB{255, 255, 255}), 1e-9)
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, RGB{12, 34, 56}, FromColor(color.RGBA{12, 34, 56, 255}))
}
