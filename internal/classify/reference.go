package classify

import (
	"math"

	"github.com/SeamusWaldron/cubescan/internal/colorspace"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Reference is a canonical sticker colour under one lighting condition.
// Distances to it are divided by Weight, so lower weights pull less.
type Reference struct {
	Label  types.Color
	RGB    colorspace.RGB
	Weight float64
}

// Canonical returns the primary reference colour of each sticker colour.
func Canonical(c types.Color) colorspace.RGB {
	switch c {
	case types.White:
		return colorspace.RGB{R: 255, G: 255, B: 255}
	case types.Yellow:
		return colorspace.RGB{R: 255, G: 213, B: 0}
	case types.Green:
		return colorspace.RGB{R: 0, G: 155, B: 72}
	case types.Blue:
		return colorspace.RGB{R: 0, G: 70, B: 173}
	case types.Red:
		return colorspace.RGB{R: 183, G: 18, B: 52}
	case types.Orange:
		return colorspace.RGB{R: 255, G: 88, B: 0}
	}
	return colorspace.RGB{}
}

// DefaultReferences returns the canonical colours plus a bright and a dim
// lighting variant of each.
func DefaultReferences() []Reference {
	return []Reference{
		{types.White, Canonical(types.White), 1.0},
		{types.White, colorspace.RGB{R: 220, G: 220, B: 220}, 0.9},
		{types.White, colorspace.RGB{R: 200, G: 210, B: 220}, 0.8},

		{types.Yellow, Canonical(types.Yellow), 1.0},
		{types.Yellow, colorspace.RGB{R: 230, G: 220, B: 40}, 0.9},
		{types.Yellow, colorspace.RGB{R: 200, G: 190, B: 30}, 0.8},

		{types.Green, Canonical(types.Green), 1.0},
		{types.Green, colorspace.RGB{R: 30, G: 180, B: 90}, 0.9},
		{types.Green, colorspace.RGB{R: 0, G: 120, B: 60}, 0.8},

		{types.Blue, Canonical(types.Blue), 1.0},
		{types.Blue, colorspace.RGB{R: 20, G: 90, B: 200}, 0.9},
		{types.Blue, colorspace.RGB{R: 0, G: 50, B: 140}, 0.8},

		{types.Red, Canonical(types.Red), 1.0},
		{types.Red, colorspace.RGB{R: 200, G: 30, B: 40}, 0.9},
		{types.Red, colorspace.RGB{R: 150, G: 10, B: 30}, 0.8},

		{types.Orange, Canonical(types.Orange), 1.0},
		{types.Orange, colorspace.RGB{R: 240, G: 110, B: 20}, 0.9},
		{types.Orange, colorspace.RGB{R: 220, G: 80, B: 10}, 0.8},
	}
}

// Nearest returns the reference with the smallest weighted distance to rgb.
func Nearest(refs []Reference, rgb colorspace.RGB) (Reference, float64, bool) {
	var best Reference
	bestDist := math.Inf(1)
	for _, ref := range refs {
		if ref.Weight <= 0 {
			continue
		}
		if d := colorspace.Distance(rgb, ref.RGB) / ref.Weight; d < bestDist {
			best, bestDist = ref, d
		}
	}
	return best, bestDist, !math.IsInf(bestDist, 1)
}
