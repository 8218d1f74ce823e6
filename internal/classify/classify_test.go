package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescan/internal/colorspace"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

func TestClassify_White(t *testing.T) {
	c := New()
	res := c.Classify(colorspace.RGB{R: 255, G: 255, B: 255})

	assert.Equal(t, types.White, res.Label)
	assert.Greater(t, res.Confidence, 0.9)
	assert.True(t, c.Valid(res))
}

func TestClassify_CanonicalReferences(t *testing.T) {
	c := New()
	for _, want := range types.Colors {
		res := c.Classify(Canonical(want))
		assert.Equal(t, want, res.Label, "canonical %s", want.Name())
		assert.Greater(t, res.Confidence, 0.8, "canonical %s", want.Name())
	}
}

func TestClassify_LightingVariants(t *testing.T) {
	c := New()
	for _, ref := range DefaultReferences() {
		res := c.Classify(ref.RGB)
		assert.Equal(t, ref.Label, res.Label, "variant %v", ref.RGB)
		assert.True(t, c.Valid(res), "variant %v confidence %.3f", ref.RGB, res.Confidence)
	}
}

func TestClassify_Dark(t *testing.T) {
	c := New()

	res := c.Classify(colorspace.RGB{R: 10, G: 10, B: 10})
	assert.Equal(t, types.Unknown, res.Label)
	assert.Zero(t, res.Confidence)

	// Only the nearest-reference technique reaches a dim grey, weakly.
	res = c.Classify(colorspace.RGB{R: 30, G: 30, B: 30})
	assert.False(t, c.Valid(res))
}

func TestClassify_GreyIsNotValid(t *testing.T) {
	c := New()
	res := c.Classify(colorspace.RGB{R: 128, G: 128, B: 128})
	assert.False(t, c.Valid(res))
}

func TestClassify_Magenta(t *testing.T) {
	res := New().Classify(colorspace.RGB{R: 255, G: 0, B: 255})
	assert.Equal(t, types.Unknown, res.Label)
}

func TestClassify_PriorityOrder(t *testing.T) {
	// RGB abstains on cyan, so HSV decides the label.
	res := New().Classify(colorspace.RGB{R: 0, G: 200, B: 200})

	require.Equal(t, types.Unknown, res.Votes[TechniqueRGB].Label)
	assert.Equal(t, types.Blue, res.Votes[TechniqueHSV].Label)
	assert.Equal(t, types.Blue, res.Label)
}

func TestClassify_ConfidenceIsWeightedAgreement(t *testing.T) {
	res := New().Classify(colorspace.RGB{R: 0, G: 200, B: 200})

	var want float64
	for _, v := range res.Votes {
		if v.Label == res.Label {
			want += Weights[v.Technique] * v.Confidence
		}
	}
	assert.InDelta(t, want, res.Confidence, 1e-9)
	// LAB disagrees, so the fused confidence stays below the floor.
	assert.Less(t, res.Confidence, DefaultFloor)
}

func TestResultValid_Floor(t *testing.T) {
	r := Result{Label: types.Red, Confidence: 0.45}
	assert.True(t, r.Valid(0.4))
	assert.False(t, r.Valid(0.45))
	assert.False(t, r.Valid(0.5))

	r.Label = types.Unknown
	assert.False(t, r.Valid(0))
}

func TestClassifyHSV_BandsDoNotOverlap(t *testing.T) {
	tests := []struct {
		h    float64
		want types.Color
	}{
		{0, types.Red},
		{11.9, types.Red},
		{12, types.Orange},
		{41.9, types.Orange},
		{42, types.Yellow},
		{75, types.Green},
		{170, types.Blue},
		{259.9, types.Blue},
		{260, types.Unknown},
		{330, types.Red},
		{359.9, types.Red},
	}
	for _, tt := range tests {
		got := ClassifyHSV(colorspace.HSV{H: tt.h, S: 200, V: 200})
		assert.Equal(t, tt.want, got.Label, "hue %.1f", tt.h)
	}
}

func TestClassifyHSV_LowSaturation(t *testing.T) {
	assert.Equal(t, types.White, ClassifyHSV(colorspace.HSV{H: 40, S: 10, V: 240}).Label)
	assert.Equal(t, types.Unknown, ClassifyHSV(colorspace.HSV{H: 40, S: 10, V: 120}).Label)
	assert.Equal(t, types.Unknown, ClassifyHSV(colorspace.HSV{H: 40, S: 70, V: 240}).Label)
	assert.Equal(t, types.Unknown, ClassifyHSV(colorspace.HSV{H: 40, S: 200, V: 40}).Label)
}

func TestClassifyLAB_Bands(t *testing.T) {
	tests := []struct {
		a, b float64
		want types.Color
	}{
		{50, 0, types.Red},     // 0 degrees
		{0, 50, types.Yellow},  // 90 degrees
		{-50, 0, types.Green},  // 180 degrees
		{0, -50, types.Blue},   // 270 degrees
		{35, 35, types.Orange}, // 45 degrees
	}
	for _, tt := range tests {
		got := ClassifyLAB(colorspace.Lab{L: 60, A: tt.a, B: tt.b})
		assert.Equal(t, tt.want, got.Label, "a=%v b=%v", tt.a, tt.b)
	}
	assert.Equal(t, types.White, ClassifyLAB(colorspace.Lab{L: 90, A: 1, B: 1}).Label)
	assert.Equal(t, types.Unknown, ClassifyLAB(colorspace.Lab{L: 10, A: 50, B: 0}).Label)
}

func TestClassifyDistance_Cutoff(t *testing.T) {
	c := New()
	c.MaxDistance = 1

	v := c.ClassifyDistance(colorspace.RGB{R: 100, G: 100, B: 100})
	assert.Equal(t, types.Unknown, v.Label)

	v = c.ClassifyDistance(Canonical(types.Blue))
	assert.Equal(t, types.Blue, v.Label)
	assert.InDelta(t, 1.0, v.Confidence, 1e-9)
}

func TestNearest_Empty(t *testing.T) {
	_, _, ok := Nearest(nil, colorspace.RGB{})
	assert.False(t, ok)
}

func TestClassifyRGB_RedOrangeSplit(t *testing.T) {
	tests := []struct {
		rgb  colorspace.RGB
		want types.Color
	}{
		{colorspace.RGB{R: 220, G: 60, B: 40}, types.Red},
		{colorspace.RGB{R: 255, G: 76, B: 0}, types.Red},
		{colorspace.RGB{R: 255, G: 77, B: 0}, types.Orange},
		{colorspace.RGB{R: 220, G: 80, B: 10}, types.Orange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRGB(tt.rgb).Label, "%v", tt.rgb)
	}
}

func TestClassify_WarmLitRed(t *testing.T) {
	c := New()
	res := c.Classify(colorspace.RGB{R: 220, G: 60, B: 40})
	assert.Equal(t, types.Red, res.Label)
	assert.Equal(t, types.Red, res.Votes[TechniqueHSV].Label)
	assert.True(t, c.Valid(res))

	// Between the RGB split and the HSV orange band the techniques disagree
	// and the cell stays below the floor.
	res = c.Classify(colorspace.RGB{R: 255, G: 70, B: 0})
	assert.Equal(t, types.Red, res.Label)
	assert.False(t, c.Valid(res))
}
