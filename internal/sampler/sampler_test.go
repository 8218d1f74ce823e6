package sampler

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescan/internal/colorspace"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSample_UniformRegion(t *testing.T) {
	img := filled(40, 40, color.RGBA{0, 155, 72, 255})
	got, ok := Sample(FromImage(img), image.Pt(20, 20), 30, DefaultOptions())
	require.True(t, ok)
	assert.Equal(t, colorspace.RGB{R: 0, G: 155, B: 72}, got)
}

func TestSample_OffFrame(t *testing.T) {
	img := filled(20, 20, color.RGBA{255, 255, 255, 255})
	_, ok := Sample(FromImage(img), image.Pt(-100, -100), 30, DefaultOptions())
	assert.False(t, ok)
}

func TestSample_PartiallyOffFrame(t *testing.T) {
	img := filled(20, 20, color.RGBA{183, 18, 52, 255})
	got, ok := Sample(FromImage(img), image.Pt(0, 0), 30, DefaultOptions())
	require.True(t, ok)
	assert.Equal(t, colorspace.RGB{R: 183, G: 18, B: 52}, got)
}

func TestSample_IgnoresSpeckles(t *testing.T) {
	// Mostly orange with a few white glare pixels: the dominant cluster wins
	// instead of the mean drifting towards white.
	img := filled(40, 40, color.RGBA{255, 88, 0, 255})
	for _, p := range []image.Point{{18, 18}, {22, 20}, {20, 23}, {17, 21}} {
		img.SetRGBA(p.X, p.Y, color.RGBA{255, 255, 255, 255})
	}
	opts := DefaultOptions()
	opts.EdgeRejection = false
	got, ok := Sample(FromImage(img), image.Pt(20, 20), 42, opts)
	require.True(t, ok)
	assert.Equal(t, colorspace.RGB{R: 255, G: 88, B: 0}, got)
}

func TestSample_FallsBackToMean(t *testing.T) {
	// A checkerboard of four far-apart colours gives no dominant cluster.
	palette := []colorspace.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255}}
	r := ReaderFunc(func(x, y int) (colorspace.RGB, bool) {
		return palette[((x&1)<<1|(y&1))], true
	})
	opts := DefaultOptions()
	opts.EdgeRejection = false
	opts.MinClusterShare = 0.5
	got, ok := Sample(r, image.Pt(0, 0), 14, opts)
	require.True(t, ok)
	// 9 black, 6 red, 6 green and 4 blue samples in the 5x5 neighbourhood.
	assert.Equal(t, colorspace.RGB{R: 61, G: 61, B: 41}, got)
}

func TestSample_DominantClusterAcrossSeam(t *testing.T) {
	// Left part blue, right part yellow; a neighbourhood straddling the seam
	// keeps blue as the representative colour.
	img := filled(40, 40, color.RGBA{0, 70, 173, 255})
	for y := 0; y < 40; y++ {
		for x := 24; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{255, 213, 0, 255})
		}
	}
	got, ok := Sample(FromImage(img), image.Pt(21, 20), 30, DefaultOptions())
	require.True(t, ok)
	assert.Equal(t, colorspace.RGB{R: 0, G: 70, B: 173}, got)
}

func TestSample_AllEdgesFallsBackToEveryPixel(t *testing.T) {
	// A one-pixel checkerboard is all edges; the sampler must still answer.
	r := ReaderFunc(func(x, y int) (colorspace.RGB, bool) {
		if (x+y)&1 == 0 {
			return colorspace.RGB{R: 255, G: 255, B: 255}, true
		}
		return colorspace.RGB{}, true
	})
	_, ok := Sample(r, image.Pt(10, 10), 30, DefaultOptions())
	assert.True(t, ok)
}

func TestGradient(t *testing.T) {
	img := filled(10, 10, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(5, 5, color.RGBA{0, 0, 0, 255})
	r := FromImage(img)
	black, _ := r.RGBAt(5, 5)
	assert.InDelta(t, 255, gradient(r, 5, 5, black), 1e-9)
	white, _ := r.RGBAt(2, 2)
	assert.InDelta(t, 0, gradient(r, 2, 2, white), 1e-9)
}

func TestRadius(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 2, opts.Radius(5))
	assert.Equal(t, 8, opts.Radius(56))
}

func TestCluster(t *testing.T) {
	samples := []colorspace.RGB{{R: 10, G: 10, B: 10}, {R: 12, G: 12, B: 12}, {R: 200, G: 200, B: 200}, {R: 11, G: 9, B: 10}}
	clusters := Cluster(samples, 50)
	require.Len(t, clusters, 2)
	assert.Equal(t, 3, clusters[0].Size)
	assert.Equal(t, colorspace.RGB{R: 11, G: 10, B: 11}, clusters[0].Centroid())
}

func TestMean(t *testing.T) {
	assert.Equal(t, colorspace.RGB{R: 5, G: 10, B: 15}, Mean([]colorspace.RGB{{R: 0, G: 0, B: 0}, {R: 10, G: 20, B: 30}}))
	assert.Equal(t, colorspace.RGB{}, Mean(nil))
}
