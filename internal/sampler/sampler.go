// Package sampler extracts a noise-resistant representative colour for one
// facelet from raw pixels.
package sampler

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/SeamusWaldron/cubescan/internal/colorspace"
)

// Reader returns the colour at a pixel, or false when (x, y) is outside
// the frame.
type Reader interface {
	RGBAt(x, y int) (colorspace.RGB, bool)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(x, y int) (colorspace.RGB, bool)

// RGBAt calls f(x, y).
func (f ReaderFunc) RGBAt(x, y int) (colorspace.RGB, bool) {
	return f(x, y)
}

// FromImage adapts an image to Reader.
func FromImage(img image.Image) Reader {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok {
		return ReaderFunc(func(x, y int) (colorspace.RGB, bool) {
			if !(image.Point{x, y}.In(b)) {
				return colorspace.RGB{}, false
			}
			i := rgba.PixOffset(x, y)
			return colorspace.RGB{R: rgba.Pix[i], G: rgba.Pix[i+1], B: rgba.Pix[i+2]}, true
		})
	}
	return ReaderFunc(func(x, y int) (colorspace.RGB, bool) {
		if !(image.Point{x, y}.In(b)) {
			return colorspace.RGB{}, false
		}
		return colorspace.FromColor(img.At(x, y)), true
	})
}

// Options tunes sampling.
type Options struct {
	// EdgeRejection drops pixels whose mean brightness gradient against their
	// 8-neighbourhood exceeds EdgeThreshold.
	EdgeRejection bool
	EdgeThreshold float64
	// ClusterThreshold is the Euclidean RGB distance joining a sample to a cluster.
	ClusterThreshold float64
	// MinClusterShare is the fraction of samples the largest cluster must
	// hold for its centroid to be used.
	MinClusterShare float64
	// RadiusDivisor sets the sampling radius to max(2, size/RadiusDivisor).
	RadiusDivisor int
}

// DefaultOptions returns the standard sampling parameters.
func DefaultOptions() Options {
	return Options{
		EdgeRejection:    true,
		EdgeThreshold:    40,
		ClusterThreshold: 50,
		MinClusterShare:  0.3,
		RadiusDivisor:    7,
	}
}

// Radius returns the half-width of the sampled square for a facelet size.
func (o Options) Radius(size int) int {
	div := o.RadiusDivisor
	if div <= 0 {
		div = 7
	}
	return max(2, size/div)
}

// Sample returns the representative colour of the facelet centred at center.
// It returns false when no pixel of the neighbourhood lies inside the frame;
// the caller must then treat the facelet as unclassified.
func Sample(r Reader, center image.Point, size int, opts Options) (colorspace.RGB, bool) {
	samples := collect(r, center, opts.Radius(size), opts.EdgeRejection, opts.EdgeThreshold)
	if len(samples) == 0 && opts.EdgeRejection {
		// Every in-bounds pixel looked like an edge; fall back to all of them.
		samples = collect(r, center, opts.Radius(size), false, 0)
	}
	if len(samples) == 0 {
		return colorspace.RGB{}, false
	}

	clusters := Cluster(samples, opts.ClusterThreshold)
	largest := clusters[0]
	for _, c := range clusters[1:] {
		if c.Size > largest.Size {
			largest = c
		}
	}
	if float64(largest.Size) >= opts.MinClusterShare*float64(len(samples)) {
		return largest.Centroid(), true
	}
	return Mean(samples), true
}

func collect(r Reader, center image.Point, radius int, rejectEdges bool, threshold float64) []colorspace.RGB {
	samples := make([]colorspace.RGB, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := center.X+dx, center.Y+dy
			c, ok := r.RGBAt(x, y)
			if !ok {
				continue
			}
			if rejectEdges && gradient(r, x, y, c) > threshold {
				continue
			}
			samples = append(samples, c)
		}
	}
	return samples
}

// gradient returns the mean absolute brightness difference between a pixel
// and its in-bounds 8-neighbours.
func gradient(r Reader, x, y int, c colorspace.RGB) float64 {
	base := c.Brightness()
	var sum float64
	var n int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nc, ok := r.RGBAt(x+dx, y+dy)
			if !ok {
				continue
			}
			sum += math.Abs(nc.Brightness() - base)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ColorCluster accumulates samples around a running centroid.
type ColorCluster struct {
	Size int

	sumR, sumG, sumB float64
}

// Centroid returns the mean colour of the cluster.
func (c ColorCluster) Centroid() colorspace.RGB {
	if c.Size == 0 {
		return colorspace.RGB{}
	}
	n := float64(c.Size)
	return colorspace.RGB{
		R: uint8(math.Round(c.sumR / n)),
		G: uint8(math.Round(c.sumG / n)),
		B: uint8(math.Round(c.sumB / n)),
	}
}

func (c *ColorCluster) add(s colorspace.RGB) {
	c.Size++
	c.sumR += float64(s.R)
	c.sumG += float64(s.G)
	c.sumB += float64(s.B)
}

// Cluster groups samples greedily: each sample joins the nearest cluster
// whose centroid lies within threshold, or starts a new one.
func Cluster(samples []colorspace.RGB, threshold float64) []ColorCluster {
	var clusters []ColorCluster
	for _, s := range samples {
		best, bestDist := -1, math.Inf(1)
		for i := range clusters {
			if d := colorspace.Distance(s, clusters[i].Centroid()); d <= threshold && d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			clusters = append(clusters, ColorCluster{})
			best = len(clusters) - 1
		}
		clusters[best].add(s)
	}
	return clusters
}

// Mean returns the per-channel mean of samples.
func Mean(samples []colorspace.RGB) colorspace.RGB {
	if len(samples) == 0 {
		return colorspace.RGB{}
	}
	rs := make([]float64, len(samples))
	gs := make([]float64, len(samples))
	bs := make([]float64, len(samples))
	for i, s := range samples {
		rs[i], gs[i], bs[i] = float64(s.R), float64(s.G), float64(s.B)
	}
	return colorspace.RGB{
		R: uint8(math.Round(stat.Mean(rs, nil))),
		G: uint8(math.Round(stat.Mean(gs, nil))),
		B: uint8(math.Round(stat.Mean(bs, nil))),
	}
}
