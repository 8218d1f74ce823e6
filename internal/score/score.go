// Package score rates how well a capture attempt was aligned with the face.
package score

import (
	"gonum.org/v1/gonum/stat"

	"github.com/SeamusWaldron/cubescan/internal/classify"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Score components, summing to Max.
const (
	Max         = 100.0
	validPoints = 60.0
	confPoints  = 30.0
	uniqPoints  = 10.0
	perUnique   = 2.0
)

// MinUnique is the distinct-colour count below which a capture is flagged.
const MinUnique = 3

// Alignment scores a set of facelet results in [0, 100]:
//
//	60 * valid/9 + min(30, 30 * mean confidence of valid) + min(10, 2 * unique colours)
//
// A result is valid when its label is known and its confidence exceeds
// floor. No valid results scores exactly zero.
func Alignment(results []classify.Result, floor float64) float64 {
	conf, unique := valid(results, floor)
	if len(conf) == 0 {
		return 0
	}
	s := validPoints*float64(len(conf))/9 +
		min(confPoints, confPoints*stat.Mean(conf, nil)) +
		min(uniqPoints, perUnique*float64(unique))
	return min(Max, s)
}

// LowDiversity reports whether fewer than MinUnique distinct colours were
// validly detected. It is a warning only.
func LowDiversity(results []classify.Result, floor float64) bool {
	_, unique := valid(results, floor)
	return unique < MinUnique
}

func valid(results []classify.Result, floor float64) ([]float64, int) {
	var seen [7]bool
	var unique int
	conf := make([]float64, 0, len(results))
	for _, r := range results {
		if !r.Valid(floor) {
			continue
		}
		conf = append(conf, r.Confidence)
		if r.Label <= types.Orange && !seen[r.Label] {
			seen[r.Label] = true
			unique++
		}
	}
	return conf, unique
}
