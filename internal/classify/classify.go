// Package classify maps a representative facelet colour to one of the six
// sticker colours using four independent techniques fused into a single
// label and confidence.
package classify

import (
	"github.com/SeamusWaldron/cubescan/internal/colorspace"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Technique identifies one decision technique.
type Technique int

const (
	TechniqueRGB Technique = iota
	TechniqueHSV
	TechniqueLAB
	TechniqueDistance
)

func (t Technique) String() string {
	switch t {
	case TechniqueRGB:
		return "rgb"
	case TechniqueHSV:
		return "hsv"
	case TechniqueLAB:
		return "lab"
	case TechniqueDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// Weights of each technique in the fused confidence, indexed by Technique.
var Weights = [4]float64{
	TechniqueRGB:      0.35,
	TechniqueHSV:      0.25,
	TechniqueLAB:      0.15,
	TechniqueDistance: 0.25,
}

// DefaultFloor is the confidence a result must exceed to count as detected.
const DefaultFloor = 0.4

// Vote is one technique's label and confidence.
type Vote struct {
	Technique  Technique
	Label      types.Color
	Confidence float64
}

// Result is the fused classification of one facelet.
type Result struct {
	Label      types.Color
	Confidence float64
	Sample     colorspace.RGB
	Votes      [4]Vote
}

// Valid reports whether the result is a detection at the given floor.
func (r Result) Valid(floor float64) bool {
	return r.Label != types.Unknown && r.Confidence > floor
}

// Classifier fuses the four techniques. The zero value is not usable; call New.
type Classifier struct {
	// Floor is the confidence a result must exceed to be valid.
	Floor float64
	// References feed the nearest-reference technique.
	References []Reference
	// MaxDistance is the weighted RGB distance beyond which the
	// nearest-reference technique abstains.
	MaxDistance float64
}

// New returns a classifier with the default reference table and floor.
func New() *Classifier {
	return &Classifier{
		Floor:       DefaultFloor,
		References:  DefaultReferences(),
		MaxDistance: 150,
	}
}

// Classify labels one representative colour.
//
// Techniques are consulted in priority order RGB, HSV, LAB, distance; the
// first that does not abstain decides the label. The confidence is the
// weighted sum of the confidences of every technique that agrees with it.
func (c *Classifier) Classify(rgb colorspace.RGB) Result {
	res := Result{Sample: rgb}
	res.Votes[TechniqueRGB] = ClassifyRGB(rgb)
	res.Votes[TechniqueHSV] = ClassifyHSV(colorspace.ToHSV(rgb))
	res.Votes[TechniqueLAB] = ClassifyLAB(colorspace.ToLab(rgb))
	res.Votes[TechniqueDistance] = c.ClassifyDistance(rgb)

	for _, v := range res.Votes {
		if v.Label != types.Unknown {
			res.Label = v.Label
			break
		}
	}
	if res.Label == types.Unknown {
		return res
	}

	for _, v := range res.Votes {
		if v.Label == res.Label {
			res.Confidence += Weights[v.Technique] * v.Confidence
		}
	}
	res.Confidence = min(1, max(0, res.Confidence))
	return res
}

// Valid reports whether r clears the classifier's floor.
func (c *Classifier) Valid(r Result) bool {
	return r.Valid(c.Floor)
}

// ClassifyDistance labels rgb by its nearest weighted reference colour.
func (c *Classifier) ClassifyDistance(rgb colorspace.RGB) Vote {
	vote := Vote{Technique: TechniqueDistance}
	ref, d, ok := Nearest(c.References, rgb)
	if !ok || d > c.MaxDistance {
		return vote
	}
	vote.Label = ref.Label
	vote.Confidence = 1 - d/c.MaxDistance
	return vote
}
