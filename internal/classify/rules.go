package classify

import (
	"github.com/SeamusWaldron/cubescan/internal/colorspace"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Each rule set returns at most one label: branches are tested in order and
// hue bands are half-open, so adjacent colours never overlap.

// Green-to-red ratios splitting red, orange and yellow. Warm-lit reds
// reach g/r 0.3; the reference oranges start at 0.34.
const (
	rgbRedOrangeSplit    = 0.3
	rgbOrangeYellowSplit = 0.65
)

// ClassifyRGB labels a sample from channel ratios.
func ClassifyRGB(c colorspace.RGB) Vote {
	vote := Vote{Technique: TechniqueRGB}
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	mx, mn := float64(c.Max()), float64(c.Min())

	if mx < 50 {
		return vote
	}
	if mn > 170 && mx-mn < 45 {
		vote.Label = types.White
		vote.Confidence = 0.6 + 0.4*mn/255
		return vote
	}

	chroma := (mx - mn) / mx
	if chroma < 0.35 {
		return vote
	}
	conf := 0.5 + 0.5*chroma

	switch {
	case r >= g && r >= b:
		if b > g && b/r > 0.6 {
			return vote // magenta
		}
		switch ratio := g / r; {
		case ratio < rgbRedOrangeSplit:
			vote.Label = types.Red
		case ratio < rgbOrangeYellowSplit:
			vote.Label = types.Orange
		default:
			vote.Label = types.Yellow
		}
	case g >= b:
		switch {
		case r/g >= 0.8 && b < 0.5*g:
			vote.Label = types.Yellow
		case b/g > 0.85:
			return vote // cyan
		default:
			vote.Label = types.Green
		}
	default:
		if r/b > 0.7 {
			return vote // purple
		}
		vote.Label = types.Blue
	}
	vote.Confidence = conf
	return vote
}

// Hue band lower bounds in degrees, HSV space. Red wraps through 0.
const (
	hsvRedFrom    = 330
	hsvOrangeFrom = 12
	hsvYellowFrom = 42
	hsvGreenFrom  = 75
	hsvBlueFrom   = 170
	hsvBlueTo     = 260
)

// ClassifyHSV labels a sample by hue band, saturation and value.
func ClassifyHSV(hsv colorspace.HSV) Vote {
	vote := Vote{Technique: TechniqueHSV}
	if hsv.V < 50 {
		return vote
	}
	if hsv.S < 60 {
		if hsv.V > 150 {
			vote.Label = types.White
			vote.Confidence = 0.6 + 0.4*(hsv.V/255)*(1-hsv.S/60)
		}
		return vote
	}
	if hsv.S < 80 {
		return vote
	}

	switch h := hsv.H; {
	case h >= hsvRedFrom || h < hsvOrangeFrom:
		vote.Label = types.Red
	case h < hsvYellowFrom:
		vote.Label = types.Orange
	case h < hsvGreenFrom:
		vote.Label = types.Yellow
	case h < hsvBlueFrom:
		vote.Label = types.Green
	case h < hsvBlueTo:
		vote.Label = types.Blue
	default:
		return vote
	}
	vote.Confidence = 0.5 + 0.5*hsv.S/255
	return vote
}

// Hue band lower bounds in degrees, LAB hue angle.
const (
	labRedFrom    = 330
	labOrangeFrom = 37
	labYellowFrom = 65
	labGreenFrom  = 105
	labBlueFrom   = 200
	labBlueTo     = 310
)

// ClassifyLAB labels a sample by lightness, chroma and LAB hue angle.
func ClassifyLAB(lab colorspace.Lab) Vote {
	vote := Vote{Technique: TechniqueLAB}
	if lab.L < 15 {
		return vote
	}
	chroma := lab.Chroma()
	if chroma < 18 {
		if lab.L > 65 {
			vote.Label = types.White
			vote.Confidence = 0.6 + 0.4*(lab.L/100)*(1-chroma/18)
		}
		return vote
	}
	if chroma < 25 {
		return vote
	}

	switch h := lab.Hue(); {
	case h >= labRedFrom || h < labOrangeFrom:
		vote.Label = types.Red
	case h < labYellowFrom:
		vote.Label = types.Orange
	case h < labGreenFrom:
		vote.Label = types.Yellow
	case h < labBlueFrom:
		vote.Label = types.Green
	case h < labBlueTo:
		vote.Label = types.Blue
	default:
		return vote
	}
	vote.Confidence = 0.5 + 0.5*min(1, chroma/60)
	return vote
}
