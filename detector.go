package cubescan

import (
	"image"
	"strings"
)

// Detector locates the square face region in a frame.
type Detector interface {
	// Available reports whether the detector can be used at all.
	Available() bool
	// Detect returns the face square, or false when none was found.
	Detect(frame image.Image) (image.Rectangle, bool)
}

// Detector kinds accepted by InitDetector.
const (
	DetectorCenter = "center"
	DetectorNone   = "none"
)

// InitDetector returns the detector of the given kind. Unknown kinds
// return an unavailable detector, so scans fall back to the centred
// default region.
func InitDetector(kind string) Detector {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case DetectorCenter, "":
		return CenterDetector{Fraction: DefaultRegionFraction}
	default:
		return noDetector{}
	}
}

// CenterDetector assumes the user holds the face in a centred guide square
// whose side is Fraction of the shorter frame side.
type CenterDetector struct {
	Fraction float64
}

func (d CenterDetector) Available() bool { return d.Fraction > 0 && d.Fraction <= 1 }

func (d CenterDetector) Detect(frame image.Image) (image.Rectangle, bool) {
	if !d.Available() || frame == nil {
		return image.Rectangle{}, false
	}
	r := centeredSquare(frame.Bounds(), d.Fraction)
	return r, !r.Empty()
}

type noDetector struct{}

func (noDetector) Available() bool { return false }

func (noDetector) Detect(image.Image) (image.Rectangle, bool) {
	return image.Rectangle{}, false
}

// centeredSquare returns the square of side fraction*min(w,h) centred in b.
func centeredSquare(b image.Rectangle, fraction float64) image.Rectangle {
	side := int(float64(min(b.Dx(), b.Dy())) * fraction)
	if side <= 0 {
		return image.Rectangle{}
	}
	x := b.Min.X + (b.Dx()-side)/2
	y := b.Min.Y + (b.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}
