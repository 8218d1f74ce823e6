package types

import (
	"fmt"
	"strings"
)

// Face identifies one of the six cube faces.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceD Face = 1 // Down (Yellow)
	FaceF Face = 2 // Front (Green)
	FaceB Face = 3 // Back (Blue)
	FaceR Face = 4 // Right (Red)
	FaceL Face = 5 // Left (Orange)
)

// Faces lists every face in index order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// String returns the notation letter of the face.
func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Name returns the lowercase face name used by the persisted state layout.
func (f Face) Name() string {
	switch f {
	case FaceU:
		return "up"
	case FaceD:
		return "down"
	case FaceF:
		return "front"
	case FaceB:
		return "back"
	case FaceR:
		return "right"
	case FaceL:
		return "left"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceL
}

// SolvedColor returns the colour of the face on a solved cube held with
// white up and green in front.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return Unknown
	}
}

// ParseFace parses a face name ("front") or notation letter ("F").
func ParseFace(s string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return FaceU, nil
	case "down", "d":
		return FaceD, nil
	case "front", "f":
		return FaceF, nil
	case "back", "b":
		return FaceB, nil
	case "right", "r":
		return FaceR, nil
	case "left", "l":
		return FaceL, nil
	}
	return 0, fmt.Errorf("types: unknown face %q", s)
}

// captureOrder maps a capture face index to its face identity.
var captureOrder = [6]Face{FaceF, FaceB, FaceU, FaceD, FaceR, FaceL}

// FaceForCapture returns the face captured at the given index (0-5) of the
// capture sequence: front, back, up, down, right, left.
func FaceForCapture(index int) (Face, error) {
	if index < 0 || index >= len(captureOrder) {
		return 0, fmt.Errorf("types: capture index %d out of range [0,5]", index)
	}
	return captureOrder[index], nil
}
