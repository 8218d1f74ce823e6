package cubescan

import (
	"github.com/SeamusWaldron/cubescan/internal/cube"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Color is a sticker colour label.
type Color = types.Color

const (
	Unknown = types.Unknown
	White   = types.White  // Up face when solved
	Yellow  = types.Yellow // Down face when solved
	Green   = types.Green  // Front face when solved
	Blue    = types.Blue   // Back face when solved
	Red     = types.Red    // Right face when solved
	Orange  = types.Orange // Left face when solved
)

// Colors lists the six sticker colours, excluding Unknown.
var Colors = types.Colors

// Face identifies one of the six cube faces.
type Face = types.Face

const (
	FaceU = types.FaceU
	FaceD = types.FaceD
	FaceF = types.FaceF
	FaceB = types.FaceB
	FaceR = types.FaceR
	FaceL = types.FaceL
)

// ParseFace parses a face name ("front") or notation letter ("F").
func ParseFace(s string) (Face, error) {
	return types.ParseFace(s)
}

// FaceForCapture returns the face shown at a capture index: 0 front,
// 1 back, 2 up, 3 down, 4 right, 5 left.
func FaceForCapture(index int) (Face, error) {
	return types.FaceForCapture(index)
}

// FaceGrid is the 3x3 colour grid of one face, row-major. Each face is
// indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) never moves.
type FaceGrid = cube.FaceGrid

// State is the captured cube: six face slots, each present or absent.
// States are values; every operation returns a new State.
type State = cube.State

// Layout is the persisted face-name to colour-name form of a State.
type Layout = cube.Layout

// NewState returns a state with no faces captured.
func NewState() State {
	return cube.NewState()
}

// Solved returns a complete solved state, white up and green in front.
func Solved() State {
	return cube.Solved()
}

// NewFaceGrid returns the grid of face with the given cells.
func NewFaceGrid(face Face, cells [3][3]Color) FaceGrid {
	return cube.NewFaceGrid(face, cells)
}

// Apply returns the state after turning one face. The input is not modified.
func Apply(s State, m Move) (State, error) {
	return cube.Apply(s, m)
}

// ApplyAll applies moves in order, stopping at the first error.
func ApplyAll(s State, moves ...Move) (State, error) {
	return cube.ApplyAll(s, moves...)
}

// ApplyNotation parses a whitespace-separated move sequence and applies it.
// Nothing is applied if any token is malformed.
func ApplyNotation(s State, notation string) (State, error) {
	return cube.ApplyNotation(s, notation)
}

// FromLayout builds a state from its persisted layout.
func FromLayout(l Layout) (State, error) {
	return cube.FromLayout(l)
}
