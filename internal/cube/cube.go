// Package cube provides the 3x3 cube state model and the move transform
// engine.
package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// State maps each of the six faces to its FaceGrid. A face slot is either
// present (9 stickers) or absent. State is a value type: copies share
// nothing, so Apply and With never affect their receiver.
type State struct {
	faces   [6]FaceGrid
	present [6]bool
}

// NewState returns a state with no faces captured yet.
func NewState() State {
	return State{}
}

// Solved returns a solved cube with standard orientation:
// White on top, Green in front.
func Solved() State {
	var s State
	for _, face := range types.Faces {
		s = s.With(Uniform(face, face.SolvedColor()))
	}
	return s
}

// Get returns the grid of face and whether it has been captured.
func (s State) Get(face types.Face) (FaceGrid, bool) {
	if !face.Valid() || !s.present[face] {
		return FaceGrid{Face: face}, false
	}
	return s.faces[face], true
}

// Has reports whether face is present.
func (s State) Has(face types.Face) bool {
	return face.Valid() && s.present[face]
}

// With returns a copy of s with grid stored under grid.Face.
func (s State) With(grid FaceGrid) State {
	if !grid.Face.Valid() {
		return s
	}
	s.faces[grid.Face] = grid
	s.present[grid.Face] = true
	return s
}

// Without returns a copy of s with face removed.
func (s State) Without(face types.Face) State {
	if !face.Valid() {
		return s
	}
	s.faces[face] = FaceGrid{}
	s.present[face] = false
	return s
}

// FaceCount returns the number of present faces.
func (s State) FaceCount() int {
	n := 0
	for _, ok := range s.present {
		if ok {
			n++
		}
	}
	return n
}

// IsComplete reports whether all six faces are present and free of Unknown.
func (s State) IsComplete() bool {
	for face := range s.faces {
		if !s.present[face] || s.faces[face].Unknowns() > 0 {
			return false
		}
	}
	return true
}

// StickerCount returns the number of stickers held, 9 per present face.
func (s State) StickerCount() int {
	return 9 * s.FaceCount()
}

// Equal reports whether two states hold the same faces and stickers.
func (s State) Equal(other State) bool {
	return s == other
}

// IsSolved returns true if every face is present and uniform, with the six
// faces showing six different colours.
func (s State) IsSolved() bool {
	var seen [7]bool
	for face := range s.faces {
		if !s.present[face] || !s.faces[face].IsUniform() {
			return false
		}
		c := s.faces[face].Center()
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// ColorCounts returns the number of stickers of each colour across all
// present faces, indexed by Color.
func (s State) ColorCounts() [7]int {
	var total [7]int
	for face := range s.faces {
		if !s.present[face] {
			continue
		}
		counts := s.faces[face].Counts()
		for c := range counts {
			total[c] += counts[c]
		}
	}
	return total
}

// facelet returns the sticker at a row-major index of face.
func (s *State) facelet(face types.Face, i int) types.Color {
	return s.faces[face].Cells[i/3][i%3]
}

func (s *State) setFacelet(face types.Face, i int, c types.Color) {
	s.faces[face].Cells[i/3][i%3] = c
}

// String returns a text representation of the cube as an unfolded net.
// Absent faces render as dots.
func (s State) String() string {
	var b strings.Builder

	cell := func(face types.Face, row, col int) string {
		if !s.present[face] {
			return "."
		}
		return s.faces[face].Cells[row][col].String()
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(cell(types.FaceU, row, col) + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []types.Face{types.FaceL, types.FaceF, types.FaceR, types.FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(cell(face, row, col) + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(cell(types.FaceD, row, col) + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
