package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// FaceGrid is one face identity and its 3x3 stickers in row-major reading
// order. Cells are indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// FaceGrid is a value; With and Rotated return modified copies.
type FaceGrid struct {
	Face  types.Face
	Cells [3][3]types.Color
}

// NewFaceGrid creates a grid for face from row-major cells.
func NewFaceGrid(face types.Face, cells [3][3]types.Color) FaceGrid {
	return FaceGrid{Face: face, Cells: cells}
}

// Uniform creates a grid with every sticker set to c.
func Uniform(face types.Face, c types.Color) FaceGrid {
	g := FaceGrid{Face: face}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			g.Cells[row][col] = c
		}
	}
	return g
}

// At returns the sticker at row, col.
func (g FaceGrid) At(row, col int) types.Color {
	return g.Cells[row][col]
}

// Facelet returns the sticker at row-major index i (0-8).
func (g FaceGrid) Facelet(i int) types.Color {
	return g.Cells[i/3][i%3]
}

// Center returns the centre sticker.
func (g FaceGrid) Center() types.Color {
	return g.Cells[1][1]
}

// With returns a copy of g with one sticker replaced.
func (g FaceGrid) With(row, col int, c types.Color) FaceGrid {
	g.Cells[row][col] = c
	return g
}

// Counts returns the number of stickers of each colour, indexed by Color.
func (g FaceGrid) Counts() [7]int {
	var counts [7]int
	for _, row := range g.Cells {
		for _, c := range row {
			counts[c]++
		}
	}
	return counts
}

// Unknowns returns the number of unclassified stickers.
func (g FaceGrid) Unknowns() int {
	return g.Counts()[types.Unknown]
}

// IsUniform reports whether all nine stickers share one known colour.
func (g FaceGrid) IsUniform() bool {
	c := g.Cells[0][0]
	return c.Valid() && g.Counts()[c] == 9
}

// Rotated returns g turned by the given amount, viewed from outside the face.
func (g FaceGrid) Rotated(turn types.Turn) FaceGrid {
	switch turn {
	case types.TurnCW:
		return g.rotateCW()
	case types.TurnCCW:
		return g.rotateCCW()
	case types.Turn180:
		return g.rotateCW().rotateCW()
	}
	return g
}

// rotateCW: rotated[j][2-i] = original[i][j].
func (g FaceGrid) rotateCW() FaceGrid {
	out := FaceGrid{Face: g.Face}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Cells[j][2-i] = g.Cells[i][j]
		}
	}
	return out
}

// rotateCCW: rotated[2-j][i] = original[i][j].
func (g FaceGrid) rotateCCW() FaceGrid {
	out := FaceGrid{Face: g.Face}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Cells[2-j][i] = g.Cells[i][j]
		}
	}
	return out
}

// MirroredColumns returns g with column order reversed, undoing a mirrored
// camera preview.
func (g FaceGrid) MirroredColumns() FaceGrid {
	for row := 0; row < 3; row++ {
		g.Cells[row][0], g.Cells[row][2] = g.Cells[row][2], g.Cells[row][0]
	}
	return g
}

// String renders the grid as three lines of overlay letters.
func (g FaceGrid) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.Cells[row][col].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
