package cube

import (
	"encoding/json"
	"fmt"

	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Layout is the persisted form of a State: face name to a 3x3 array of
// lowercase colour names. Absent faces are omitted.
type Layout map[string][][]string

// Names returns the grid as rows of lowercase colour names.
func (g FaceGrid) Names() [][]string {
	rows := make([][]string, 3)
	for row := 0; row < 3; row++ {
		rows[row] = make([]string, 3)
		for col := 0; col < 3; col++ {
			rows[row][col] = g.Cells[row][col].Name()
		}
	}
	return rows
}

// ParseGrid builds the grid of face from rows of colour names.
func ParseGrid(face types.Face, rows [][]string) (FaceGrid, error) {
	if len(rows) != 3 {
		return FaceGrid{}, fmt.Errorf("%w: face %s has %d rows, want 3", ErrInvalidLayout, face.Name(), len(rows))
	}
	grid := FaceGrid{Face: face}
	for row := 0; row < 3; row++ {
		if len(rows[row]) != 3 {
			return FaceGrid{}, fmt.Errorf("%w: face %s row %d has %d cells, want 3",
				ErrInvalidLayout, face.Name(), row, len(rows[row]))
		}
		for col := 0; col < 3; col++ {
			c, err := types.ParseColor(rows[row][col])
			if err != nil {
				return FaceGrid{}, fmt.Errorf("%w: face %s: %v", ErrInvalidLayout, face.Name(), err)
			}
			grid.Cells[row][col] = c
		}
	}
	return grid, nil
}

// Layout converts s to its persisted form.
func (s State) Layout() Layout {
	out := make(Layout, s.FaceCount())
	for _, face := range types.Faces {
		if grid, ok := s.Get(face); ok {
			out[face.Name()] = grid.Names()
		}
	}
	return out
}

// FromLayout builds a State from its persisted form. A face may be keyed by
// name or letter, but only once.
func FromLayout(l Layout) (State, error) {
	s := NewState()
	for name, rows := range l {
		face, err := types.ParseFace(name)
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
		if s.Has(face) {
			return State{}, fmt.Errorf("%w: face %s given twice", ErrInvalidLayout, face.Name())
		}
		grid, err := ParseGrid(face, rows)
		if err != nil {
			return State{}, err
		}
		s = s.With(grid)
	}
	return s, nil
}

// MarshalJSON encodes the state in its persisted layout.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Layout())
}

// UnmarshalJSON decodes the persisted layout.
func (s *State) UnmarshalJSON(data []byte) error {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	parsed, err := FromLayout(l)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
