package cube

import (
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// strip is three stickers of a neighbouring face, listed in the order they
// travel around the turning face.
type strip struct {
	face types.Face
	idx  [3]int
}

// borders lists, for each face, the four neighbour strips in the order a
// clockwise turn of that face carries them: strip k moves onto strip k+1.
var borders = [6][4]strip{
	// U affects F, L, B, R top rows
	types.FaceU: {
		{types.FaceF, [3]int{0, 1, 2}},
		{types.FaceL, [3]int{0, 1, 2}},
		{types.FaceB, [3]int{0, 1, 2}},
		{types.FaceR, [3]int{0, 1, 2}},
	},
	// D affects F, R, B, L bottom rows (opposite direction)
	types.FaceD: {
		{types.FaceF, [3]int{6, 7, 8}},
		{types.FaceR, [3]int{6, 7, 8}},
		{types.FaceB, [3]int{6, 7, 8}},
		{types.FaceL, [3]int{6, 7, 8}},
	},
	// F affects U bottom, R left, D top, L right
	types.FaceF: {
		{types.FaceU, [3]int{6, 7, 8}},
		{types.FaceR, [3]int{0, 3, 6}},
		{types.FaceD, [3]int{2, 1, 0}},
		{types.FaceL, [3]int{8, 5, 2}},
	},
	// B affects U top, L left, D bottom, R right
	types.FaceB: {
		{types.FaceU, [3]int{2, 1, 0}},
		{types.FaceL, [3]int{0, 3, 6}},
		{types.FaceD, [3]int{6, 7, 8}},
		{types.FaceR, [3]int{8, 5, 2}},
	},
	// R affects U right, B left, D right, F right
	types.FaceR: {
		{types.FaceU, [3]int{2, 5, 8}},
		{types.FaceB, [3]int{6, 3, 0}},
		{types.FaceD, [3]int{2, 5, 8}},
		{types.FaceF, [3]int{2, 5, 8}},
	},
	// L affects U left, F left, D left, B right
	types.FaceL: {
		{types.FaceU, [3]int{0, 3, 6}},
		{types.FaceF, [3]int{0, 3, 6}},
		{types.FaceD, [3]int{0, 3, 6}},
		{types.FaceB, [3]int{8, 5, 2}},
	},
}

// Apply returns the state reached by applying m to s. s is not modified.
//
// The turning face, its four neighbours and every sticker that moves must be
// known; otherwise an *IncompleteStateError is returned and no colour is
// guessed.
func Apply(s State, m types.Move) (State, error) {
	if !m.Face.Valid() || !m.Turn.Valid() {
		return State{}, &types.InvalidMoveError{Notation: m.Notation()}
	}
	if err := s.checkMovable(m); err != nil {
		return State{}, err
	}

	next := s
	switch m.Turn {
	case types.TurnCW:
		next.moveCW(m.Face)
	case types.TurnCCW:
		next.moveCCW(m.Face)
	case types.Turn180:
		next.moveCW(m.Face)
		next.moveCW(m.Face)
	}
	return next, nil
}

// ApplyAll applies moves in order, stopping at the first error.
func ApplyAll(s State, moves ...types.Move) (State, error) {
	for _, m := range moves {
		var err error
		if s, err = Apply(s, m); err != nil {
			return State{}, err
		}
	}
	return s, nil
}

// ApplyNotation parses a move sequence such as "R U R' U'" and applies it.
// Nothing is applied if any token is invalid.
func ApplyNotation(s State, notation string) (State, error) {
	moves, err := types.ParseMoves(notation)
	if err != nil {
		return State{}, err
	}
	return ApplyAll(s, moves...)
}

// checkMovable verifies every sticker touched by m is present and known.
func (s *State) checkMovable(m types.Move) error {
	if !s.present[m.Face] {
		return &IncompleteStateError{Move: m, Face: m.Face, Missing: true}
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if s.faces[m.Face].Cells[row][col] == types.Unknown {
				return &IncompleteStateError{Move: m, Face: m.Face, Row: row, Col: col}
			}
		}
	}
	for _, st := range borders[m.Face] {
		if !s.present[st.face] {
			return &IncompleteStateError{Move: m, Face: st.face, Missing: true}
		}
		for _, i := range st.idx {
			if s.facelet(st.face, i) == types.Unknown {
				return &IncompleteStateError{Move: m, Face: st.face, Row: i / 3, Col: i % 3}
			}
		}
	}
	return nil
}

// moveCW applies a clockwise quarter turn in place.
func (s *State) moveCW(face types.Face) {
	s.faces[face] = s.faces[face].Rotated(types.TurnCW)
	s.cycle(borders[face], false)
}

// moveCCW applies a counter-clockwise quarter turn in place.
func (s *State) moveCCW(face types.Face) {
	s.faces[face] = s.faces[face].Rotated(types.TurnCCW)
	s.cycle(borders[face], true)
}

// cycle moves each strip onto the next one (strip k -> k+1), or onto the
// previous one when reverse is set.
func (s *State) cycle(strips [4]strip, reverse bool) {
	var saved [4][3]types.Color
	for k, st := range strips {
		for j, i := range st.idx {
			saved[k][j] = s.facelet(st.face, i)
		}
	}
	for k := range strips {
		src := (k + 3) % 4
		if reverse {
			src = (k + 1) % 4
		}
		for j, i := range strips[k].idx {
			s.setFacelet(strips[k].face, i, saved[src][j])
		}
	}
}
