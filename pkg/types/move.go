package types

import (
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Valid reports whether t is one of the three turn magnitudes.
func (t Turn) Valid() bool {
	return t == TurnCW || t == TurnCCW || t == Turn180
}

// Move represents a single face turn.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	// Turn180 is its own inverse
	}
	return inv
}

// IsQuarter reports whether the move is a quarter turn.
func (m Move) IsQuarter() bool {
	return m.Turn == TurnCW || m.Turn == TurnCCW
}

// Merge combines two same-face moves into one.
// Returns nil if the faces differ or if the moves cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	// Quarter turns modulo 4: 1 = CW, 2 = half, 3 = CCW
	combined := (quarters(m.Turn) + quarters(other.Turn)) % 4
	switch combined {
	case 0:
		return nil
	case 1:
		return &Move{Face: m.Face, Turn: TurnCW}
	case 2:
		return &Move{Face: m.Face, Turn: Turn180}
	default:
		return &Move{Face: m.Face, Turn: TurnCCW}
	}
}

func quarters(t Turn) int {
	switch t {
	case TurnCW:
		return 1
	case Turn180:
		return 2
	case TurnCCW:
		return 3
	}
	return 0
}

// Index returns the position of the move in the total order of the 18 moves:
// faces in U D F B R L order, turns in CW, CCW, 180 order.
// Returns -1 for a malformed move.
func (m Move) Index() int {
	if !m.Face.Valid() || !m.Turn.Valid() {
		return -1
	}
	var turnCode int
	switch m.Turn {
	case TurnCW:
		turnCode = 0
	case TurnCCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}
	return int(m.Face)*3 + turnCode
}

// Less orders moves by Index.
func (m Move) Less(other Move) bool {
	return m.Index() < other.Index()
}

// MoveFromIndex is the inverse of Move.Index.
func MoveFromIndex(i int) (Move, bool) {
	if i < 0 || i >= 18 {
		return Move{}, false
	}
	turns := [3]Turn{TurnCW, TurnCCW, Turn180}
	return Move{Face: Face(i / 3), Turn: turns[i%3]}, true
}

// AllMoves returns the 18 moves in their total order.
func AllMoves() []Move {
	moves := make([]Move, 0, 18)
	for i := 0; i < 18; i++ {
		m, _ := MoveFromIndex(i)
		moves = append(moves, m)
	}
	return moves
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an *InvalidMoveError if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, &InvalidMoveError{Notation: s}
	}

	// Extract face
	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, &InvalidMoveError{Notation: s}
	}

	// Extract turn
	turn := TurnCW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = TurnCCW
		case "2", "2'", "2`":
			turn = Turn180
		default:
			return Move{}, &InvalidMoveError{Notation: s}
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing with an *InvalidMoveError.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, &InvalidMoveError{Notation: part, Position: i + 1}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Simplify merges adjacent same-face moves, dropping those that cancel.
// R R becomes R2, R R' disappears, and cancellations cascade (U R R' U'
// simplifies to nothing).
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			merged := out[n-1].Merge(m)
			out = out[:n-1]
			if merged != nil {
				out = append(out, *merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
