package cubescan

import "github.com/SeamusWaldron/cubescan/pkg/types"

// Turn represents the direction and magnitude of a face turn.
type Turn = types.Turn

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// Move represents a single face turn.
type Move = types.Move

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}

// Simplify merges adjacent turns of the same face.
func Simplify(moves []Move) []Move {
	return types.Simplify(moves)
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	return types.InverseMoves(moves)
}
