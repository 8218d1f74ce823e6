package types

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is wrapped by every move notation error.
var ErrInvalidMove = errors.New("cubescan: invalid move notation")

// InvalidMoveError reports notation that is not a face letter optionally
// followed by ' or 2.
type InvalidMoveError struct {
	Notation string
	Position int // 1-based token position within a sequence; 0 for a single move
}

func (e *InvalidMoveError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("cubescan: invalid move notation %q at position %d", e.Notation, e.Position)
	}
	return fmt.Sprintf("cubescan: invalid move notation %q", e.Notation)
}

func (e *InvalidMoveError) Unwrap() error {
	return ErrInvalidMove
}
