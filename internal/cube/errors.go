package cube

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Sentinel errors for the cube package.
var (
	ErrIncompleteState = errors.New("cubescan: incomplete cube state")
	ErrInvalidLayout   = errors.New("cubescan: invalid state layout")
)

// IncompleteStateError reports the face, and for unknown stickers the
// position, that prevented a move from being applied.
type IncompleteStateError struct {
	Move    types.Move
	Face    types.Face
	Missing bool // the whole face is absent
	Row     int
	Col     int
}

func (e *IncompleteStateError) Error() string {
	if e.Missing {
		return fmt.Sprintf("cubescan: cannot apply %s: face %s not captured", e.Move, e.Face.Name())
	}
	return fmt.Sprintf("cubescan: cannot apply %s: face %s has unknown sticker at row %d col %d",
		e.Move, e.Face.Name(), e.Row, e.Col)
}

func (e *IncompleteStateError) Unwrap() error {
	return ErrIncompleteState
}
