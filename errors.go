package cubescan

import (
	"errors"

	"github.com/SeamusWaldron/cubescan/internal/cube"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Sentinel errors for the cubescan package.
var (
	// Perception errors
	ErrBusy             = errors.New("cubescan: scan already in progress")
	ErrNoFrame          = errors.New("cubescan: no frame")
	ErrNoRegion         = errors.New("cubescan: face region outside frame")
	ErrInvalidFaceIndex = errors.New("cubescan: capture face index out of range")

	// Playback errors
	ErrQueueEmpty = errors.New("cubescan: no pending moves")

	// Move engine errors
	ErrInvalidMove     = types.ErrInvalidMove
	ErrIncompleteState = cube.ErrIncompleteState
)

// InvalidMoveError reports malformed move notation.
type InvalidMoveError = types.InvalidMoveError

// IncompleteStateError reports a move that needs face data the state lacks.
type IncompleteStateError = cube.IncompleteStateError
