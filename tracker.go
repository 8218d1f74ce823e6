package cubescan

import "sync"

// Tracker holds the current state for an orchestrator and records the
// moves applied to it so they can be undone.
type Tracker struct {
	mu       sync.Mutex
	state    State
	history  []Move
	callback func(State, Move)
}

// NewTracker creates a tracker starting from s.
func NewTracker(s State) *Tracker {
	return &Tracker{state: s}
}

// OnChange sets a callback that fires after every applied or undone move.
// It runs with the tracker locked and must not call back into it.
func (t *Tracker) OnChange(cb func(State, Move)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callback = cb
}

// Reset replaces the state and clears the history.
func (t *Tracker) Reset(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
	t.history = nil
}

// Restore replaces the state and history, as when resuming a session whose
// state already includes history.
func (t *Tracker) Restore(s State, history []Move) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
	t.history = append([]Move(nil), history...)
}

// SetFace merges a captured face into the state. The history is kept:
// undoing past the capture is the caller's decision.
func (t *Tracker) SetFace(grid FaceGrid) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = t.state.With(grid)
	return t.state
}

// Apply applies a move. On error the state is unchanged.
func (t *Tracker) Apply(m Move) (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, err := Apply(t.state, m)
	if err != nil {
		return t.state, err
	}
	t.state = next
	t.history = append(t.history, m)
	t.notify(m)
	return t.state, nil
}

// ApplyMoves applies moves in order. It stops at the first failing move;
// moves before it stay applied.
func (t *Tracker) ApplyMoves(moves []Move) (State, error) {
	for _, m := range moves {
		if _, err := t.Apply(m); err != nil {
			return t.State(), err
		}
	}
	return t.State(), nil
}

// ApplyNotation parses notation and applies the moves. Nothing is applied
// if any token is malformed.
func (t *Tracker) ApplyNotation(notation string) (State, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return t.State(), err
	}
	return t.ApplyMoves(moves)
}

// Undo reverts the most recent move. It returns false when there is nothing
// to undo.
func (t *Tracker) Undo() (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.history) == 0 {
		return t.state, false
	}
	last := t.history[len(t.history)-1]
	inv := last.Inverse()
	next, err := Apply(t.state, inv)
	if err != nil {
		// SetFace may have replaced a touched face with unknown stickers.
		return t.state, false
	}
	t.state = next
	t.history = t.history[:len(t.history)-1]
	t.notify(inv)
	return t.state, true
}

// History returns a copy of the applied moves, oldest first.
func (t *Tracker) History() []Move {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Move(nil), t.history...)
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.State().IsSolved()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.State().String()
}

func (t *Tracker) notify(m Move) {
	if t.callback != nil {
		t.callback(t.state, m)
	}
}
