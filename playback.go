package cubescan

import "sync"

// Playback is a queue of moves waiting to be applied one at a time, for
// example to animate a sequence. It holds no timers; the caller decides
// when to Advance.
type Playback struct {
	mu      sync.Mutex
	pending []Move
}

// NewPlayback returns a playback queue holding moves.
func NewPlayback(moves ...Move) *Playback {
	p := &Playback{}
	p.Enqueue(moves...)
	return p
}

// Enqueue appends moves to the queue.
func (p *Playback) Enqueue(moves ...Move) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, moves...)
}

// EnqueueNotation parses notation and appends the moves. Nothing is queued
// if any token is malformed.
func (p *Playback) EnqueueNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	p.Enqueue(moves...)
	return nil
}

// Pending returns a copy of the queued moves.
func (p *Playback) Pending() []Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Move(nil), p.pending...)
}

// Len returns the number of queued moves.
func (p *Playback) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Advance applies the next queued move to s. If the move cannot be applied
// it stays at the head of the queue and s is returned unchanged.
func (p *Playback) Advance(s State) (State, Move, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) == 0 {
		return s, Move{}, ErrQueueEmpty
	}
	m := p.pending[0]
	next, err := Apply(s, m)
	if err != nil {
		return s, m, err
	}
	p.pending = p.pending[1:]
	return next, m, nil
}

// Clear cancels every queued move.
func (p *Playback) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = nil
}
