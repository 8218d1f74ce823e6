package recorder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

// ErrNoSession is returned when an operation needs an active session.
var ErrNoSession = errors.New("recorder: no active session")

// Session manages one scan session: the working cube state, its move
// history and their persistence.
type Session struct {
	db        *storage.DB
	stateFile *StateFile
	logger    *log.Logger
	tracker   *cubescan.Tracker

	mu        sync.Mutex
	sessionID string
	moveIndex int

	sessionRepo *storage.SessionRepository
	captureRepo *storage.CaptureRepository
	moveRepo    *storage.MoveRepository

	onMove func(cubescan.Move)
}

// NewSession creates a new session manager. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		db:          db,
		stateFile:   stateFile,
		logger:      logger,
		tracker:     cubescan.NewTracker(cubescan.NewState()),
		sessionRepo: storage.NewSessionRepository(db),
		captureRepo: storage.NewCaptureRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets the callback for applied moves.
func (s *Session) SetMoveCallback(cb func(cubescan.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// SessionID returns the active session ID.
func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// State returns the working cube state.
func (s *Session) State() cubescan.State {
	return s.tracker.State()
}

// History returns the moves applied since the session started.
func (s *Session) History() []cubescan.Move {
	return s.tracker.History()
}

// Start starts a new session holding initial.
func (s *Session) Start(notes string, initial cubescan.State) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.sessionRepo.Create(notes, initial)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	s.sessionID = id
	s.moveIndex = 0
	s.tracker.Reset(initial)

	if s.stateFile != nil {
		if err := s.stateFile.SetSession(id, initial); err != nil {
			s.logger.Warn("failed to update state file", "err", err)
		}
	}

	s.logger.Debug("session started", "session", id, "faces", initial.FaceCount())
	return id, nil
}

// Resume reloads a session's state and move history from the database.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to resume session: %w", err)
	}

	records, err := s.moveRepo.ListBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to load moves: %w", err)
	}

	nextIndex, err := s.moveRepo.NextIndex(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get next move index: %w", err)
	}

	s.sessionID = sessionID
	s.moveIndex = nextIndex
	s.tracker.Restore(sess.State, storage.ToMoves(records))
	return nil
}

// ResumeOrStart resumes the session named in the state file, or starts a
// new empty one when there is none.
func (s *Session) ResumeOrStart() error {
	if s.stateFile != nil && s.stateFile.HasSession() {
		err := s.Resume(s.stateFile.SessionID())
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		s.logger.Warn("session in state file not found, starting a new one", "session", s.stateFile.SessionID())
	}
	_, err := s.Start("", cubescan.NewState())
	return err
}

// RecordCapture stores a capture and, when accepted, merges its grid into
// the working state.
func (s *Session) RecordCapture(c *cubescan.Capture, accepted bool) (cubescan.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionID == "" {
		return s.tracker.State(), ErrNoSession
	}

	_, err := s.captureRepo.Create(storage.CaptureRecord{
		CaptureID:   c.ID,
		SessionID:   s.sessionID,
		Grid:        c.Grid,
		Score:       c.Score,
		ValidCells:  c.Valid,
		Corrections: len(c.Corrections),
		Accepted:    accepted,
	})
	if err != nil {
		return s.tracker.State(), err
	}

	if !accepted {
		return s.tracker.State(), nil
	}

	state := s.tracker.SetFace(c.Grid)
	return state, s.persist(state)
}

// ApplyNotation applies a move sequence to the working state and records
// each applied move. Moves before a failing move stay applied.
func (s *Session) ApplyNotation(notation string) (cubescan.State, error) {
	moves, err := cubescan.ParseMoves(notation)
	if err != nil {
		return s.State(), err
	}
	return s.ApplyMoves(moves)
}

// ApplyMoves applies moves in order; see ApplyNotation.
func (s *Session) ApplyMoves(moves []cubescan.Move) (cubescan.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionID == "" {
		return s.tracker.State(), ErrNoSession
	}

	var applied []cubescan.Move
	var applyErr error
	for _, m := range moves {
		if _, applyErr = s.tracker.Apply(m); applyErr != nil {
			break
		}
		applied = append(applied, m)
	}

	if len(applied) > 0 {
		if err := s.moveRepo.CreateBatch(s.sessionID, applied, s.moveIndex); err != nil {
			return s.tracker.State(), err
		}
		s.moveIndex += len(applied)
		if s.onMove != nil {
			for _, m := range applied {
				s.onMove(m)
			}
		}
	}

	state := s.tracker.State()
	if err := s.persist(state); err != nil {
		return state, err
	}
	return state, applyErr
}

// Undo reverts the most recent move. It reports false when there is
// nothing to undo.
func (s *Session) Undo() (cubescan.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tracker.Undo()
	if !ok {
		return state, false, nil
	}

	if _, err := s.moveRepo.DeleteLast(s.sessionID); err != nil {
		return state, true, err
	}
	s.moveIndex--
	return state, true, s.persist(state)
}

// persist stores state in the database and the state file. Callers hold mu.
func (s *Session) persist(state cubescan.State) error {
	if err := s.sessionRepo.UpdateState(s.sessionID, state); err != nil {
		return err
	}
	if s.stateFile != nil {
		if err := s.stateFile.SetState(state); err != nil {
			s.logger.Warn("failed to update state file", "err", err)
		}
	}
	return nil
}
