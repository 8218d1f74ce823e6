package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubescan/internal/cube"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("storage: not found")

// Session represents a scan session in the database.
type Session struct {
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time
	Notes     *string
	State     cube.State
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session holding state and returns its ID.
func (r *SessionRepository) Create(notes string, state cube.State) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err = r.db.Exec(`
		INSERT INTO sessions (session_id, created_at, updated_at, notes, state_json)
		VALUES (?, ?, ?, ?, ?)
	`, id, now, now, notesPtr, string(stateJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// UpdateState stores the current state of a session.
func (r *SessionRepository) UpdateState(sessionID string, state cube.State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	res, err := r.db.Exec(`
		UPDATE sessions SET state_json = ?, updated_at = ?
		WHERE session_id = ?
	`, string(stateJSON), time.Now().UTC().Format(time.RFC3339Nano), sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, created_at, updated_at, notes, state_json
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, created_at, updated_at, notes, state_json
		FROM sessions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var createdAt, updatedAt, stateJSON string

	if err := row.Scan(&s.SessionID, &createdAt, &updatedAt, &s.Notes, &stateJSON); err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	if err := json.Unmarshal([]byte(stateJSON), &s.State); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &s, nil
}
