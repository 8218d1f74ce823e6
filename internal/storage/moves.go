package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Move      types.Move
	CreatedAt time.Time
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, face, turn, notation, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
`

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move types.Move) (int64, error) {
	result, err := r.db.Exec(insertMove, sessionID, moveIndex, move.Face.String(), int(move.Turn),
		move.Notation(), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple moves in a single transaction, numbered from
// startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, moves []types.Move, startIndex int) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(insertMove, sessionID, startIndex+i, move.Face.String(), int(move.Turn), move.Notation(), now)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// ListBySession retrieves all moves of a session in order.
func (r *MoveRepository) ListBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation, created_at
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var notation, createdAt string
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &notation, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		if m.Move, err = types.ParseMove(notation); err != nil {
			return nil, fmt.Errorf("move %d: %w", m.MoveID, err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// NextIndex returns the next move index for a session.
func (r *MoveRepository) NextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// DeleteLast removes the highest-indexed move of a session, as after an
// undo. It reports whether a move was removed.
func (r *MoveRepository) DeleteLast(sessionID string) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM moves
		WHERE session_id = ? AND move_index = (
			SELECT MAX(move_index) FROM moves WHERE session_id = ?
		)
	`, sessionID, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete move: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete move: %w", err)
	}
	return n > 0, nil
}

// ToMoves converts records to moves.
func ToMoves(records []MoveRecord) []types.Move {
	moves := make([]types.Move, len(records))
	for i, r := range records {
		moves[i] = r.Move
	}
	return moves
}
