package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubescan/internal/cube"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// CaptureRecord represents a face capture in the database.
type CaptureRecord struct {
	CaptureID   string
	SessionID   string
	Grid        cube.FaceGrid
	Score       float64
	ValidCells  int
	Corrections int
	Accepted    bool
	CreatedAt   time.Time
}

// CaptureRepository provides CRUD operations for captures.
type CaptureRepository struct {
	db *DB
}

// NewCaptureRepository creates a new capture repository.
func NewCaptureRepository(db *DB) *CaptureRepository {
	return &CaptureRepository{db: db}
}

// Create stores a capture. An empty CaptureID is replaced by a new one,
// which is returned.
func (r *CaptureRepository) Create(c CaptureRecord) (string, error) {
	if c.CaptureID == "" {
		c.CaptureID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	gridJSON, err := json.Marshal(c.Grid.Names())
	if err != nil {
		return "", fmt.Errorf("failed to encode grid: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO captures (capture_id, session_id, face, grid_json, score, valid_cells, corrections, accepted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.CaptureID, c.SessionID, c.Grid.Face.Name(), string(gridJSON), c.Score,
		c.ValidCells, c.Corrections, c.Accepted, c.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to create capture: %w", err)
	}

	return c.CaptureID, nil
}

// ListBySession retrieves all captures of a session, oldest first.
func (r *CaptureRepository) ListBySession(sessionID string) ([]CaptureRecord, error) {
	rows, err := r.db.Query(`
		SELECT capture_id, session_id, face, grid_json, score, valid_cells, corrections, accepted, created_at
		FROM captures
		WHERE session_id = ?
		ORDER BY created_at, rowid
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get captures: %w", err)
	}
	defer rows.Close()

	var captures []CaptureRecord
	for rows.Next() {
		var c CaptureRecord
		var faceName, gridJSON, createdAt string
		err := rows.Scan(&c.CaptureID, &c.SessionID, &faceName, &gridJSON, &c.Score,
			&c.ValidCells, &c.Corrections, &c.Accepted, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan capture: %w", err)
		}

		face, err := types.ParseFace(faceName)
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", c.CaptureID, err)
		}
		var names [][]string
		if err := json.Unmarshal([]byte(gridJSON), &names); err != nil {
			return nil, fmt.Errorf("capture %s: failed to decode grid: %w", c.CaptureID, err)
		}
		if c.Grid, err = cube.ParseGrid(face, names); err != nil {
			return nil, fmt.Errorf("capture %s: %w", c.CaptureID, err)
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

		captures = append(captures, c)
	}

	return captures, rows.Err()
}
