// Package recorder keeps the working cube state of a scan session on disk
// and in the database.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubescan/internal/cube"
)

// AppState represents the persistent application state.
type AppState struct {
	DBPath    string     `json:"db_path"`
	SessionID string     `json:"session_id,omitempty"`
	State     cube.State `json:"state"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubescan", "state.json"), nil
}

// NewStateFile creates a state file manager, loading the file if it exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// Path returns the file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	var st AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	sf.state = st
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetSession sets the active session and its cube state.
func (sf *StateFile) SetSession(sessionID string, state cube.State) error {
	sf.state.SessionID = sessionID
	sf.state.State = state
	return sf.Save()
}

// SetState stores the cube state of the active session.
func (sf *StateFile) SetState(state cube.State) error {
	sf.state.State = state
	return sf.Save()
}

// HasSession returns true if there is an active session.
func (sf *StateFile) HasSession() bool {
	return sf.state.SessionID != ""
}

// SessionID returns the active session ID.
func (sf *StateFile) SessionID() string {
	return sf.state.SessionID
}

// DBPath returns the database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}
