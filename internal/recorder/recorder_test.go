package recorder

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

func newTestSession(t *testing.T) (*Session, *StateFile, *storage.DB) {
	t.Helper()
	dir := t.TempDir()

	db, err := storage.Open(filepath.Join(dir, "cubescan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sf, err := NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	logger := log.New(io.Discard)
	return NewSession(db, sf, logger), sf, db
}

func TestStateFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	sf, err := NewStateFile(path)
	require.NoError(t, err)
	assert.False(t, sf.HasSession())

	require.NoError(t, sf.SetDBPath("/tmp/x.db"))
	require.NoError(t, sf.SetSession("abc", cubescan.Solved()))

	loaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.SessionID())
	assert.Equal(t, "/tmp/x.db", loaded.DBPath())
	assert.True(t, loaded.State().State.Equal(cubescan.Solved()))
}

func TestSession_ApplyUndoPersist(t *testing.T) {
	sess, sf, db := newTestSession(t)

	_, err := sess.Start("", cubescan.Solved())
	require.NoError(t, err)

	state, err := sess.ApplyNotation("R U")
	require.NoError(t, err)
	assert.False(t, state.IsSolved())
	assert.Equal(t, "R U", cubescan.FormatMoves(sess.History()))

	records, err := storage.NewMoveRepository(db).ListBySession(sess.SessionID())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	state, ok, err := sess.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	state, ok, err = sess.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, state.IsSolved())

	_, ok, err = sess.Undo()
	require.NoError(t, err)
	assert.False(t, ok)

	records, err = storage.NewMoveRepository(db).ListBySession(sess.SessionID())
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.True(t, sf.State().State.IsSolved())
}

func TestSession_ResumeRestoresHistory(t *testing.T) {
	sess, sf, db := newTestSession(t)

	id, err := sess.Start("", cubescan.Solved())
	require.NoError(t, err)
	_, err = sess.ApplyNotation("F R2 D'")
	require.NoError(t, err)

	resumed := NewSession(db, sf, log.New(io.Discard))
	require.NoError(t, resumed.ResumeOrStart())
	assert.Equal(t, id, resumed.SessionID())
	assert.True(t, resumed.State().Equal(sess.State()))
	assert.Equal(t, "F R2 D'", cubescan.FormatMoves(resumed.History()))

	// Undo continues where the first session left off.
	_, err = resumed.ApplyNotation("U")
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, ok, err := resumed.Undo()
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.True(t, resumed.State().IsSolved())
}

func TestSession_PartialFailureKeepsAppliedMoves(t *testing.T) {
	sess, _, db := newTestSession(t)

	_, err := sess.Start("", cubescan.Solved().Without(cubescan.FaceL))
	require.NoError(t, err)

	// R avoids the left face, L needs it.
	_, err = sess.ApplyNotation("R L")
	assert.ErrorIs(t, err, cubescan.ErrIncompleteState)
	assert.Equal(t, "R", cubescan.FormatMoves(sess.History()))

	records, err := storage.NewMoveRepository(db).ListBySession(sess.SessionID())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSession_RecordCapture(t *testing.T) {
	sess, _, db := newTestSession(t)
	_, err := sess.Start("", cubescan.NewState())
	require.NoError(t, err)

	frame := cubescan.Solved()
	grid, _ := frame.Get(cubescan.FaceF)
	capture := &cubescan.Capture{ID: "cap-1", Face: cubescan.FaceF, Grid: grid, Score: 92, Valid: 9}

	state, err := sess.RecordCapture(capture, false)
	require.NoError(t, err)
	assert.Zero(t, state.FaceCount())

	capture.ID = "cap-2"
	state, err = sess.RecordCapture(capture, true)
	require.NoError(t, err)
	assert.True(t, state.Has(cubescan.FaceF))

	stored, err := storage.NewCaptureRepository(db).ListBySession(sess.SessionID())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.False(t, stored[0].Accepted)
	assert.True(t, stored[1].Accepted)
}

func TestSession_NoSession(t *testing.T) {
	sess, _, _ := newTestSession(t)
	_, err := sess.ApplyNotation("R")
	assert.ErrorIs(t, err, ErrNoSession)
}
