package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubescan"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModel_StepMode(t *testing.T) {
	moves, err := cubescan.ParseMoves("R U R' U'")
	require.NoError(t, err)

	m := newPlayModel(cubescan.Solved(), moves, 2, true)
	assert.Nil(t, m.Init())

	for range 4 {
		m.Update(key("n"))
	}
	assert.Len(t, m.played, 4)
	assert.Equal(t, 0, m.queue.Len())

	want, err := cubescan.ApplyNotation(cubescan.Solved(), "R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, want, m.state)

	// Past the end is a no-op.
	m.Update(key("n"))
	assert.Len(t, m.played, 4)
	assert.NoError(t, m.err)

	m.Update(key("r"))
	assert.Empty(t, m.played)
	assert.Equal(t, cubescan.Solved(), m.state)
	assert.Equal(t, 4, m.queue.Len())
}

func TestPlayModel_TicksWhenRunning(t *testing.T) {
	moves, err := cubescan.ParseMoves("R2")
	require.NoError(t, err)

	m := newPlayModel(cubescan.Solved(), moves, 2, false)
	require.NotNil(t, m.Init())

	_, cmd := m.Update(playTickMsg(time.Now()))
	assert.Len(t, m.played, 1)
	assert.Nil(t, cmd, "no tick scheduled once the queue is drained")
}

func TestPlayModel_StopsOnIncompleteState(t *testing.T) {
	moves, err := cubescan.ParseMoves("F R")
	require.NoError(t, err)

	start := cubescan.Solved().Without(cubescan.FaceB)
	m := newPlayModel(start, moves, 2, false)

	m.Update(playTickMsg(time.Now()))
	m.Update(playTickMsg(time.Now()))

	assert.Len(t, m.played, 1)
	assert.ErrorIs(t, m.err, cubescan.ErrIncompleteState)
	assert.True(t, m.paused)
	assert.Equal(t, 1, m.queue.Len(), "failed move stays queued")
	assert.Contains(t, m.View(), "Move 1/2")
}

func TestPlayModel_Speed(t *testing.T) {
	m := newPlayModel(cubescan.Solved(), nil, 2, false)
	for range 5 {
		m.Update(key("+"))
	}
	assert.Equal(t, 16.0, m.speed)
	for range 10 {
		m.Update(key("-"))
	}
	assert.Equal(t, 0.25, m.speed)
}

func TestRenderNet_AbsentFaces(t *testing.T) {
	out := renderNet(cubescan.NewState())
	assert.Contains(t, out, "..")
	assert.Equal(t, 9, strings.Count(out, "\n"))
}
