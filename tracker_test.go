package cubescan

import (
	"errors"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(Solved())
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	if _, err := tr.Apply(R); err != nil {
		t.Fatal(err)
	}
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset(Solved())
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if len(tr.History()) != 0 {
		t.Error("Reset should clear history")
	}
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker(Solved())
	if _, err := tr.ApplyNotation("R U F'"); err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(tr.History()); got != "R U F'" {
		t.Errorf("History = %q", got)
	}

	for i := 0; i < 3; i++ {
		if _, ok := tr.Undo(); !ok {
			t.Fatalf("Undo %d failed", i)
		}
	}
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after undoing every move")
		t.Log(tr.CubeString())
	}
	if _, ok := tr.Undo(); ok {
		t.Error("Undo with empty history should report false")
	}
}

func TestTrackerOnChange(t *testing.T) {
	tr := NewTracker(Solved())

	var seen []Move
	tr.OnChange(func(s State, m Move) {
		seen = append(seen, m)
	})

	if _, err := tr.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	tr.Undo()

	if got := FormatMoves(seen); got != "R U U'" {
		t.Errorf("callbacks = %q, want \"R U U'\"", got)
	}
}

func TestTrackerIncompleteState(t *testing.T) {
	tr := NewTracker(NewState())
	tr.SetFace(NewFaceGrid(FaceU, [3][3]Color{
		{White, White, White},
		{White, White, White},
		{White, White, White},
	}))

	_, err := tr.Apply(U)
	if !errors.Is(err, ErrIncompleteState) {
		t.Fatalf("expected ErrIncompleteState, got %v", err)
	}
	if len(tr.History()) != 0 {
		t.Error("failed move should not enter history")
	}
	if tr.State().FaceCount() != 1 {
		t.Error("failed move should leave state unchanged")
	}
}
