package types

import (
	"errors"
	"testing"
)

func TestParseMove_AllNotations(t *testing.T) {
	for _, m := range AllMoves() {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.Notation(), err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%q) = %v, want %v", m.Notation(), parsed, m)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "R''", "M", "2R"} {
		_, err := ParseMove(s)
		if err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
			continue
		}
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q) error %v should wrap ErrInvalidMove", s, err)
		}
		var ime *InvalidMoveError
		if !errors.As(err, &ime) {
			t.Errorf("ParseMove(%q) error should be *InvalidMoveError", s)
		}
	}
}

func TestParseMoves_ReportsPosition(t *testing.T) {
	_, err := ParseMoves("R U X U'")
	var ime *InvalidMoveError
	if !errors.As(err, &ime) {
		t.Fatalf("expected *InvalidMoveError, got %v", err)
	}
	if ime.Position != 3 || ime.Notation != "X" {
		t.Errorf("got position %d notation %q, want 3 %q", ime.Position, ime.Notation, "X")
	}
}

func TestAllMoves_TotalOrder(t *testing.T) {
	moves := AllMoves()
	if len(moves) != 18 {
		t.Fatalf("AllMoves returned %d moves, want 18", len(moves))
	}
	seen := map[Move]bool{}
	for i, m := range moves {
		if m.Index() != i {
			t.Errorf("%v.Index() = %d, want %d", m, m.Index(), i)
		}
		if seen[m] {
			t.Errorf("duplicate move %v", m)
		}
		seen[m] = true
		if i > 0 && !moves[i-1].Less(m) {
			t.Errorf("%v should order before %v", moves[i-1], m)
		}
	}
}

func TestInverse(t *testing.T) {
	cases := map[string]string{"R": "R'", "R'": "R", "R2": "R2", "U'": "U"}
	for in, want := range cases {
		m, _ := ParseMove(in)
		if got := m.Inverse().Notation(); got != want {
			t.Errorf("Inverse(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R", "R'"},
		{"U R R' U'", ""},
		{"R U R' U'", "R U R' U'"},
		{"F F F", "F'"},
	}
	for _, c := range cases {
		moves, err := ParseMoves(c.in)
		if err != nil {
			t.Fatalf("ParseMoves(%q): %v", c.in, err)
		}
		if got := FormatMoves(Simplify(moves)); got != c.want {
			t.Errorf("Simplify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInverseMoves(t *testing.T) {
	moves, _ := ParseMoves("R U2 F'")
	if got := FormatMoves(InverseMoves(moves)); got != "F U2 R'" {
		t.Errorf("InverseMoves = %q, want %q", got, "F U2 R'")
	}
}

func TestFaceForCapture(t *testing.T) {
	want := []Face{FaceF, FaceB, FaceU, FaceD, FaceR, FaceL}
	for i, f := range want {
		got, err := FaceForCapture(i)
		if err != nil || got != f {
			t.Errorf("FaceForCapture(%d) = %v, %v; want %v", i, got, err, f)
		}
	}
	if _, err := FaceForCapture(6); err == nil {
		t.Error("FaceForCapture(6) should fail")
	}
}

func TestColorNamesRoundTrip(t *testing.T) {
	for _, c := range Colors {
		parsed, err := ParseColor(c.Name())
		if err != nil || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.Name(), parsed, err)
		}
	}
	if _, err := ParseColor("purple"); err == nil {
		t.Error("ParseColor(purple) should fail")
	}
}
