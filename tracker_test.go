package gocube

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if tr.MoveCount() != 0 {
		t.Errorf("history should be empty after reset, got %d", tr.MoveCount())
	}
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	if err := tr.ApplyAlgorithm("R U F' M2"); err != nil {
		t.Fatal(err)
	}
	if tr.MoveCount() != 5 {
		t.Fatalf("MoveCount() = %d, want 5", tr.MoveCount())
	}

	for tr.MoveCount() > 0 {
		if _, err := tr.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if !tr.Cube().IsIdentity() {
		t.Error("undoing every move should restore identity")
		t.Log(tr.CubeString())
	}

	if _, err := tr.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Undo on empty history: got %v", err)
	}
}

func TestTrackerUndoReturnsLastMove(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R, UPrime)
	m, err := tr.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if m != UPrime {
		t.Errorf("Undo() = %v, want U'", m)
	}
	if got := FormatMoves(tr.Moves()); got != "R" {
		t.Errorf("Moves() = %q", got)
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.Apply(R, U)
	if tr.MoveCount() != 0 {
		t.Errorf("MoveCount() = %d, want 0", tr.MoveCount())
	}
	if tr.IsSolved() {
		t.Error("moves should still be applied")
	}
}

func TestTrackerRejectsInvalidMove(t *testing.T) {
	tr := NewTracker()
	if err := tr.ApplyMove(Move{Kind: KindSlice, Axis: AxisZ, Direction: Clockwise}); err == nil {
		t.Error("expected error for zero turns")
	}
	if tr.MoveCount() != 0 {
		t.Error("invalid move should not be recorded")
	}
}

func TestScramble(t *testing.T) {
	a := Scramble(rand.New(rand.NewPCG(3, 4)), 40)
	b := Scramble(rand.New(rand.NewPCG(3, 4)), 40)
	if len(a) != 40 {
		t.Fatalf("len = %d, want 40", len(a))
	}
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("same seed should give same scramble")
	}
	for i, m := range a {
		if err := m.Validate(); err != nil {
			t.Errorf("move %d invalid: %v", i, err)
		}
		if m.Kind != KindFace {
			t.Errorf("move %d is %v, want a face move", i, m.Kind)
		}
		if i > 0 && a[i-1].Face == m.Face {
			t.Errorf("face %s turned twice in a row at %d", m.Face, i)
		}
	}
}

func TestScrambleThenInverseIsIdentity(t *testing.T) {
	tr := NewTracker(WithInvariantChecks(true))
	moves := tr.Scramble(rand.New(rand.NewPCG(9, 9)), 25)
	if tr.Cube().IsIdentity() {
		t.Fatal("scramble should move the cube")
	}
	tr.Apply(InverseMoves(moves)...)
	if !tr.Cube().IsIdentity() {
		t.Error("applying the inverse scramble should restore identity")
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		alg  string
		want int
	}{
		{"R", 4},
		{"R2", 2},
		{"R U R' U'", 6},
		{"R U", 105},
		{"M2 U M2 U2 M2 U M2", 2},
	}
	for _, tt := range tests {
		n, err := Order(MustParseAlgorithm(tt.alg), 1260)
		if err != nil {
			t.Errorf("Order(%q): %v", tt.alg, err)
			continue
		}
		if n != tt.want {
			t.Errorf("Order(%q) = %d, want %d", tt.alg, n, tt.want)
		}
	}

	if _, err := Order(MustParseAlgorithm("R U"), 10); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("R U within 10: got %v", err)
	}
}
