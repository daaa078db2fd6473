package gocube

import (
	"errors"
	"testing"
)

func TestSignTable(t *testing.T) {
	tests := []struct {
		face Face
		axis Axis
		sign int // for a clockwise turn
	}{
		{FaceF, AxisZ, -1},
		{FaceB, AxisZ, 1},
		{FaceR, AxisX, -1},
		{FaceL, AxisX, 1},
		{FaceU, AxisY, -1},
		{FaceD, AxisY, 1},
	}
	for _, tt := range tests {
		spec, err := FaceSpec(tt.face)
		if err != nil {
			t.Fatalf("FaceSpec(%s): %v", tt.face, err)
		}
		if spec.Axis != tt.axis {
			t.Errorf("%s axis = %v, want %v", tt.face, spec.Axis, tt.axis)
		}
		if got := AngleSign(spec, Clockwise); got != tt.sign {
			t.Errorf("%s clockwise sign = %d, want %d", tt.face, got, tt.sign)
		}
		if got := AngleSign(spec, CounterClockwise); got != -tt.sign {
			t.Errorf("%s counter-clockwise sign = %d, want %d", tt.face, got, -tt.sign)
		}
	}
}

func TestSliceSignsFollowReferenceFace(t *testing.T) {
	tests := []struct {
		slice Move
		ref   Move
	}{
		{M, L},
		{E, D},
		{S, F},
	}
	for _, tt := range tests {
		if tt.slice.AngleSign() != tt.ref.AngleSign() {
			t.Errorf("%s sign %d, %s sign %d", tt.slice, tt.slice.AngleSign(), tt.ref, tt.ref.AngleSign())
		}
		st, _ := tt.slice.Turn()
		if st.Layers != LayerMiddle {
			t.Errorf("%s layers = %v, want middle", tt.slice, st.Layers)
		}
	}
}

func TestRotationSignsFollowReferenceFace(t *testing.T) {
	pairs := [][2]Move{{X, R}, {Y, U}, {Z, F}}
	for _, p := range pairs {
		if p[0].AngleSign() != p[1].AngleSign() {
			t.Errorf("%s sign differs from %s", p[0], p[1])
		}
	}
}

func TestWideSpecAddsMiddleLayer(t *testing.T) {
	spec, err := WideSpec(FaceL)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Layers != LayerNeg|LayerMiddle {
		t.Errorf("wide L layers = %v", spec.Layers)
	}
	if spec.AxisSign != -1 {
		t.Errorf("wide L axis sign = %d", spec.AxisSign)
	}
}

func TestMoveConstructionErrors(t *testing.T) {
	if _, err := NewFaceMove(FaceR, Clockwise, 0); !errors.Is(err, ErrZeroTurns) {
		t.Errorf("zero turns: got %v", err)
	}
	if _, err := NewFaceMove(Face("Q"), Clockwise, 1); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("unknown face: got %v", err)
	}
	if _, err := NewSliceMove(Axis(7), Clockwise, 1); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("unknown slice axis: got %v", err)
	}
	if _, err := NewRotation(Axis(-1), Clockwise, 1); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("unknown rotation axis: got %v", err)
	}
	if _, err := NewWideMove(FaceU, TurnDirection(0), 1); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("unknown direction: got %v", err)
	}
	if err := (Move{Kind: Kind(9), Turns: 1, Direction: Clockwise}).Validate(); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("unknown kind: got %v", err)
	}
}

func TestNewTurnValidation(t *testing.T) {
	if _, err := NewTurn(AxisX, AnyLayer, 1); !errors.Is(err, ErrInvalidLayers) {
		t.Errorf("empty layers: got %v", err)
	}
	if _, err := NewTurn(AxisX, Layers(2), 1); !errors.Is(err, ErrInvalidLayers) {
		t.Errorf("out of range layer: got %v", err)
	}
	if _, err := NewTurn(AxisX, LayerPos, 0); !errors.Is(err, ErrZeroTurns) {
		t.Errorf("zero turns: got %v", err)
	}
	if _, err := NewTurn(Axis(3), LayerPos, 1); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("bad axis: got %v", err)
	}
	turn, err := NewTurn(AxisY, Layers(-1, 0, 1), -1)
	if err != nil {
		t.Fatal(err)
	}
	if turn.Layers != AllLayers {
		t.Errorf("layers = %v, want all", turn.Layers)
	}
}

func TestMoveTurn(t *testing.T) {
	turn, err := R2.Turn()
	if err != nil {
		t.Fatal(err)
	}
	want := Turn{Axis: AxisX, Layers: LayerPos, QuarterTurns: -2}
	if turn != want {
		t.Errorf("R2 turn = %v, want %v", turn, want)
	}
	if inv := turn.Inverse(); inv.QuarterTurns != 2 {
		t.Errorf("inverse quarter turns = %d", inv.QuarterTurns)
	}
}

func TestNormalizeTurns(t *testing.T) {
	tests := map[int]int{
		0: 0, 1: 1, 2: 2, 3: -1, 4: 0, 5: 1,
		-1: -1, -2: -2, -3: 1, -4: 0, -5: -1,
	}
	for in, want := range tests {
		if got := NormalizeTurns(in); got != want {
			t.Errorf("NormalizeTurns(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLayerSet(t *testing.T) {
	s := Layers(1, 0)
	if !s.Contains(1) || !s.Contains(0) || s.Contains(-1) {
		t.Errorf("Layers(1, 0) = %v", s)
	}
	if !AnyLayer.Contains(-1) {
		t.Error("AnyLayer should contain everything")
	}
	if s.String() != "{0,1}" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{R, "R"},
		{RPrime, "R'"},
		{R2, "R2"},
		{mustMove(NewFaceMove(FaceR, CounterClockwise, 2)), "R'2"},
		{mustMove(NewFaceMove(FaceR, Clockwise, -1)), "R'"},
		{M, "M"},
		{E.Inverse(), "E'"},
		{mustMove(NewWideMove(FaceU, Clockwise, 1)), "u"},
		{mustMove(NewRotation(AxisX, CounterClockwise, 1)), "x'"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if got := InverseMoves(SexyMove); FormatMoves(got) != "U R U' R'" {
		t.Errorf("InverseMoves(sexy) = %s", FormatMoves(got))
	}
}
