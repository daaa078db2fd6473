package gocube

import (
	"fmt"
	"strconv"
	"strings"
)

// Face represents one of the six outer faces in standard notation.
type Face string

const (
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
)

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	switch f {
	case FaceF, FaceB, FaceR, FaceL, FaceU, FaceD:
		return true
	}
	return false
}

// Kind distinguishes the four families of moves.
type Kind int

const (
	KindFace     Kind = iota // One outer layer
	KindSlice                // Middle layer only (M, E, S)
	KindWide                 // Outer layer plus middle layer
	KindRotation             // All three layers
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindSlice:
		return "slice"
	case KindWide:
		return "wide"
	case KindRotation:
		return "rotation"
	default:
		return "?"
	}
}

// TurnDirection is the visual sense of a turn, seen facing the turned layer.
type TurnDirection int

const (
	Clockwise        TurnDirection = 1
	CounterClockwise TurnDirection = -1
)

// Sign returns -1 for Clockwise and +1 for CounterClockwise, the
// per-direction factor of the angle sign.
func (d TurnDirection) Sign() int {
	if d == Clockwise {
		return -1
	}
	return 1
}

// Reverse returns the opposite direction.
func (d TurnDirection) Reverse() TurnDirection {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d TurnDirection) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}

// LayerSet is a set of layer coordinates drawn from {-1, 0, 1}.
// The zero value AnyLayer selects every cubie regardless of position.
type LayerSet uint8

const (
	AnyLayer LayerSet = 0

	LayerNeg    LayerSet = 1 << 0 // coordinate -1
	LayerMiddle LayerSet = 1 << 1 // coordinate 0
	LayerPos    LayerSet = 1 << 2 // coordinate +1

	AllLayers = LayerNeg | LayerMiddle | LayerPos
)

// Layers builds a LayerSet from coordinates. Values outside {-1, 0, 1}
// produce an invalid set that NewTurn rejects.
func Layers(coords ...int) LayerSet {
	var s LayerSet
	for _, c := range coords {
		switch c {
		case -1:
			s |= LayerNeg
		case 0:
			s |= LayerMiddle
		case 1:
			s |= LayerPos
		default:
			s |= 1 << 7
		}
	}
	return s
}

// Contains reports whether coordinate v is in s. AnyLayer contains everything.
func (s LayerSet) Contains(v int) bool {
	if s == AnyLayer {
		return true
	}
	if !unit(v) {
		return false
	}
	return s&(1<<(v+1)) != 0
}

// Valid reports whether s is a non-empty subset of {-1, 0, 1}.
func (s LayerSet) Valid() bool {
	return s != AnyLayer && s&^AllLayers == 0
}

func (s LayerSet) String() string {
	if s == AnyLayer {
		return "{*}"
	}
	var parts []string
	for v := -1; v <= 1; v++ {
		if s.Contains(v) {
			parts = append(parts, strconv.Itoa(v))
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// RotationSpec is the fixed geometry of a move family member: which
// axis it turns about, which layers it selects, and the two signs that
// encode the handedness convention.
type RotationSpec struct {
	Axis                Axis
	Layers              LayerSet
	AxisSign            int
	DirectionMultiplier int
}

// FaceSpec returns the rotation geometry of an outer face turn.
func FaceSpec(f Face) (RotationSpec, error) {
	switch f {
	case FaceF:
		return RotationSpec{AxisZ, LayerPos, 1, 1}, nil
	case FaceB:
		return RotationSpec{AxisZ, LayerNeg, -1, 1}, nil
	case FaceR:
		return RotationSpec{AxisX, LayerPos, 1, 1}, nil
	case FaceL:
		return RotationSpec{AxisX, LayerNeg, -1, 1}, nil
	case FaceU:
		return RotationSpec{AxisY, LayerPos, 1, 1}, nil
	case FaceD:
		return RotationSpec{AxisY, LayerNeg, -1, 1}, nil
	}
	return RotationSpec{}, fmt.Errorf("%w: %q", ErrUnknownFace, string(f))
}

// SliceSpec returns the rotation geometry of a middle-layer turn.
// M follows L, E follows D and S follows F.
func SliceSpec(axis Axis) (RotationSpec, error) {
	switch axis {
	case AxisX, AxisY:
		return RotationSpec{axis, LayerMiddle, 1, -1}, nil
	case AxisZ:
		return RotationSpec{axis, LayerMiddle, 1, 1}, nil
	}
	return RotationSpec{}, fmt.Errorf("%w: %d", ErrUnknownAxis, axis)
}

// WideSpec returns the rotation geometry of a face turn together with
// the middle layer.
func WideSpec(f Face) (RotationSpec, error) {
	spec, err := FaceSpec(f)
	if err != nil {
		return RotationSpec{}, err
	}
	spec.Layers |= LayerMiddle
	return spec, nil
}

// RotationAxisSpec returns the rotation geometry of a whole-cube
// rotation. x follows R, y follows U and z follows F.
func RotationAxisSpec(axis Axis) (RotationSpec, error) {
	if !axis.Valid() {
		return RotationSpec{}, fmt.Errorf("%w: %d", ErrUnknownAxis, axis)
	}
	return RotationSpec{axis, AnyLayer, 1, 1}, nil
}

// AngleSign returns the signed quarter turn applied for one turn of spec
// in direction d.
func AngleSign(spec RotationSpec, d TurnDirection) int {
	return d.Sign() * spec.AxisSign * spec.DirectionMultiplier
}

// Move is a declarative turn in notation terms. Construct moves with
// NewFaceMove, NewSliceMove, NewWideMove or NewRotation; a literal Move
// is checked by Validate before it is applied.
type Move struct {
	Kind      Kind
	Face      Face          // Set for KindFace and KindWide
	Axis      Axis          // Set for KindSlice and KindRotation
	Direction TurnDirection // Clockwise or CounterClockwise
	Turns     int           // Number of quarter turns in Direction, never zero
}

// NewFaceMove returns a turn of one outer face.
func NewFaceMove(f Face, d TurnDirection, turns int) (Move, error) {
	return newMove(Move{Kind: KindFace, Face: f, Direction: d, Turns: turns})
}

// NewSliceMove returns a turn of the middle layer perpendicular to axis
// (M for X, E for Y, S for Z).
func NewSliceMove(axis Axis, d TurnDirection, turns int) (Move, error) {
	return newMove(Move{Kind: KindSlice, Axis: axis, Direction: d, Turns: turns})
}

// NewWideMove returns a turn of an outer face and the adjacent middle layer.
func NewWideMove(f Face, d TurnDirection, turns int) (Move, error) {
	return newMove(Move{Kind: KindWide, Face: f, Direction: d, Turns: turns})
}

// NewRotation returns a whole-cube rotation about axis.
func NewRotation(axis Axis, d TurnDirection, turns int) (Move, error) {
	return newMove(Move{Kind: KindRotation, Axis: axis, Direction: d, Turns: turns})
}

func newMove(m Move) (Move, error) {
	if err := m.Validate(); err != nil {
		return Move{}, err
	}
	return m, nil
}

// mustMove is used for the predefined moves.
func mustMove(m Move, err error) Move {
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks that m names a known face or axis, a direction, and a
// non-zero number of turns.
func (m Move) Validate() error {
	if m.Turns == 0 {
		return ErrZeroTurns
	}
	if m.Direction != Clockwise && m.Direction != CounterClockwise {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, m.Direction)
	}
	_, err := m.Spec()
	return err
}

// Spec returns the rotation geometry of m.
func (m Move) Spec() (RotationSpec, error) {
	switch m.Kind {
	case KindFace:
		return FaceSpec(m.Face)
	case KindSlice:
		return SliceSpec(m.Axis)
	case KindWide:
		return WideSpec(m.Face)
	case KindRotation:
		return RotationAxisSpec(m.Axis)
	}
	return RotationSpec{}, fmt.Errorf("%w: kind %d", ErrInvalidMove, m.Kind)
}

// AngleSign returns the signed quarter turn for a single turn of m.
// It returns 0 if m is not valid.
func (m Move) AngleSign() int {
	spec, err := m.Spec()
	if err != nil {
		return 0
	}
	return AngleSign(spec, m.Direction)
}

// Turn resolves m into its normalized axis, layer set and signed
// quarter-turn count.
func (m Move) Turn() (Turn, error) {
	if err := m.Validate(); err != nil {
		return Turn{}, err
	}
	spec, _ := m.Spec()
	return Turn{
		Axis:         spec.Axis,
		Layers:       spec.Layers,
		QuarterTurns: AngleSign(spec, m.Direction) * m.Turns,
	}, nil
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 becomes R'2.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = m.Direction.Reverse()
	return inv
}

// Letter returns the notation letter of m: F B R L U D for faces,
// M E S for slices, lower case for wide moves and x y z for rotations.
func (m Move) Letter() string {
	switch m.Kind {
	case KindFace:
		return string(m.Face)
	case KindWide:
		return strings.ToLower(string(m.Face))
	case KindSlice:
		switch m.Axis {
		case AxisX:
			return "M"
		case AxisY:
			return "E"
		case AxisZ:
			return "S"
		}
	case KindRotation:
		return strings.ToLower(m.Axis.String())
	}
	return "?"
}

// Notation returns the notation string for this move.
// Examples: R, R', R2, R'2, M, u, x'
func (m Move) Notation() string {
	s := m.Letter()
	dir, turns := m.Direction, m.Turns
	if turns < 0 {
		dir, turns = dir.Reverse(), -turns
	}
	if dir == CounterClockwise {
		s += "'"
	}
	if turns != 1 {
		s += strconv.Itoa(turns)
	}
	return s
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Turn is the normalized form every move resolves to: rotate the
// cubies whose coordinate on Axis is in Layers by QuarterTurns signed
// quarter turns.
type Turn struct {
	Axis         Axis
	Layers       LayerSet
	QuarterTurns int
}

// NewTurn validates and returns a Turn. The layer set must be a
// non-empty subset of {-1, 0, 1}; use AllLayers for a whole-cube turn.
func NewTurn(axis Axis, layers LayerSet, quarterTurns int) (Turn, error) {
	t := Turn{Axis: axis, Layers: layers, QuarterTurns: quarterTurns}
	if err := t.validate(true); err != nil {
		return Turn{}, err
	}
	return t, nil
}

func (t Turn) validate(strictLayers bool) error {
	if !t.Axis.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAxis, t.Axis)
	}
	if t.QuarterTurns == 0 {
		return ErrZeroTurns
	}
	if t.Layers == AnyLayer && !strictLayers {
		return nil
	}
	if !t.Layers.Valid() {
		return fmt.Errorf("%w: %08b", ErrInvalidLayers, uint8(t.Layers))
	}
	return nil
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	t.QuarterTurns = -t.QuarterTurns
	return t
}

func (t Turn) String() string {
	return fmt.Sprintf("%s%s%+d", t.Axis, t.Layers, t.QuarterTurns)
}

// NormalizeTurns reduces a signed quarter-turn count modulo 4:
// 3 -> -1, -3 -> 1, 4 -> 0. Half turns keep their sign.
func NormalizeTurns(turns int) int {
	n := turns % 4
	switch n {
	case 3:
		return -1
	case -3:
		return 1
	}
	return n
}
