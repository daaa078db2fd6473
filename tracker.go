package gocube

import (
	"fmt"
	"math/rand/v2"
)

// Tracker wraps a Cube and records the moves applied to it so they can
// be listed or undone.
type Tracker struct {
	cube  *Cube
	cfg   *config
	moves []Move
}

// NewTracker creates a new tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cube := NewCube(opts...)
	return &Tracker{
		cube: cube,
		cfg:  cube.cfg,
	}
}

// Reset resets the tracker to a solved cube state and clears history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.moves = nil
}

// ApplyMove applies a move and records it.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.cube.ApplyMove(m); err != nil {
		return err
	}
	if t.cfg.moveHistory {
		t.moves = append(t.moves, m)
	}
	return nil
}

// Apply applies multiple moves, stopping at the first invalid one.
func (t *Tracker) Apply(moves ...Move) error {
	for i, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// ApplyAlgorithm parses notation and applies the moves.
func (t *Tracker) ApplyAlgorithm(notation string) error {
	moves, err := ParseAlgorithm(notation)
	if err != nil {
		return err
	}
	return t.Apply(moves...)
}

// Undo reverts the most recent move and returns it.
func (t *Tracker) Undo() (Move, error) {
	if len(t.moves) == 0 {
		return Move{}, ErrNoHistory
	}
	last := t.moves[len(t.moves)-1]
	if err := t.cube.ApplyMove(last.Inverse()); err != nil {
		return Move{}, err
	}
	t.moves = t.moves[:len(t.moves)-1]
	return last, nil
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// MoveCount returns the number of recorded moves.
func (t *Tracker) MoveCount() int {
	return len(t.moves)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}

// Scramble applies n random face moves drawn from rng and returns them.
func (t *Tracker) Scramble(rng *rand.Rand, n int) []Move {
	moves := Scramble(rng, n)
	// Scramble only produces valid moves.
	_ = t.Apply(moves...)
	return moves
}
