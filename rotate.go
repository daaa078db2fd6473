package gocube

import "fmt"

// SelectAffected returns the indices of the cubies whose coordinate on
// axis is in layers, in input order. AnyLayer selects every cubie.
// Selection does not modify cubies.
func SelectAffected(cubies []Cubie, axis Axis, layers LayerSet) []int {
	selected := make([]int, 0, 9)
	for i := range cubies {
		if layers.Contains(cubies[i].pos.On(axis)) {
			selected = append(selected, i)
		}
	}
	return selected
}

// ApplyMove applies a move to the cube. The move is validated first;
// an invalid move leaves the cube untouched.
func (c *Cube) ApplyMove(m Move) error {
	t, err := m.Turn()
	if err != nil {
		return err
	}
	c.turn(t)
	c.cfg.logger.Trace().
		Str("move", m.Notation()).
		Stringer("turn", t).
		Msg("applied move")
	return nil
}

// Apply applies moves in order, stopping at the first invalid move.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// ApplyAlgorithm parses notation and applies the resulting moves. The
// cube is left untouched if the notation does not parse.
func (c *Cube) ApplyAlgorithm(notation string) error {
	moves, err := ParseAlgorithm(notation)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// ApplyTurn applies a normalized turn. A Turn with AnyLayer turns the
// whole cube.
func (c *Cube) ApplyTurn(t Turn) error {
	if err := t.validate(false); err != nil {
		return err
	}
	c.turn(t)
	c.cfg.logger.Trace().Stringer("turn", t).Msg("applied turn")
	return nil
}

// turn rotates the selected cubies one quarter turn at a time.
func (c *Cube) turn(t Turn) {
	n := NormalizeTurns(t.QuarterTurns)
	if n == 0 {
		return
	}
	step := 1
	if n < 0 {
		step, n = -1, -n
	}

	// Rotation about an axis preserves the coordinate on that axis, so
	// the selection is the same for every quarter turn.
	selected := SelectAffected(c.cubies[:], t.Axis, t.Layers)
	for q := 0; q < n; q++ {
		for _, i := range selected {
			cb := &c.cubies[i]
			cb.pos = Rotate90(cb.pos, t.Axis, step)
			cb.orient = cb.orient.Rotate(t.Axis, step)
		}
		if c.cfg.invariantChecks {
			if err := c.Verify(); err != nil {
				panic(err)
			}
		}
	}
}
