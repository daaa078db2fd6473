package gocube

import "math/rand/v2"

var scrambleFaces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Scramble returns n random outer face moves drawn from rng. Each move
// is a quarter or half turn in either direction, and no face is turned
// twice in a row.
func Scramble(rng *rand.Rand, n int) []Move {
	moves := make([]Move, 0, n)
	var last Face
	for len(moves) < n {
		face := scrambleFaces[rng.IntN(len(scrambleFaces))]
		if face == last {
			continue
		}
		last = face

		dir := Clockwise
		if rng.IntN(2) == 1 {
			dir = CounterClockwise
		}
		turns := 1 + rng.IntN(2)
		moves = append(moves, Move{Kind: KindFace, Face: face, Direction: dir, Turns: turns})
	}
	return moves
}

// Order returns how many times moves must be applied to a solved cube
// before it is back at home (see AtHome). It gives up after limit
// repetitions.
func Order(moves []Move, limit int) (int, error) {
	if len(moves) == 0 {
		return 0, ErrInvalidMove
	}
	c := NewCube()
	for n := 1; n <= limit; n++ {
		if err := c.Apply(moves...); err != nil {
			return 0, err
		}
		if c.AtHome() {
			return n, nil
		}
	}
	return 0, ErrOrderNotFound
}
