// Package gocube models the state of a 3x3x3 Rubik's cube as 26 cubies
// on an integer lattice and applies moves to it.
//
// # Model
//
// Every cubie sits at a Coord in {-1,0,1}^3 (the origin is the hidden
// core). Sticker colors are fixed when the cube is built and travel with
// the cubie; a turn changes only the cubie's position and its
// Orientation, which is kept as exact integer axis vectors.
//
// Axes follow a right-handed frame: X points Right, Y points Up and Z
// points Front.
//
// # Quick Start
//
//	cube := gocube.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyAlgorithm("F B2 L' D M2"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Notation
//
// ParseAlgorithm accepts F B R L U D M E S in either case, an optional
// apostrophe for counter-clockwise and an optional repeat count. "R2"
// expands to two quarter-turn R moves. Wide moves and whole-cube
// rotations are built with NewWideMove and NewRotation.
//
// # Concurrency
//
// A Cube is owned by one goroutine. Moves are applied synchronously and
// completely; callers that animate turns must serialize ApplyMove calls
// themselves.
package gocube
