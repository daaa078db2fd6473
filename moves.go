package gocube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	// Right face moves
	R      = mustMove(NewFaceMove(FaceR, Clockwise, 1))        // Right clockwise
	RPrime = mustMove(NewFaceMove(FaceR, CounterClockwise, 1)) // Right counter-clockwise
	R2     = mustMove(NewFaceMove(FaceR, Clockwise, 2))        // Right 180

	// Left face moves
	L      = mustMove(NewFaceMove(FaceL, Clockwise, 1))        // Left clockwise
	LPrime = mustMove(NewFaceMove(FaceL, CounterClockwise, 1)) // Left counter-clockwise
	L2     = mustMove(NewFaceMove(FaceL, Clockwise, 2))        // Left 180

	// Up face moves
	U      = mustMove(NewFaceMove(FaceU, Clockwise, 1))        // Up clockwise
	UPrime = mustMove(NewFaceMove(FaceU, CounterClockwise, 1)) // Up counter-clockwise
	U2     = mustMove(NewFaceMove(FaceU, Clockwise, 2))        // Up 180

	// Down face moves
	D      = mustMove(NewFaceMove(FaceD, Clockwise, 1))        // Down clockwise
	DPrime = mustMove(NewFaceMove(FaceD, CounterClockwise, 1)) // Down counter-clockwise
	D2     = mustMove(NewFaceMove(FaceD, Clockwise, 2))        // Down 180

	// Front face moves
	F      = mustMove(NewFaceMove(FaceF, Clockwise, 1))        // Front clockwise
	FPrime = mustMove(NewFaceMove(FaceF, CounterClockwise, 1)) // Front counter-clockwise
	F2     = mustMove(NewFaceMove(FaceF, Clockwise, 2))        // Front 180

	// Back face moves
	B      = mustMove(NewFaceMove(FaceB, Clockwise, 1))        // Back clockwise
	BPrime = mustMove(NewFaceMove(FaceB, CounterClockwise, 1)) // Back counter-clockwise
	B2     = mustMove(NewFaceMove(FaceB, Clockwise, 2))        // Back 180

	// Slice moves
	M = mustMove(NewSliceMove(AxisX, Clockwise, 1)) // Middle, follows L
	E = mustMove(NewSliceMove(AxisY, Clockwise, 1)) // Equator, follows D
	S = mustMove(NewSliceMove(AxisZ, Clockwise, 1)) // Standing, follows F

	// Whole-cube rotations
	X = mustMove(NewRotation(AxisX, Clockwise, 1)) // Follows R
	Y = mustMove(NewRotation(AxisY, Clockwise, 1)) // Follows U
	Z = mustMove(NewRotation(AxisZ, Clockwise, 1)) // Follows F
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// InverseMoves returns the moves that undo moves, in application order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
