package gocube

import "fmt"

// Axis identifies one of the three rotation axes of the cube.
type Axis int8

const (
	AxisX Axis = iota // Left to right
	AxisY             // Down to up
	AxisZ             // Back to front
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether a names one of the three axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Coord is a lattice position of a cubie. Each component is -1, 0 or 1.
// Coord is a value type; rotation returns a new Coord.
type Coord struct {
	X, Y, Z int
}

// On returns the component of c along axis a.
func (c Coord) On(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Valid reports whether every component lies in {-1, 0, 1}.
func (c Coord) Valid() bool {
	return unit(c.X) && unit(c.Y) && unit(c.Z)
}

// IsOrigin reports whether c is the hidden center of the cube.
func (c Coord) IsOrigin() bool {
	return c == Coord{}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func unit(v int) bool {
	return v >= -1 && v <= 1
}

// Rotate90 rotates c a quarter turn about axis. A positive sign turns
// counter-clockwise when looking down the positive axis towards the
// origin (right-handed); a negative sign turns the other way. The
// component along axis is unchanged.
func Rotate90(c Coord, axis Axis, sign int) Coord {
	x, y, z := c.X, c.Y, c.Z
	switch axis {
	case AxisX:
		if sign > 0 {
			return Coord{x, -z, y}
		}
		return Coord{x, z, -y}
	case AxisY:
		if sign > 0 {
			return Coord{z, y, -x}
		}
		return Coord{-z, y, x}
	case AxisZ:
		if sign > 0 {
			return Coord{-y, x, z}
		}
		return Coord{y, -x, z}
	}
	return c
}

// RotateCoord applies Rotate90 |angleSign| times using the sign of
// angleSign for every step. An angleSign of 0 returns c unchanged.
func RotateCoord(c Coord, axis Axis, angleSign int) Coord {
	step := 1
	if angleSign < 0 {
		step = -1
		angleSign = -angleSign
	}
	for i := 0; i < angleSign; i++ {
		c = Rotate90(c, axis, step)
	}
	return c
}
