package gocube

import (
	"fmt"
	"strings"
)

// CubieCount is the number of visible cubies in a 3x3x3 cube.
const CubieCount = 26

// Cube represents a 3x3x3 Rubik's cube as 26 cubies on the integer
// lattice {-1,0,1}^3 without the origin.
//
// Cubies live in a fixed arena and are referred to by index; the index
// of a cubie never changes, only its position and orientation do. The
// arena is ordered by home position: x, then y, then z ascending.
//
// A Cube is not safe for concurrent use. Each move is applied fully
// before ApplyMove returns.
type Cube struct {
	cubies [CubieCount]Cubie
	cfg    *config
}

// NewCube creates a cube in the solved (identity) configuration.
func NewCube(opts ...Option) *Cube {
	c := &Cube{cfg: buildConfig(opts)}
	c.build()
	return c
}

func (c *Cube) build() {
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				home := Coord{x, y, z}
				if home.IsOrigin() {
					continue
				}
				c.cubies[i] = newCubie(home)
				i++
			}
		}
	}
}

// Reset restores every cubie to its home position and identity orientation.
func (c *Cube) Reset() {
	c.build()
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Len returns the number of cubies.
func (c *Cube) Len() int {
	return len(c.cubies)
}

// Cubie returns a copy of the cubie at arena index i.
func (c *Cube) Cubie(i int) Cubie {
	return c.cubies[i]
}

// Cubies returns a copy of all cubies in arena order.
func (c *Cube) Cubies() []Cubie {
	out := make([]Cubie, len(c.cubies))
	copy(out, c.cubies[:])
	return out
}

// IndexAt returns the arena index of the cubie currently at p.
func (c *Cube) IndexAt(p Coord) (int, bool) {
	for i := range c.cubies {
		if c.cubies[i].pos == p {
			return i, true
		}
	}
	return 0, false
}

// IsIdentity returns true if every cubie is at home with its identity
// orientation.
func (c *Cube) IsIdentity() bool {
	for i := range c.cubies {
		if !c.cubies[i].IsHome() {
			return false
		}
	}
	return true
}

// AtHome returns true if every cubie is at its home position with its
// stickers facing their home directions. Unlike IsIdentity it ignores
// the spin of a center cubie about its own face, which no sticker shows.
func (c *Cube) AtHome() bool {
	for i := range c.cubies {
		cb := &c.cubies[i]
		if cb.pos != cb.home {
			return false
		}
		for _, d := range Directions {
			if cb.stickers[d] != Black && cb.orient.Facing(d) != d {
				return false
			}
		}
	}
	return true
}

// IsSolved returns true if every face shows a single color. A solved
// cube stays solved under whole-cube rotations, so this is weaker than
// IsIdentity.
func (c *Cube) IsSolved() bool {
	f := c.Facelets()
	for face := range f {
		for i := 1; i < 9; i++ {
			if f[face][i] != f[face][0] {
				return false
			}
		}
	}
	return true
}

// Verify checks the bijection invariant: the cubies occupy 26 distinct
// valid lattice points, none of them the origin.
func (c *Cube) Verify() error {
	seen := make(map[Coord]int, len(c.cubies))
	for i := range c.cubies {
		p := c.cubies[i].pos
		if !p.Valid() || p.IsOrigin() {
			return fmt.Errorf("%w: cubie %d at %v", ErrBrokenInvariant, i, p)
		}
		if j, dup := seen[p]; dup {
			return fmt.Errorf("%w: cubies %d and %d share %v", ErrBrokenInvariant, j, i, p)
		}
		seen[p] = i
	}
	return nil
}

// NetFace names the faces of the facelet net.
type NetFace int

const (
	NetU NetFace = 0 // Up
	NetD NetFace = 1 // Down
	NetF NetFace = 2 // Front
	NetB NetFace = 3 // Back
	NetR NetFace = 4 // Right
	NetL NetFace = 5 // Left
)

func (f NetFace) String() string {
	switch f {
	case NetU:
		return "U"
	case NetD:
		return "D"
	case NetF:
		return "F"
	case NetB:
		return "B"
	case NetR:
		return "R"
	case NetL:
		return "L"
	default:
		return "?"
	}
}

// netFaceFor maps a world direction to its net face.
func netFaceFor(d Direction) NetFace {
	switch d {
	case Up:
		return NetU
	case Down:
		return NetD
	case Front:
		return NetF
	case Back:
		return NetB
	case Right:
		return NetR
	default:
		return NetL
	}
}

// faceletIndex returns the 0-8 index of position p on the face looking
// towards d, read row by row as seen from outside the cube.
func faceletIndex(d Direction, p Coord) int {
	var row, col int
	switch d {
	case Up:
		row, col = p.Z+1, p.X+1
	case Down:
		row, col = 1-p.Z, p.X+1
	case Front:
		row, col = 1-p.Y, p.X+1
	case Back:
		row, col = 1-p.Y, 1-p.X
	case Right:
		row, col = 1-p.Y, 1-p.Z
	case Left:
		row, col = 1-p.Y, p.Z+1
	}
	return row*3 + col
}

// Facelets projects the cubies onto the six faces. Each face has 9
// facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// as seen looking at that face from outside. Up is read with Back at the
// top, Down with Front at the top.
func (c *Cube) Facelets() [6][9]Color {
	var out [6][9]Color
	for i := range c.cubies {
		cb := &c.cubies[i]
		for _, local := range Directions {
			color := cb.stickers[local]
			if color == Black {
				continue
			}
			world := cb.orient.Facing(local)
			out[netFaceFor(world)][faceletIndex(world, cb.pos)] = color
		}
	}
	return out
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	f := c.Facelets()
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[NetU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []NetFace{NetL, NetF, NetR, NetB} {
			for col := 0; col < 3; col++ {
				b.WriteString(f[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[NetD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
