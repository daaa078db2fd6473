package gocube

// Color represents a sticker color.
type Color byte

const (
	Black  Color = 0 // No sticker (interior face)
	White  Color = 1 // Up face when solved
	Yellow Color = 2 // Down face when solved
	Green  Color = 3 // Front face when solved
	Blue   Color = 4 // Back face when solved
	Red    Color = 5 // Right face when solved
	Orange Color = 6 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Black:
		return "."
	default:
		return "?"
	}
}

// Direction is one of the six axis-aligned directions a cubie face can point.
type Direction int8

const (
	Right Direction = iota // +X
	Left                   // -X
	Up                     // +Y
	Down                   // -Y
	Front                  // +Z
	Back                   // -Z
)

// Directions lists all six directions in index order.
var Directions = [6]Direction{Right, Left, Up, Down, Front, Back}

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Front:
		return "Front"
	case Back:
		return "Back"
	default:
		return "?"
	}
}

// Vector returns the unit vector for d.
func (d Direction) Vector() Coord {
	switch d {
	case Right:
		return Coord{1, 0, 0}
	case Left:
		return Coord{-1, 0, 0}
	case Up:
		return Coord{0, 1, 0}
	case Down:
		return Coord{0, -1, 0}
	case Front:
		return Coord{0, 0, 1}
	case Back:
		return Coord{0, 0, -1}
	}
	return Coord{}
}

// DirectionOf returns the direction of a unit axis vector.
func DirectionOf(v Coord) (Direction, bool) {
	for _, d := range Directions {
		if d.Vector() == v {
			return d, true
		}
	}
	return 0, false
}

// solvedColor returns the sticker color carried by faces pointing in d
// in the solved cube.
func solvedColor(d Direction) Color {
	switch d {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Right:
		return Red
	case Left:
		return Orange
	default:
		return Black
	}
}

// Orientation records where a cubie's local axes point in the world.
// Each field is a unit axis vector, so the three together form a signed
// permutation matrix and stay exact across any number of turns.
type Orientation struct {
	XAxis Coord
	YAxis Coord
	ZAxis Coord
}

// IdentityOrientation returns the orientation of an unturned cubie.
func IdentityOrientation() Orientation {
	return Orientation{
		XAxis: Coord{1, 0, 0},
		YAxis: Coord{0, 1, 0},
		ZAxis: Coord{0, 0, 1},
	}
}

// Rotate returns o turned about axis by angleSign quarter turns.
func (o Orientation) Rotate(axis Axis, angleSign int) Orientation {
	return Orientation{
		XAxis: RotateCoord(o.XAxis, axis, angleSign),
		YAxis: RotateCoord(o.YAxis, axis, angleSign),
		ZAxis: RotateCoord(o.ZAxis, axis, angleSign),
	}
}

// IsIdentity reports whether o is the identity orientation.
func (o Orientation) IsIdentity() bool {
	return o == IdentityOrientation()
}

// Facing returns the world direction that the cubie's local face d
// currently points to.
func (o Orientation) Facing(d Direction) Direction {
	v := d.Vector()
	w := Coord{
		X: v.X*o.XAxis.X + v.Y*o.YAxis.X + v.Z*o.ZAxis.X,
		Y: v.X*o.XAxis.Y + v.Y*o.YAxis.Y + v.Z*o.ZAxis.Y,
		Z: v.X*o.XAxis.Z + v.Y*o.YAxis.Z + v.Z*o.ZAxis.Z,
	}
	world, _ := DirectionOf(w)
	return world
}

// Cubie is one of the 26 visible pieces of the cube.
//
// Sticker colors are assigned once from the cubie's home position and
// never change; turning the cube only moves the cubie and rotates its
// orientation.
type Cubie struct {
	home     Coord
	pos      Coord
	orient   Orientation
	stickers [6]Color // indexed by local Direction
}

func newCubie(home Coord) Cubie {
	c := Cubie{
		home:   home,
		pos:    home,
		orient: IdentityOrientation(),
	}
	for _, d := range Directions {
		// A face carries a sticker only if it lies on the cube's surface.
		v := d.Vector()
		if home.X*v.X+home.Y*v.Y+home.Z*v.Z == 1 {
			c.stickers[d] = solvedColor(d)
		}
	}
	return c
}

// Home returns the position the cubie occupies in the solved cube.
func (c Cubie) Home() Coord {
	return c.home
}

// Position returns the cubie's current position.
func (c Cubie) Position() Coord {
	return c.pos
}

// Orientation returns the cubie's current orientation.
func (c Cubie) Orientation() Orientation {
	return c.orient
}

// Sticker returns the color on the cubie's local face d, or Black if
// that face is interior.
func (c Cubie) Sticker(d Direction) Color {
	if d < 0 || int(d) >= len(c.stickers) {
		return Black
	}
	return c.stickers[d]
}

// Stickers returns the visible stickers keyed by local face.
func (c Cubie) Stickers() map[Direction]Color {
	m := make(map[Direction]Color, 3)
	for _, d := range Directions {
		if c.stickers[d] != Black {
			m[d] = c.stickers[d]
		}
	}
	return m
}

// StickerFacing returns the color currently showing towards world
// direction d, or Black if no sticker faces that way.
func (c Cubie) StickerFacing(d Direction) Color {
	for _, local := range Directions {
		if c.stickers[local] != Black && c.orient.Facing(local) == d {
			return c.stickers[local]
		}
	}
	return Black
}

// IsHome reports whether the cubie is at its home position with the
// identity orientation.
func (c Cubie) IsHome() bool {
	return c.pos == c.home && c.orient.IsIdentity()
}
