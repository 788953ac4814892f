package grid

import "golang.org/x/exp/constraints"

// Pt is an integer coordinate pair. It is a value type and is safe to use as a
// map key.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Point is the coordinate type used by the cell maps.
type Point = Pt[int]

// P is shorthand for constructing a Point.
func P(x, y int) Point { return Point{X: x, Y: y} }

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Add returns p translated by d.
func (p Pt[T]) Add(d Pt[T]) Pt[T] { return Pt[T]{X: p.X + d.X, Y: p.Y + d.Y} }

// Sub returns the offset from b to p.
func (p Pt[T]) Sub(b Pt[T]) Pt[T] { return Pt[T]{X: p.X - b.X, Y: p.Y - b.Y} }

// MDist returns the manhattan distance between p and b.
func (p Pt[T]) MDist(b Pt[T]) T {
	return Abs(p.X-b.X) + Abs(p.Y-b.Y)
}

// Touching reports whether b lies in the 3x3 block centred on p.
func (p Pt[T]) Touching(b Pt[T]) bool {
	return Abs(p.X-b.X) <= 1 && Abs(p.Y-b.Y) <= 1
}

// Orthogonal reports whether b is one of the four edge neighbours of p.
func (p Pt[T]) Orthogonal(b Pt[T]) bool {
	return p.MDist(b) == 1
}

// Toward returns a point moving from p to b in at most one step in the X
// and/or Y direction.
func (p Pt[T]) Toward(b Pt[T]) Pt[T] {
	return Pt[T]{X: p.X + Sign(b.X-p.X), Y: p.Y + Sign(b.Y-p.Y)}
}

// Direction offsets with Y growing downwards, matching text input rows.
var (
	Up        = P(0, -1)
	Down      = P(0, 1)
	Left      = P(-1, 0)
	Right     = P(1, 0)
	UpLeft    = P(-1, -1)
	UpRight   = P(1, -1)
	DownLeft  = P(-1, 1)
	DownRight = P(1, 1)
)

// Cardinals lists the four edge directions.
var Cardinals = []Point{Up, Down, Right, Left}

// Diagonals lists the four corner directions.
var Diagonals = []Point{UpLeft, UpRight, DownLeft, DownRight}
