package algebraic

import (
	"fmt"

	"github.com/npillmayer/arcs"
)

// Root is an exact point whose coordinates are RootOf2 values sharing a
// common radicand (the discriminant of the system the point solves).
type Root struct {
	x, y RootOf2
}

// NewRoot creates a root from its coordinates.
// Panics if both coordinates are irrational with different radicands.
func NewRoot(x, y RootOf2) Root {
	if !x.sameRadicand(y) {
		panic(fmt.Sprintf("algebraic: root coordinates %v and %v of different radicands", x, y))
	}
	return Root{x: x, y: y}
}

// RationalRoot creates a root from a rational point.
func RationalRoot(p arcs.Pair) Root {
	return Root{x: Rational(p.X()), y: Rational(p.Y())}
}

// X is the x-coordinate of the root.
func (r Root) X() RootOf2 { return r.x }

// Y is the y-coordinate of the root.
func (r Root) Y() RootOf2 { return r.y }

// IsRational is true if both coordinates are rational.
func (r Root) IsRational() bool {
	return r.x.IsRational() && r.y.IsRational()
}

// Pair returns r as a rational point, if it is one.
func (r Root) Pair() (arcs.Pair, bool) {
	if !r.IsRational() {
		return arcs.Pair{}, false
	}
	return arcs.PQ(r.x.A(), r.y.A()), true
}

// CompareX compares the x-coordinates of two roots.
func (r Root) CompareX(r2 Root) arcs.Comparison {
	return r.x.Compare(r2.x)
}

// CompareY compares the y-coordinates of two roots.
func (r Root) CompareY(r2 Root) arcs.Comparison {
	return r.y.Compare(r2.y)
}

// CompareXY compares two roots lexicographically, x first.
func (r Root) CompareXY(r2 Root) arcs.Comparison {
	if c := r.CompareX(r2); c != arcs.Equal {
		return c
	}
	return r.CompareY(r2)
}

// Equal is true if r and r2 are the same point.
func (r Root) Equal(r2 Root) bool {
	return r.CompareXY(r2) == arcs.Equal
}

// Float64 returns float approximations of the coordinates.
func (r Root) Float64() (float64, float64) {
	return r.x.Float64(), r.y.Float64()
}

func (r Root) String() string {
	return fmt.Sprintf("(%v,%v)", r.x, r.y)
}

// Solution is a root of a system of two equations, together with its
// multiplicity. Tangential contact yields multiplicity 2.
type Solution struct {
	Root         Root
	Multiplicity int
}

func (s Solution) String() string {
	return fmt.Sprintf("%v^%d", s.Root, s.Multiplicity)
}
