package circular

import (
	"sync"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
)

// Point is a point on a curve. It is either a rational point or an
// algebraic root. The zero value is an invalid point, used for unbounded
// ends of line arcs.
type Point struct {
	*pointRep
}

type pointRep struct {
	root     algebraic.Root
	pair     arcs.Pair // valid if rational
	rational bool
	fOnce    sync.Once // float coordinates are computed lazily
	fx, fy   float64
	boxOnce  sync.Once
	box      polyclip.Rectangle
}

// NewPoint creates a point from an algebraic root. Roots with rational
// coordinates become rational points.
func NewPoint(r algebraic.Root) Point {
	if p, ok := r.Pair(); ok {
		return PointFromPair(p)
	}
	return Point{&pointRep{root: r}}
}

// PointFromPair creates a rational point.
func PointFromPair(p arcs.Pair) Point {
	return Point{&pointRep{
		root:     algebraic.RationalRoot(p),
		pair:     p,
		rational: true,
	}}
}

// IsValid is false for the zero value.
func (p Point) IsValid() bool {
	return p.pointRep != nil
}

func (p Point) mustBeValid() {
	if p.pointRep == nil {
		panic("circular: use of invalid point")
	}
}

// Root returns the point as an algebraic root.
func (p Point) Root() algebraic.Root {
	p.mustBeValid()
	return p.root
}

// X returns the exact x-coordinate.
func (p Point) X() algebraic.RootOf2 {
	return p.Root().X()
}

// Y returns the exact y-coordinate.
func (p Point) Y() algebraic.RootOf2 {
	return p.Root().Y()
}

// IsRational is true for points with rational coordinates.
func (p Point) IsRational() bool {
	p.mustBeValid()
	return p.rational
}

// Pair returns the point as a rational pair, if it is rational.
func (p Point) Pair() (arcs.Pair, bool) {
	if !p.IsRational() {
		return arcs.Pair{}, false
	}
	return p.pair, true
}

// F returns float approximations of the coordinates.
func (p Point) F() (float64, float64) {
	p.mustBeValid()
	p.fOnce.Do(func() {
		if p.rational {
			p.fx, p.fy = p.pair.F()
		} else {
			p.fx, p.fy = p.root.Float64()
		}
	})
	return p.fx, p.fy
}

// BoundingBox returns a small box which is guaranteed to contain p.
func (p Point) BoundingBox() polyclip.Rectangle {
	p.mustBeValid()
	p.boxOnce.Do(func() {
		x, y := p.F()
		xmin, xmax := arcs.Widen(x)
		ymin, ymax := arcs.Widen(y)
		p.box = polyclip.Rectangle{
			Min: polyclip.Point{X: xmin, Y: ymin},
			Max: polyclip.Point{X: xmax, Y: ymax},
		}
	})
	return p.box
}

// compareX compares x-coordinates, taking the rational fast path if possible.
func (p Point) compareX(q Point) arcs.Comparison {
	if p.IsRational() && q.IsRational() {
		return p.pair.CompareX(q.pair)
	}
	return p.root.CompareX(q.Root())
}

func (p Point) compareY(q Point) arcs.Comparison {
	if p.IsRational() && q.IsRational() {
		return p.pair.CompareY(q.pair)
	}
	return p.root.CompareY(q.Root())
}

func (p Point) compareXY(q Point) arcs.Comparison {
	if c := p.compareX(q); c != arcs.Equal {
		return c
	}
	return p.compareY(q)
}

// Equal is true if p and q have the same coordinates, regardless of their
// representation.
func (p Point) Equal(q Point) bool {
	return p.compareXY(q) == arcs.Equal
}

func (p Point) String() string {
	if p.pointRep == nil {
		return "(∞)"
	}
	if p.rational {
		return p.pair.String()
	}
	return p.root.String()
}

// pointComparator orders points for gods containers.
func pointComparator(a, b interface{}) int {
	return int(a.(Point).compareXY(b.(Point)))
}
