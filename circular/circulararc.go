package circular

import (
	"fmt"
	"sync"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
	"github.com/npillmayer/arcs/polyn"
)

// CircularArc is a connected piece of a circle, traversed from source to
// target in a given orientation. A full circle has source = target, which
// is always the leftmost point of the circle.
type CircularArc struct {
	*arcRep
}

type arcRep struct {
	support     arcs.Circle
	eq          polyn.Polynomial
	source      Point
	target      Point
	orientation arcs.Orientation
	full        bool
	xMonotone   bool
	yMonotone   bool
	upper       bool
	critical    [4]Point // left, right, bottom, top
	minmaxOnce  sync.Once
	minmax      byte // 's' = source is min vertex, 't' = target, 'n' = neither
}

// newCircularArc creates an arc and computes its flags. Endpoints are
// expected to be on the circle. If source equals target the arc is a full
// circle.
func newCircularArc(ak algebraic.Kernel, c arcs.Circle, source, target Point,
	o arcs.Orientation) CircularArc {
	//
	if o != arcs.CounterClockwise && o != arcs.Clockwise {
		panic(fmt.Sprintf("circular: invalid arc orientation %v", o))
	}
	rep := &arcRep{
		support:     c,
		eq:          polyn.CirclePolynomial(c),
		source:      source,
		target:      target,
		orientation: o,
	}
	rep.critical = criticalPoints(ak, rep.eq)
	if source.Equal(target) {
		rep.full = true
		rep.source = rep.critical[0]
		rep.target = rep.critical[0]
	}
	a := CircularArc{rep}
	rep.xMonotone = !rep.full && !a.inInterior(rep.critical[0]) && !a.inInterior(rep.critical[1])
	rep.yMonotone = !rep.full && !a.inInterior(rep.critical[2]) && !a.inInterior(rep.critical[3])
	switch o {
	case arcs.CounterClockwise:
		rep.upper = rep.source.compareX(rep.target) == arcs.Larger
	default:
		rep.upper = rep.source.compareX(rep.target) == arcs.Smaller
	}
	tracer().Debugf("new arc %v", a)
	return a
}

func criticalPoints(ak algebraic.Kernel, eq polyn.Polynomial) [4]Point {
	xs, err := ak.XCriticalPoints(eq)
	if err != nil {
		panic(fmt.Sprintf("circular: critical points of 0 = %s: %v", eq, err))
	}
	ys, err := ak.YCriticalPoints(eq)
	if err != nil {
		panic(fmt.Sprintf("circular: critical points of 0 = %s: %v", eq, err))
	}
	return [4]Point{NewPoint(xs[0]), NewPoint(xs[1]), NewPoint(ys[0]), NewPoint(ys[1])}
}

// IsValid is false for the zero value.
func (a CircularArc) IsValid() bool {
	return a.arcRep != nil
}

// SupportingCircle returns the circle the arc is a part of.
func (a CircularArc) SupportingCircle() arcs.Circle {
	return a.support
}

// Source returns the start point of the arc.
func (a CircularArc) Source() Point {
	return a.source
}

// Target returns the end point of the arc.
func (a CircularArc) Target() Point {
	return a.target
}

// Orientation returns the direction of traversal.
func (a CircularArc) Orientation() arcs.Orientation {
	return a.orientation
}

// IsFullCircle is true if the arc covers its complete supporting circle.
func (a CircularArc) IsFullCircle() bool {
	return a.full
}

// IsXMonotone is true if no vertical line crosses the arc twice.
func (a CircularArc) IsXMonotone() bool {
	return a.xMonotone
}

// IsYMonotone is true if no horizontal line crosses the arc twice.
func (a CircularArc) IsYMonotone() bool {
	return a.yMonotone
}

// OnUpperPart is true if an x-monotone arc lies on the upper half of its
// circle. Meaningless for arcs which are not x-monotone.
func (a CircularArc) OnUpperPart() bool {
	return a.upper
}

// LeftCriticalPoint is the leftmost point of the supporting circle.
func (a CircularArc) LeftCriticalPoint() Point { return a.critical[0] }

// RightCriticalPoint is the rightmost point of the supporting circle.
func (a CircularArc) RightCriticalPoint() Point { return a.critical[1] }

// minIsSource reports whether the source of an x-monotone arc is its
// xy-smaller endpoint. Panics for arcs which are not x-monotone.
func (a CircularArc) minIsSource() bool {
	a.minmaxOnce.Do(func() {
		switch {
		case !a.xMonotone:
			a.minmax = 'n'
		case a.source.compareXY(a.target) == arcs.Smaller:
			a.minmax = 's'
		default:
			a.minmax = 't'
		}
	})
	if a.minmax == 'n' {
		panic("circular: min/max vertex of arc which is not x-monotone")
	}
	return a.minmax == 's'
}

// MinVertex returns the xy-smaller endpoint of an x-monotone arc.
func (a CircularArc) MinVertex() Point {
	if a.minIsSource() {
		return a.source
	}
	return a.target
}

// MaxVertex returns the xy-larger endpoint of an x-monotone arc.
func (a CircularArc) MaxVertex() Point {
	if a.minIsSource() {
		return a.target
	}
	return a.source
}

// ccw returns the arc as a counterclockwise arc covering the same points.
func (a CircularArc) ccw() (Point, Point) {
	if a.orientation == arcs.Clockwise {
		return a.target, a.source
	}
	return a.source, a.target
}

// inInterior checks if a point p on the supporting circle is in the open
// interior of the arc.
func (a CircularArc) inInterior(p Point) bool {
	if a.full {
		return !p.Equal(a.source)
	}
	s, t := a.ccw()
	return inCCWOpen(a.support, s, t, p)
}

// contains checks if a point on the supporting circle is on the closed arc.
func (a CircularArc) contains(p Point) bool {
	return a.full || p.Equal(a.source) || p.Equal(a.target) || a.inInterior(p)
}

// beforeInTraversal is true if p comes before q when traversing the arc from
// its source. Both points have to be on the supporting circle.
func (a CircularArc) beforeInTraversal(p, q Point) bool {
	switch {
	case p.Equal(q):
		return false
	case p.Equal(a.source):
		return true
	case q.Equal(a.source):
		return false
	case a.orientation == arcs.Clockwise:
		return ccwBefore(a.support, a.source, q, p)
	}
	return ccwBefore(a.support, a.source, p, q)
}

func (a CircularArc) String() string {
	if !a.IsValid() {
		return "arc(invalid)"
	}
	if a.full {
		return fmt.Sprintf("arc(%v, full, %v)", a.support, a.orientation)
	}
	return fmt.Sprintf("arc(%v, %v→%v, %v)", a.support, a.source, a.target, a.orientation)
}

// --- Angular order on a circle ---------------------------------------------

// upperHalf is true for points with polar angle in [0,π) around the center.
func upperHalf(c arcs.Circle, p Point) bool {
	cy := algebraic.Rational(c.Center().Y())
	switch p.Y().Compare(cy) {
	case arcs.Larger:
		return true
	case arcs.Smaller:
		return false
	}
	return p.X().Compare(algebraic.Rational(c.Center().X())) == arcs.Larger
}

// angleCompare compares the polar angles in [0,2π) of two points on c.
// In the upper half the angle grows with decreasing x, in the lower half
// with increasing x.
func angleCompare(c arcs.Circle, p, q Point) arcs.Comparison {
	up, uq := upperHalf(c, p), upperHalf(c, q)
	switch {
	case up && !uq:
		return arcs.Smaller
	case !up && uq:
		return arcs.Larger
	case up:
		return q.compareX(p)
	}
	return p.compareX(q)
}

// inCCWOpen checks if p is strictly inside the counterclockwise arc from
// s to t, s ≠ t.
func inCCWOpen(c arcs.Circle, s, t, p Point) bool {
	ps, pt := angleCompare(c, p, s), angleCompare(c, p, t)
	if ps == arcs.Equal || pt == arcs.Equal {
		return false
	}
	if angleCompare(c, s, t) == arcs.Smaller {
		return ps == arcs.Larger && pt == arcs.Smaller
	}
	return ps == arcs.Larger || pt == arcs.Smaller // wraps around angle 0
}

// ccwBefore is true if, walking counterclockwise from s, p is reached
// strictly before q. s itself is reached first.
func ccwBefore(c arcs.Circle, s, p, q Point) bool {
	bucket := func(x Point) int {
		switch angleCompare(c, x, s) {
		case arcs.Equal:
			return 0
		case arcs.Larger:
			return 1
		}
		return 2
	}
	bp, bq := bucket(p), bucket(q)
	if bp != bq {
		return bp < bq
	}
	return bp != 0 && angleCompare(c, p, q) == arcs.Smaller
}
