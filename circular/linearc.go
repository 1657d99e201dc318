package circular

import (
	"fmt"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
	"github.com/npillmayer/arcs/polyn"
)

// LineArc is a connected piece of a line: a segment, a ray or a full line.
// Unbounded ends carry an invalid point.
type LineArc struct {
	*lineArcRep
}

type lineArcRep struct {
	support   arcs.Line
	eq        polyn.Polynomial
	source    Point
	target    Point
	srcInf    bool // source is at infinity
	tgtInf    bool // target is at infinity
	forward   bool // traversal agrees with the direction of the support
	minSource bool // source is the xy-smaller end
}

// newLineArc creates a line arc. For bounded arcs, forward is derived from
// the endpoints, otherwise the traversal follows the support's direction.
func newLineArc(l arcs.Line, source, target Point, srcInf, tgtInf bool) LineArc {
	rep := &lineArcRep{
		support: l,
		eq:      polyn.LinePolynomial(l),
		source:  source,
		target:  target,
		srcInf:  srcInf,
		tgtInf:  tgtInf,
		forward: true,
	}
	if !srcInf && !tgtInf {
		rep.forward = alongLine(l, source, target) == arcs.Smaller
	}
	dir := l.Direction()
	if !rep.forward {
		dir = arcs.Origin.Sub(dir)
	}
	rep.minSource = dir.X().Sign() > 0 || (dir.X().Sign() == 0 && dir.Y().Sign() > 0)
	a := LineArc{rep}
	tracer().Debugf("new line arc %v", a)
	return a
}

// alongLine compares the positions of two points of l in the direction of l.
func alongLine(l arcs.Line, p, q Point) arcs.Comparison {
	if s := l.B().Sign(); s != 0 { // direction (b,-a) has x-component b
		c := p.compareX(q)
		if s < 0 {
			return c.Reverse()
		}
		return c
	}
	c := p.compareY(q)
	if l.A().Sign() > 0 {
		return c.Reverse()
	}
	return c
}

// IsValid is false for the zero value.
func (a LineArc) IsValid() bool {
	return a.lineArcRep != nil
}

// SupportingLine returns the line the arc is a part of.
func (a LineArc) SupportingLine() arcs.Line {
	return a.support
}

// Source returns the start point. Invalid if the source is unbounded.
func (a LineArc) Source() Point {
	return a.source
}

// Target returns the end point. Invalid if the target is unbounded.
func (a LineArc) Target() Point {
	return a.target
}

// IsSourceUnbounded is true for line arcs starting at infinity.
func (a LineArc) IsSourceUnbounded() bool {
	return a.srcInf
}

// IsTargetUnbounded is true for line arcs ending at infinity.
func (a LineArc) IsTargetUnbounded() bool {
	return a.tgtInf
}

// IsSegment is true for bounded line arcs.
func (a LineArc) IsSegment() bool {
	return !a.srcInf && !a.tgtInf
}

// IsVertical is true for line arcs on vertical lines.
func (a LineArc) IsVertical() bool {
	return a.support.IsVertical()
}

// minEnd returns the xy-smaller end and whether it is unbounded.
func (a LineArc) minEnd() (Point, bool) {
	if a.minSource {
		return a.source, a.srcInf
	}
	return a.target, a.tgtInf
}

// maxEnd returns the xy-larger end and whether it is unbounded.
func (a LineArc) maxEnd() (Point, bool) {
	if a.minSource {
		return a.target, a.tgtInf
	}
	return a.source, a.srcInf
}

// MinVertex returns the xy-smaller endpoint.
// Panics if that end is unbounded.
func (a LineArc) MinVertex() Point {
	p, inf := a.minEnd()
	if inf {
		panic("circular: min vertex of line arc is at infinity")
	}
	return p
}

// MaxVertex returns the xy-larger endpoint.
// Panics if that end is unbounded.
func (a LineArc) MaxVertex() Point {
	p, inf := a.maxEnd()
	if inf {
		panic("circular: max vertex of line arc is at infinity")
	}
	return p
}

// travCompare compares two points of the support in traversal order.
func (a LineArc) travCompare(p, q Point) arcs.Comparison {
	c := alongLine(a.support, p, q)
	if !a.forward {
		return c.Reverse()
	}
	return c
}

// inInterior checks if a point p on the supporting line is in the open
// interior of the arc.
func (a LineArc) inInterior(p Point) bool {
	return (a.srcInf || a.travCompare(a.source, p) == arcs.Smaller) &&
		(a.tgtInf || a.travCompare(p, a.target) == arcs.Smaller)
}

// contains checks if a point on the supporting line is on the closed arc.
func (a LineArc) contains(p Point) bool {
	return (!a.srcInf && p.Equal(a.source)) || (!a.tgtInf && p.Equal(a.target)) ||
		a.inInterior(p)
}

func (a LineArc) String() string {
	if !a.IsValid() {
		return "linearc(invalid)"
	}
	return fmt.Sprintf("linearc(%v, %v→%v)", a.support, a.source, a.target)
}

// signAt returns the sign of an equation at p, with a fast path for
// rational points.
func signAt(ak algebraic.Kernel, eq polyn.Polynomial, p Point) arcs.Sign {
	if pair, ok := p.Pair(); ok {
		return arcs.SignOf(eq.EvalRat(pair.X(), pair.Y()))
	}
	return ak.SignAt(eq, p.Root())
}
