package circular

import (
	"fmt"
	"sort"

	"github.com/npillmayer/arcs"
)

// splitAtInterior splits an arc at those of the candidate points which are
// in its open interior, in traversal order.
func (k *Kernel) splitAtInterior(a CircularArc, candidates ...Point) []CircularArc {
	var pts []Point
	for _, p := range candidates {
		if a.inInterior(p) {
			pts = append(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return a.beforeInTraversal(pts[i], pts[j])
	})
	pieces := make([]CircularArc, 0, len(pts)+1)
	src := a.source
	for _, p := range pts {
		pieces = append(pieces, newCircularArc(k.ak, a.support, src, p, a.orientation))
		src = p
	}
	return append(pieces, newCircularArc(k.ak, a.support, src, a.target, a.orientation))
}

// MakeXMonotone splits c into x-monotone pieces, in traversal order.
// Circular arcs are split at the leftmost and rightmost points of their
// circle, if these are interior to the arc; a full circle is split into its
// lower and its upper half. Line arcs are returned unchanged.
func (dec decomposition) MakeXMonotone(c Curve) []Curve {
	return dec.k.makeXMonotone(dec.k.normalize(c))
}

func (k *Kernel) makeXMonotone(c Curve) []Curve {
	switch c.kind {
	case KindLineArc:
		return []Curve{c}
	case KindCircularArc:
		if c.arc.xMonotone {
			return []Curve{c}
		}
		pieces := k.splitAtInterior(c.arc, c.arc.critical[0], c.arc.critical[1])
		curves := make([]Curve, len(pieces))
		for i, p := range pieces {
			curves[i] = FromArc(p)
		}
		tracer().Debugf("%v has %d x-monotone pieces", c, len(curves))
		return curves
	}
	panic(unhandledKind(c))
}

// direction returns the direction of traversal of a line arc.
func (a LineArc) direction() arcs.Pair {
	d := a.support.Direction()
	if !a.forward {
		return arcs.Origin.Sub(d)
	}
	return d
}

// MakeXYMonotone splits c into pieces which are monotone in x and in y, in
// traversal order.
func (dec decomposition) MakeXYMonotone(c Curve) []XYMonotonePiece {
	c = dec.k.normalize(c)
	switch c.kind {
	case KindLineArc:
		d := c.larc.direction()
		return []XYMonotonePiece{{
			Curve:       c,
			XIncreasing: d.X().Sign() > 0,
			YIncreasing: d.Y().Sign() > 0,
		}}
	case KindCircularArc:
		a := c.arc
		var arcpieces []CircularArc
		if a.xMonotone && a.yMonotone {
			arcpieces = []CircularArc{a}
		} else {
			arcpieces = dec.k.splitAtInterior(a, a.critical[:]...)
		}
		pieces := make([]XYMonotonePiece, len(arcpieces))
		for i, p := range arcpieces {
			pieces[i] = XYMonotonePiece{
				Curve:       FromArc(p),
				XIncreasing: p.source.compareX(p.target) == arcs.Smaller,
				YIncreasing: p.source.compareY(p.target) == arcs.Smaller,
			}
		}
		return pieces
	}
	panic(unhandledKind(c))
}

// AdvancedMakeXMonotone splits c into x-monotone pieces, in traversal
// order, and tells for each piece its direction and the half of the circle
// it lies on.
func (dec decomposition) AdvancedMakeXMonotone(c Curve) []XMonotonePiece {
	curves := dec.k.makeXMonotone(dec.k.normalize(c))
	pieces := make([]XMonotonePiece, len(curves))
	for i, cv := range curves {
		switch cv.kind {
		case KindLineArc:
			pieces[i] = XMonotonePiece{
				Curve:       cv,
				XIncreasing: cv.larc.direction().X().Sign() > 0,
			}
		case KindCircularArc:
			pieces[i] = XMonotonePiece{
				Curve:       cv,
				XIncreasing: cv.arc.source.compareX(cv.arc.target) == arcs.Smaller,
				OnUpperPart: cv.arc.upper,
			}
		default:
			panic(unhandledKind(cv))
		}
	}
	return pieces
}

// Split splits c at p, which has to be in the open interior of c.
// The first piece runs from the source of c to p, the second from p to the
// target of c, both in the orientation of c.
func (dec decomposition) Split(c Curve, p Point) (Curve, Curve) {
	k := dec.k
	c = k.normalize(c)
	switch c.kind {
	case KindCircularArc:
		a := c.arc
		if signAt(k.ak, a.eq, p) != arcs.Zero || !a.inInterior(p) {
			panic(fmt.Sprintf("circular: split point %v not in open interior of %v", p, a))
		}
		left := newCircularArc(k.ak, a.support, a.source, p, a.orientation)
		right := newCircularArc(k.ak, a.support, p, a.target, a.orientation)
		return FromArc(left), FromArc(right)
	case KindLineArc:
		a := c.larc
		if signAt(k.ak, a.eq, p) != arcs.Zero || !a.inInterior(p) {
			panic(fmt.Sprintf("circular: split point %v not in open interior of %v", p, a))
		}
		left := newLineArc(a.support, a.source, p, a.srcInf, false)
		right := newLineArc(a.support, p, a.target, false, a.tgtInf)
		return FromLineArc(left), FromLineArc(right)
	}
	panic(unhandledKind(c))
}
