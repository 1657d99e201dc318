package circular

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
	"github.com/npillmayer/arcs/polyn"
)

// CompareX compares the x-coordinates of two points.
func (cmp comparison) CompareX(p, q Point) arcs.Comparison {
	return p.compareX(q)
}

// CompareY compares the y-coordinates of two points.
func (cmp comparison) CompareY(p, q Point) arcs.Comparison {
	return p.compareY(q)
}

// CompareXY compares two points lexicographically, x first.
func (cmp comparison) CompareXY(p, q Point) arcs.Comparison {
	return p.compareXY(q)
}

// Equal is true if p and q are the same point.
func (cmp comparison) Equal(p, q Point) bool {
	return p.Equal(q)
}

// IsVertical is true for lines and line arcs parallel to the y-axis.
func (cmp comparison) IsVertical(c Curve) bool {
	switch c.kind {
	case KindCircle, KindCircularArc:
		return false
	case KindLine:
		return c.line.IsVertical()
	case KindLineArc:
		return c.larc.IsVertical()
	}
	panic(unhandledKind(c))
}

// CompareYAtX compares p with the point of c with the same x-coordinate.
// c has to be x-monotone and p.x has to be in the x-range of c.
// For vertical line arcs, p is Equal if it is within the y-range of c.
func (cmp comparison) CompareYAtX(p Point, c Curve) arcs.Comparison {
	c = cmp.k.normalize(c)
	if !cmp.k.inXRange(c, p) {
		panic(fmt.Sprintf("circular: %v not in x-range of %v", p, c))
	}
	switch c.kind {
	case KindCircularArc:
		return cmp.k.compareYAtXArc(p, c.arc)
	case KindLineArc:
		return cmp.k.compareYAtXLineArc(p, c.larc)
	}
	panic(unhandledKind(c))
}

func (k *Kernel) compareYAtXArc(p Point, a CircularArc) arcs.Comparison {
	cy := algebraic.Rational(a.support.Center().Y())
	power := signAt(k.ak, a.eq, p)
	if a.upper {
		if p.Y().Compare(cy) == arcs.Smaller {
			return arcs.Smaller
		}
		return arcs.Comparison(power)
	}
	if p.Y().Compare(cy) == arcs.Larger {
		return arcs.Larger
	}
	return arcs.Comparison(power.Reverse())
}

func (k *Kernel) compareYAtXLineArc(p Point, a LineArc) arcs.Comparison {
	if !a.IsVertical() {
		side := signAt(k.ak, a.eq, p)
		if a.support.B().Sign() < 0 {
			side = side.Reverse()
		}
		return arcs.Comparison(side)
	}
	if lo, inf := a.minEnd(); !inf && p.compareY(lo) == arcs.Smaller {
		return arcs.Smaller
	}
	if hi, inf := a.maxEnd(); !inf && p.compareY(hi) == arcs.Larger {
		return arcs.Larger
	}
	return arcs.Equal
}

// jet is the local shape of a curve at a point: slope and second derivative
// of y(x), or a vertical tangent.
type jet struct {
	vertical int8              // +1 / -1 for a vertical tangent going up / down
	line     bool              // vertical line arc
	slope    algebraic.RootOf2 // dy/dx
	curv     algebraic.RootOf2 // d²y/dx²
	r2       *big.Rat          // squared radius of circles
}

// jetAt computes the jet of an x-monotone curve at its point p, for the
// part of the curve to the right of p.
func (k *Kernel) jetAt(c Curve, p Point) jet {
	switch c.kind {
	case KindLineArc:
		l := c.larc.support
		if l.IsVertical() {
			return jet{vertical: 1, line: true}
		}
		slope := new(big.Rat).Quo(l.A(), l.B())
		return jet{
			slope: algebraic.Rational(slope.Neg(slope)),
			curv:  algebraic.Rational(new(big.Rat)),
		}
	case KindCircularArc:
		a := c.arc
		if !a.xMonotone {
			panic(fmt.Sprintf("circular: compare to right of %v, which is not x-monotone", a))
		}
		center := a.support.Center()
		dx := p.X().Sub(algebraic.Rational(center.X()))
		dy := p.Y().Sub(algebraic.Rational(center.Y()))
		if dy.Sign() == arcs.Zero {
			if dx.Sign() == arcs.Positive {
				panic(fmt.Sprintf("circular: %v is not defined to the right of %v", a, p))
			}
			j := jet{vertical: -1, r2: a.support.SquaredRadius()}
			if a.upper {
				j.vertical = 1
			}
			return j
		}
		// y' = -(x-cx)/(y-cy), y'' = -r²/(y-cy)³
		dy3 := dy.Mul(dy).Mul(dy)
		return jet{
			slope: dx.Neg().Div(dy),
			curv:  algebraic.Rational(new(big.Rat).Neg(a.support.SquaredRadius())).Div(dy3),
			r2:    a.support.SquaredRadius(),
		}
	}
	panic(unhandledKind(c))
}

func compareJets(j1, j2 jet) arcs.Comparison {
	if j1.vertical != 0 || j2.vertical != 0 {
		if j1.vertical != j2.vertical {
			return arcs.Compare(int(j1.vertical) - int(j2.vertical))
		}
		switch {
		case j1.line && j2.line:
			return arcs.Equal
		case j1.line:
			return arcs.Larger
		case j2.line:
			return arcs.Smaller
		}
		// circles with a common vertical tangent: the larger one is flatter
		c := arcs.Compare(j1.r2.Cmp(j2.r2))
		if j1.vertical < 0 {
			return c.Reverse()
		}
		return c
	}
	if c := j1.slope.Compare(j2.slope); c != arcs.Equal {
		return c
	}
	return j1.curv.Compare(j2.curv)
}

// CompareYToRight compares c1 and c2 immediately to the right of p, which
// has to be on both curves. Vertical line arcs are above all other curves.
func (cmp comparison) CompareYToRight(c1, c2 Curve, p Point) arcs.Comparison {
	c1, c2 = cmp.k.normalize(c1), cmp.k.normalize(c2)
	if !cmp.k.hasOn(c1, p) || !cmp.k.hasOn(c2, p) {
		panic(fmt.Sprintf("circular: %v is not on both %v and %v", p, c1, c2))
	}
	return compareJets(cmp.k.jetAt(c1, p), cmp.k.jetAt(c2, p))
}

// EqualCurves is true for curves of the same kind with the same support,
// endpoints and orientation. Curves of different kinds are never equal.
func (cmp comparison) EqualCurves(c1, c2 Curve) bool {
	switch c1.kind {
	case KindCircle, KindLine, KindCircularArc, KindLineArc:
	default:
		panic(unhandledPair(c1, c2))
	}
	switch c2.kind {
	case KindCircle, KindLine, KindCircularArc, KindLineArc:
	default:
		panic(unhandledPair(c1, c2))
	}
	if c1.kind != c2.kind {
		return false
	}
	switch c1.kind {
	case KindCircle:
		return c1.circle.Equal(c2.circle)
	case KindLine:
		return c1.line.Equal(c2.line)
	case KindCircularArc:
		return equalArcs(c1.arc, c2.arc)
	}
	return equalLineArcs(c1.larc, c2.larc)
}

func equalArcs(a, b CircularArc) bool {
	if !a.support.Equal(b.support) || a.orientation != b.orientation || a.full != b.full {
		return false
	}
	return a.full || (a.source.Equal(b.source) && a.target.Equal(b.target))
}

func equalLineArcs(a, b LineArc) bool {
	if !a.support.Equal(b.support) || a.srcInf != b.srcInf || a.tgtInf != b.tgtInf {
		return false
	}
	if !a.IsSegment() && !a.support.SameDirection(b.support) {
		return false
	}
	return (a.srcInf || a.source.Equal(b.source)) && (a.tgtInf || a.target.Equal(b.target))
}

// --- Containment -----------------------------------------------------------

// HasOn is true if p is on c.
func (cont containment) HasOn(c Curve, p Point) bool {
	return cont.k.hasOn(c, p)
}

func (k *Kernel) hasOn(c Curve, p Point) bool {
	switch c.kind {
	case KindCircle:
		return signAt(k.ak, polyn.CirclePolynomial(c.circle), p) == arcs.Zero
	case KindLine:
		return signAt(k.ak, polyn.LinePolynomial(c.line), p) == arcs.Zero
	case KindCircularArc:
		return signAt(k.ak, c.arc.eq, p) == arcs.Zero && c.arc.contains(p)
	case KindLineArc:
		return signAt(k.ak, c.larc.eq, p) == arcs.Zero && c.larc.contains(p)
	}
	panic(unhandledKind(c))
}

// InRange is true if p, which has to be on the supporting curve of c, is
// within the span of c. Circles and lines contain every point of their
// support.
func (cont containment) InRange(c Curve, p Point) bool {
	c = cont.k.normalize(c)
	switch c.kind {
	case KindCircularArc:
		return c.arc.contains(p)
	case KindLineArc:
		return c.larc.contains(p)
	}
	panic(unhandledKind(c))
}

// inXRange checks p.x against the x-range of an x-monotone arc.
func (k *Kernel) inXRange(c Curve, p Point) bool {
	switch c.kind {
	case KindCircularArc:
		a := c.arc
		return p.compareX(a.MinVertex()) != arcs.Smaller && p.compareX(a.MaxVertex()) != arcs.Larger
	case KindLineArc:
		a := c.larc
		lo, loInf := a.minEnd()
		hi, hiInf := a.maxEnd()
		if a.IsVertical() {
			x := algebraic.Rational(new(big.Rat).Quo(a.support.C(), new(big.Rat).Neg(a.support.A())))
			return p.X().Compare(x) == arcs.Equal
		}
		return (loInf || p.compareX(lo) != arcs.Smaller) && (hiInf || p.compareX(hi) != arcs.Larger)
	}
	panic(unhandledKind(c))
}

// DoOverlap is true if c1 and c2 have a common part of positive length.
func (cont containment) DoOverlap(c1, c2 Curve) bool {
	ovs, err := cont.k.overlaps(cont.k.normalize(c1), cont.k.normalize(c2))
	if err != nil {
		panic(fmt.Sprintf("circular: overlap of %v and %v: %v", c1, c2, err))
	}
	for _, is := range ovs {
		if is.IsOverlap() {
			return true
		}
	}
	return false
}
