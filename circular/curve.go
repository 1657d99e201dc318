package circular

import (
	"fmt"

	"github.com/npillmayer/arcs"
)

// Kind is the type tag of a Curve.
type Kind int8

// Kinds of curves.
const (
	KindCircle Kind = iota
	KindLine
	KindCircularArc
	KindLineArc
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindCircularArc:
		return "circular-arc"
	case KindLineArc:
		return "line-arc"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// Curve is one of: a circle, a line, a circular arc or a line arc.
// Predicates accept any pairing of kinds.
type Curve struct {
	kind   Kind
	circle arcs.Circle
	line   arcs.Line
	arc    CircularArc
	larc   LineArc
}

// FromCircle wraps a circle as a curve.
func FromCircle(c arcs.Circle) Curve {
	return Curve{kind: KindCircle, circle: c}
}

// FromLine wraps a line as a curve.
func FromLine(l arcs.Line) Curve {
	return Curve{kind: KindLine, line: l}
}

// FromArc wraps a circular arc as a curve.
func FromArc(a CircularArc) Curve {
	return Curve{kind: KindCircularArc, arc: a}
}

// FromLineArc wraps a line arc as a curve.
func FromLineArc(a LineArc) Curve {
	return Curve{kind: KindLineArc, larc: a}
}

// Kind returns the type tag of a curve.
func (c Curve) Kind() Kind {
	return c.kind
}

// Circle returns the circle of a curve of kind KindCircle.
func (c Curve) Circle() (arcs.Circle, bool) {
	return c.circle, c.kind == KindCircle
}

// Line returns the line of a curve of kind KindLine.
func (c Curve) Line() (arcs.Line, bool) {
	return c.line, c.kind == KindLine
}

// CircularArc returns the arc of a curve of kind KindCircularArc.
func (c Curve) CircularArc() (CircularArc, bool) {
	return c.arc, c.kind == KindCircularArc
}

// LineArc returns the line arc of a curve of kind KindLineArc.
func (c Curve) LineArc() (LineArc, bool) {
	return c.larc, c.kind == KindLineArc
}

// Source returns the start point of an arc. Invalid for circles, lines and
// line arcs unbounded at the source.
func (c Curve) Source() Point {
	switch c.kind {
	case KindCircle, KindLine:
		return Point{}
	case KindCircularArc:
		return c.arc.Source()
	case KindLineArc:
		return c.larc.Source()
	}
	panic(unhandledKind(c))
}

// Target returns the end point of an arc. Invalid for circles, lines and
// line arcs unbounded at the target.
func (c Curve) Target() Point {
	switch c.kind {
	case KindCircle, KindLine:
		return Point{}
	case KindCircularArc:
		return c.arc.Target()
	case KindLineArc:
		return c.larc.Target()
	}
	panic(unhandledKind(c))
}

func (c Curve) String() string {
	switch c.kind {
	case KindCircle:
		return c.circle.String()
	case KindLine:
		return c.line.String()
	case KindCircularArc:
		return c.arc.String()
	case KindLineArc:
		return c.larc.String()
	}
	return unhandledKind(c)
}

func unhandledKind(c Curve) string {
	return fmt.Sprintf("circular: unhandled curve kind %v", c.kind)
}

func unhandledPair(c1, c2 Curve) string {
	return fmt.Sprintf("circular: unhandled curve kinds %v / %v", c1.kind, c2.kind)
}

// XMonotonePiece is an x-monotone part of a curve, together with its
// direction of traversal and the half of the circle it lies on.
type XMonotonePiece struct {
	Curve       Curve
	XIncreasing bool // traversal from left to right
	OnUpperPart bool // circular arcs only
}

// XYMonotonePiece is a part of a curve which is monotone in x and in y,
// together with its directions of traversal.
type XYMonotonePiece struct {
	Curve       Curve
	XIncreasing bool // traversal from left to right
	YIncreasing bool // traversal from bottom to top
}

// Intersection is either an isolated intersection point with its
// multiplicity, or an overlapping part of two curves.
type Intersection struct {
	Point        Point // isolated point, or the min vertex of an overlap (invalid if unbounded)
	Multiplicity int   // 0 for overlaps and for touching ends of overlapping supports
	Overlap      Curve // valid if IsOverlap()
	overlap      bool
}

// IsOverlap is true if the intersection is a common part of positive length.
func (is Intersection) IsOverlap() bool {
	return is.overlap
}

func (is Intersection) String() string {
	if is.overlap {
		return fmt.Sprintf("overlap %v", is.Overlap)
	}
	return fmt.Sprintf("%v^%d", is.Point, is.Multiplicity)
}
