package circular

import (
	"fmt"
	"math/big"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
	"github.com/npillmayer/arcs/polyn"
)

// --- Circular arcs ---------------------------------------------------------

func checkCircle(c arcs.Circle) error {
	if c.IsDegenerate() {
		tracer().Errorf("rejecting degenerate circle %v", c)
		return fmt.Errorf("%w: circle %v has zero radius", algebraic.ErrDegenerate, c)
	}
	return nil
}

func checkLine(l arcs.Line) error {
	if l.IsDegenerate() {
		tracer().Errorf("rejecting degenerate line %v", l)
		return fmt.Errorf("%w: line %v", algebraic.ErrDegenerate, l)
	}
	return nil
}

// FullCircle creates a counterclockwise arc covering all of c, starting and
// ending at the leftmost point of c.
func (cons construction) FullCircle(c arcs.Circle) (CircularArc, error) {
	if err := checkCircle(c); err != nil {
		return CircularArc{}, err
	}
	return cons.k.fullCircle(c), nil
}

func (k *Kernel) fullCircle(c arcs.Circle) CircularArc {
	left, err := k.ak.XCriticalPoint(polyn.CirclePolynomial(c), true)
	if err != nil {
		panic(fmt.Sprintf("circular: full circle %v: %v", c, err))
	}
	p := NewPoint(left)
	return newCircularArc(k.ak, c, p, p, arcs.CounterClockwise)
}

// selectSolution picks the xy-smaller or the xy-larger of up to two
// solutions.
func selectSolution(sols []algebraic.Solution, smaller bool) (Point, error) {
	switch len(sols) {
	case 0:
		return Point{}, ErrNoIntersection
	case 1:
		return NewPoint(sols[0].Root), nil
	}
	if smaller {
		return NewPoint(sols[0].Root), nil
	}
	return NewPoint(sols[len(sols)-1].Root), nil
}

// meet intersects the equations of a support and a delimiter and selects
// one of the intersection points.
func (k *Kernel) meet(support, delimiter polyn.Polynomial, smaller bool) (Point, error) {
	sols, err := k.ak.Solve(support, delimiter)
	if err != nil {
		return Point{}, err
	}
	p, err := selectSolution(sols, smaller)
	if err != nil {
		return Point{}, fmt.Errorf("%w: 0 = %s and 0 = %s", err, support, delimiter)
	}
	return p, nil
}

// ArcFromLines creates a counterclockwise arc on support, from its
// intersection with l1 to its intersection with l2. b1 and b2 select the
// xy-smaller of two intersection points if true.
// If both ends coincide, the result is the full circle.
func (cons construction) ArcFromLines(support arcs.Circle, l1 arcs.Line, b1 bool,
	l2 arcs.Line, b2 bool) (CircularArc, error) {
	//
	if err := checkCircle(support); err != nil {
		return CircularArc{}, err
	}
	eq := polyn.CirclePolynomial(support)
	s, err := cons.k.meet(eq, polyn.LinePolynomial(l1), b1)
	if err != nil {
		return CircularArc{}, err
	}
	t, err := cons.k.meet(eq, polyn.LinePolynomial(l2), b2)
	if err != nil {
		return CircularArc{}, err
	}
	return newCircularArc(cons.k.ak, support, s, t, arcs.CounterClockwise), nil
}

// ArcFromCircles creates a counterclockwise arc on support, from its
// intersection with c1 to its intersection with c2. b1 and b2 select the
// xy-smaller of two intersection points if true.
// If both ends coincide, the result is the full circle.
func (cons construction) ArcFromCircles(support, c1 arcs.Circle, b1 bool,
	c2 arcs.Circle, b2 bool) (CircularArc, error) {
	//
	if err := checkCircle(support); err != nil {
		return CircularArc{}, err
	}
	eq := polyn.CirclePolynomial(support)
	s, err := cons.k.meet(eq, polyn.CirclePolynomial(c1), b1)
	if err != nil {
		return CircularArc{}, err
	}
	t, err := cons.k.meet(eq, polyn.CirclePolynomial(c2), b2)
	if err != nil {
		return CircularArc{}, err
	}
	return newCircularArc(cons.k.ak, support, s, t, arcs.CounterClockwise), nil
}

// CutArc cuts a at the intersection of its support with ccut, selected by
// bcut. If keepSource is true, the part from the source of a to the cut
// point is returned, otherwise the part from the cut point to the target.
// The cut point has to be in the open interior of a.
func (cons construction) CutArc(a CircularArc, keepSource bool, ccut arcs.Circle,
	bcut bool) (CircularArc, error) {
	//
	p, err := cons.k.meet(a.eq, polyn.CirclePolynomial(ccut), bcut)
	if err != nil {
		return CircularArc{}, err
	}
	if !a.inInterior(p) {
		return CircularArc{}, fmt.Errorf("%w: %v on %v", ErrOutOfRange, p, a)
	}
	if keepSource {
		return newCircularArc(cons.k.ak, a.support, a.source, p, a.orientation), nil
	}
	return newCircularArc(cons.k.ak, a.support, p, a.target, a.orientation), nil
}

// ArcThroughPoints creates the arc from begin over middle to end. Its
// orientation is the turn of the three points; collinear points are
// rejected with algebraic.ErrDegenerate.
func (cons construction) ArcThroughPoints(begin, middle, end arcs.Pair) (CircularArc, error) {
	o := arcs.OrientationOf(begin, middle, end)
	if o == arcs.Collinear {
		return CircularArc{}, fmt.Errorf("%w: collinear points %v, %v, %v",
			algebraic.ErrDegenerate, begin, middle, end)
	}
	// the center is equidistant to all three points:
	// 2(q-p)⋅X = |q|² - |p|²
	bisector := func(p, q arcs.Pair) polyn.Polynomial {
		d := q.Sub(p).Scaled(arcs.QInt(2))
		c := new(big.Rat).Sub(p.Dot(p), q.Dot(q))
		e, _ := polyn.New(c, polyn.Term{M: polyn.MX, C: d.X()}, polyn.Term{M: polyn.MY, C: d.Y()})
		return e
	}
	x, y, ok, err := polyn.SolveLinearSystem(bisector(begin, middle), bisector(middle, end))
	if err != nil || !ok {
		panic(fmt.Sprintf("circular: no circumcenter for non-collinear points %v, %v, %v",
			begin, middle, end))
	}
	center := arcs.PQ(x, y)
	c := arcs.NewCircle(center, begin.SquaredDistance(center))
	tracer().Debugf("circle through %v, %v, %v is %v", begin, middle, end, c)
	return newCircularArc(cons.k.ak, c, PointFromPair(begin), PointFromPair(end), o), nil
}

// ArcFromBulge creates an arc from begin to end with a bulge factor, i.e.
// the tangent of a quarter of the included angle. Positive bulges yield
// counterclockwise arcs, negative ones clockwise arcs. A bulge of 1 is a
// half circle.
func (cons construction) ArcFromBulge(begin, end arcs.Pair, bulge *big.Rat) (CircularArc, error) {
	if bulge.Sign() == 0 || begin.Equal(end) {
		return CircularArc{}, fmt.Errorf("%w: bulge %s from %v to %v",
			algebraic.ErrDegenerate, bulge.RatString(), begin, end)
	}
	// center = M + (1-b²)/(4b) ⋅ perp(end-begin)
	f := new(big.Rat).Mul(bulge, bulge)
	f.Sub(arcs.QInt(1), f)
	f.Quo(f, new(big.Rat).Mul(bulge, arcs.QInt(4)))
	center := begin.Midpoint(end).Add(end.Sub(begin).Perp().Scaled(f))
	c := arcs.NewCircle(center, begin.SquaredDistance(center))
	o := arcs.CounterClockwise
	if bulge.Sign() < 0 {
		o = arcs.Clockwise
	}
	return newCircularArc(cons.k.ak, c, PointFromPair(begin), PointFromPair(end), o), nil
}

// ArcFromPoints creates an arc on support from source to target with a
// given orientation. Both points have to be on support. If they coincide,
// the result is the full circle. Orientations other than clockwise and
// counterclockwise yield algebraic.ErrDegenerate.
func (cons construction) ArcFromPoints(support arcs.Circle, source, target Point,
	o arcs.Orientation) (CircularArc, error) {
	//
	if err := checkCircle(support); err != nil {
		return CircularArc{}, err
	}
	if o != arcs.CounterClockwise && o != arcs.Clockwise {
		return CircularArc{}, fmt.Errorf("%w: arc orientation %v", algebraic.ErrDegenerate, o)
	}
	eq := polyn.CirclePolynomial(support)
	for _, p := range []Point{source, target} {
		if signAt(cons.k.ak, eq, p) != arcs.Zero {
			return CircularArc{}, fmt.Errorf("%w: %v on %v", ErrNotOnCurve, p, support)
		}
	}
	return newCircularArc(cons.k.ak, support, source, target, o), nil
}

// --- Line arcs -------------------------------------------------------------

// LineArcFromPoints creates the segment from p to q.
func (cons construction) LineArcFromPoints(p, q arcs.Pair) (LineArc, error) {
	if p.Equal(q) {
		return LineArc{}, fmt.Errorf("%w: zero length segment at %v", algebraic.ErrDegenerate, p)
	}
	return newLineArc(arcs.LineThrough(p, q), PointFromPair(p), PointFromPair(q), false, false), nil
}

// LineArcFromSegment creates a line arc from a segment.
func (cons construction) LineArcFromSegment(s arcs.Segment) (LineArc, error) {
	return cons.LineArcFromPoints(s.Source, s.Target)
}

// LineArcOnLine creates the line arc on support from p to q. Both points
// have to be on support.
func (cons construction) LineArcOnLine(support arcs.Line, p, q Point) (LineArc, error) {
	if err := checkLine(support); err != nil {
		return LineArc{}, err
	}
	eq := polyn.LinePolynomial(support)
	for _, x := range []Point{p, q} {
		if signAt(cons.k.ak, eq, x) != arcs.Zero {
			return LineArc{}, fmt.Errorf("%w: %v on %v", ErrNotOnCurve, x, support)
		}
	}
	if p.Equal(q) {
		return LineArc{}, fmt.Errorf("%w: zero length line arc at %v", algebraic.ErrDegenerate, p)
	}
	return newLineArc(support, p, q, false, false), nil
}

// LineArcFromLines creates the line arc on support between its
// intersections with l1 and l2.
func (cons construction) LineArcFromLines(support, l1, l2 arcs.Line) (LineArc, error) {
	if err := checkLine(support); err != nil {
		return LineArc{}, err
	}
	eq := polyn.LinePolynomial(support)
	p, err := cons.k.meet(eq, polyn.LinePolynomial(l1), true)
	if err != nil {
		return LineArc{}, err
	}
	q, err := cons.k.meet(eq, polyn.LinePolynomial(l2), true)
	if err != nil {
		return LineArc{}, err
	}
	return cons.LineArcOnLine(support, p, q)
}

// LineArcFromCircles creates the line arc on support between its
// intersections with c1 and c2, selected by b1 and b2 (xy-smaller if true).
func (cons construction) LineArcFromCircles(support arcs.Line, c1 arcs.Circle, b1 bool,
	c2 arcs.Circle, b2 bool) (LineArc, error) {
	//
	if err := checkLine(support); err != nil {
		return LineArc{}, err
	}
	eq := polyn.LinePolynomial(support)
	p, err := cons.k.meet(eq, polyn.CirclePolynomial(c1), b1)
	if err != nil {
		return LineArc{}, err
	}
	q, err := cons.k.meet(eq, polyn.CirclePolynomial(c2), b2)
	if err != nil {
		return LineArc{}, err
	}
	return cons.LineArcOnLine(support, p, q)
}

// Ray creates the ray on support starting at source, running in the
// direction of support.
func (cons construction) Ray(support arcs.Line, source Point) (LineArc, error) {
	if err := checkLine(support); err != nil {
		return LineArc{}, err
	}
	if signAt(cons.k.ak, polyn.LinePolynomial(support), source) != arcs.Zero {
		return LineArc{}, fmt.Errorf("%w: %v on %v", ErrNotOnCurve, source, support)
	}
	return newLineArc(support, source, Point{}, false, true), nil
}

// FullLine creates a line arc covering all of l, in the direction of l.
func (cons construction) FullLine(l arcs.Line) (LineArc, error) {
	if err := checkLine(l); err != nil {
		return LineArc{}, err
	}
	return newLineArc(l, Point{}, Point{}, true, true), nil
}

// --- Points and parts ------------------------------------------------------

// Point creates a point from an algebraic root.
func (cons construction) Point(r algebraic.Root) Point {
	return NewPoint(r)
}

// PointFromPair creates a rational point.
func (cons construction) PointFromPair(p arcs.Pair) Point {
	return PointFromPair(p)
}

// MinVertex returns the xy-smaller end of an x-monotone arc or of a
// bounded end of a line arc. Panics otherwise.
func (cons construction) MinVertex(c Curve) Point {
	switch c.kind {
	case KindCircle, KindLine:
		panic(fmt.Sprintf("circular: min vertex of %v", c.kind))
	case KindCircularArc:
		return c.arc.MinVertex()
	case KindLineArc:
		return c.larc.MinVertex()
	}
	panic(unhandledKind(c))
}

// MaxVertex returns the xy-larger end of an x-monotone arc or of a
// bounded end of a line arc. Panics otherwise.
func (cons construction) MaxVertex(c Curve) Point {
	switch c.kind {
	case KindCircle, KindLine:
		panic(fmt.Sprintf("circular: max vertex of %v", c.kind))
	case KindCircularArc:
		return c.arc.MaxVertex()
	case KindLineArc:
		return c.larc.MaxVertex()
	}
	panic(unhandledKind(c))
}

// SourceVertex returns the source of an arc.
func (cons construction) SourceVertex(c Curve) Point {
	return c.Source()
}

// TargetVertex returns the target of an arc.
func (cons construction) TargetVertex(c Curve) Point {
	return c.Target()
}

// SupportingCircle returns the circle of circles and circular arcs.
func (cons construction) SupportingCircle(c Curve) (arcs.Circle, bool) {
	switch c.kind {
	case KindCircle:
		return c.circle, true
	case KindCircularArc:
		return c.arc.support, true
	case KindLine, KindLineArc:
		return arcs.Circle{}, false
	}
	panic(unhandledKind(c))
}

// SupportingLine returns the line of lines and line arcs.
func (cons construction) SupportingLine(c Curve) (arcs.Line, bool) {
	switch c.kind {
	case KindLine:
		return c.line, true
	case KindLineArc:
		return c.larc.support, true
	case KindCircle, KindCircularArc:
		return arcs.Line{}, false
	}
	panic(unhandledKind(c))
}

// BoundingBox returns a box which is guaranteed to contain c.
func (cons construction) BoundingBox(c Curve) polyclip.Rectangle {
	return cons.k.boundingBox(c)
}

// --- Normalization ---------------------------------------------------------

// normalize turns circles into full circular arcs and lines into full line
// arcs. Panics for degenerate circles and lines.
func (k *Kernel) normalize(c Curve) Curve {
	switch c.kind {
	case KindCircle:
		if err := checkCircle(c.circle); err != nil {
			panic(fmt.Sprintf("circular: %v", err))
		}
		return FromArc(k.fullCircle(c.circle))
	case KindLine:
		if err := checkLine(c.line); err != nil {
			panic(fmt.Sprintf("circular: %v", err))
		}
		return FromLineArc(newLineArc(c.line, Point{}, Point{}, true, true))
	case KindCircularArc:
		if !c.arc.IsValid() {
			panic("circular: use of invalid arc")
		}
		return c
	case KindLineArc:
		if !c.larc.IsValid() {
			panic("circular: use of invalid line arc")
		}
		return c
	}
	panic(unhandledKind(c))
}
