package arcs

import (
	"fmt"
	"math/big"
)

// === Lines =================================================================

// Line is an oriented line a·x + b·y + c = 0 with rational coefficients.
// Its direction is (b,-a); the positive side is to the left of it.
type Line struct {
	a, b, c *big.Rat
}

// NewLine creates the line a·x + b·y + c = 0. The coefficients are copied.
// A line with a = b = 0 is degenerate; see IsDegenerate.
func NewLine(a, b, c *big.Rat) Line {
	return Line{
		a: new(big.Rat).Set(a),
		b: new(big.Rat).Set(b),
		c: new(big.Rat).Set(c),
	}
}

// LineThrough creates the line through p and q, directed from p to q.
// If p equals q, the result is degenerate.
func LineThrough(p, q Pair) Line {
	// (x - px)(qy - py) - (y - py)(qx - px) = 0, negated to have p→q run
	// with the positive side to the left
	a := new(big.Rat).Sub(p.Y(), q.Y())
	b := new(big.Rat).Sub(q.X(), p.X())
	c := new(big.Rat).Mul(p.X(), q.Y())
	c.Sub(c, new(big.Rat).Mul(p.Y(), q.X()))
	return Line{a: a, b: b, c: c}
}

// Horizontal creates the line y = y0, directed towards +x.
func Horizontal(y0 *big.Rat) Line {
	return Line{a: new(big.Rat), b: QInt(1), c: new(big.Rat).Neg(y0)}
}

// Vertical creates the line x = x0, directed towards +y.
func Vertical(x0 *big.Rat) Line {
	return Line{a: QInt(-1), b: new(big.Rat), c: new(big.Rat).Set(x0)}
}

func zeroIfNil(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}

// A returns the x-coefficient. Callers must not modify the result.
func (l Line) A() *big.Rat { return zeroIfNil(l.a) }

// B returns the y-coefficient. Callers must not modify the result.
func (l Line) B() *big.Rat { return zeroIfNil(l.b) }

// C returns the constant term. Callers must not modify the result.
func (l Line) C() *big.Rat { return zeroIfNil(l.c) }

// IsDegenerate is true for a = b = 0.
func (l Line) IsDegenerate() bool {
	return l.A().Sign() == 0 && l.B().Sign() == 0
}

// IsVertical is true if the line is parallel to the y-axis.
func (l Line) IsVertical() bool {
	return l.B().Sign() == 0 && l.A().Sign() != 0
}

// IsHorizontal is true if the line is parallel to the x-axis.
func (l Line) IsHorizontal() bool {
	return l.A().Sign() == 0 && l.B().Sign() != 0
}

// Direction returns the direction vector (b,-a) of the line.
func (l Line) Direction() Pair {
	return Pair{x: new(big.Rat).Set(l.B()), y: new(big.Rat).Neg(l.A())}
}

// Value evaluates a·x + b·y + c at p.
func (l Line) Value(p Pair) *big.Rat {
	v := new(big.Rat).Mul(l.A(), p.X())
	v.Add(v, new(big.Rat).Mul(l.B(), p.Y()))
	return v.Add(v, l.C())
}

// Side returns the sign of the line equation at p: positive left of the
// line, negative right of it, zero on it.
func (l Line) Side(p Pair) Sign {
	return Sign(l.Value(p).Sign())
}

// HasOn is a predicate: is p on l?
func (l Line) HasOn(p Pair) bool {
	return l.Side(p) == Zero
}

// Opposite returns the line with reversed direction.
func (l Line) Opposite() Line {
	return Line{
		a: new(big.Rat).Neg(l.A()),
		b: new(big.Rat).Neg(l.B()),
		c: new(big.Rat).Neg(l.C()),
	}
}

// Equal is true if l and l2 denote the same point set, regardless of
// direction and scaling of the coefficients.
func (l Line) Equal(l2 Line) bool {
	cross := func(u1, v1, u2, v2 *big.Rat) bool {
		x := new(big.Rat).Mul(u1, v2)
		return x.Cmp(new(big.Rat).Mul(v1, u2)) == 0
	}
	return cross(l.A(), l.B(), l2.A(), l2.B()) &&
		cross(l.A(), l.C(), l2.A(), l2.C()) &&
		cross(l.B(), l.C(), l2.B(), l2.C())
}

// SameDirection is true if l and l2 are parallel and equally directed.
func (l Line) SameDirection(l2 Line) bool {
	d1, d2 := l.Direction(), l2.Direction()
	return OrientationOf(Origin, d1, d2) == Collinear && d1.Dot(d2).Sign() > 0
}

// Point returns a point on the line.
func (l Line) Point() Pair {
	if l.B().Sign() != 0 { // (0, -c/b)
		return Pair{x: new(big.Rat), y: new(big.Rat).Neg(new(big.Rat).Quo(l.C(), l.B()))}
	}
	return Pair{x: new(big.Rat).Neg(new(big.Rat).Quo(l.C(), l.A())), y: new(big.Rat)}
}

// Shifted returns the line translated by v.
func (l Line) Shifted(v Pair) Line {
	c := new(big.Rat).Sub(l.C(), new(big.Rat).Mul(l.A(), v.X()))
	c.Sub(c, new(big.Rat).Mul(l.B(), v.Y()))
	return Line{a: new(big.Rat).Set(l.A()), b: new(big.Rat).Set(l.B()), c: c}
}

func (l Line) String() string {
	return fmt.Sprintf("[%s x + %s y + %s = 0]", l.A().RatString(), l.B().RatString(),
		l.C().RatString())
}

// === Segments ==============================================================

// Segment is a directed line segment between two rational points.
type Segment struct {
	Source, Target Pair
}

// Seg is a quick notation for a segment.
func Seg(source, target Pair) Segment {
	return Segment{Source: source, Target: target}
}

// IsDegenerate is true for zero-length segments.
func (s Segment) IsDegenerate() bool {
	return s.Source.Equal(s.Target)
}

// SupportingLine returns the line through the segment, directed like it.
func (s Segment) SupportingLine() Line {
	return LineThrough(s.Source, s.Target)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v--%v", s.Source, s.Target)
}

// === Circles ===============================================================

// Circle is a circle given by a rational center and a rational squared
// radius. Every circle through three rational points is representable.
type Circle struct {
	center   Pair
	sqradius *big.Rat
}

// NewCircle creates a circle. The squared radius must not be negative;
// a zero squared radius yields a degenerate circle.
func NewCircle(center Pair, squaredRadius *big.Rat) Circle {
	if squaredRadius.Sign() < 0 {
		panic(fmt.Sprintf("arcs: negative squared radius %s", squaredRadius.RatString()))
	}
	if squaredRadius.Sign() == 0 {
		tracer().Errorf("created degenerate circle at %v", center)
	}
	return Circle{
		center:   PQ(center.X(), center.Y()),
		sqradius: new(big.Rat).Set(squaredRadius),
	}
}

// CircleFromRadius creates a circle with rational radius r.
func CircleFromRadius(center Pair, r *big.Rat) Circle {
	return NewCircle(center, new(big.Rat).Mul(r, r))
}

// Center returns the center of the circle.
func (c Circle) Center() Pair {
	return c.center
}

// SquaredRadius returns r². Callers must not modify the result.
func (c Circle) SquaredRadius() *big.Rat {
	return zeroIfNil(c.sqradius)
}

// IsDegenerate is true for circles of radius zero.
func (c Circle) IsDegenerate() bool {
	return c.SquaredRadius().Sign() == 0
}

// Power evaluates (x-cx)² + (y-cy)² - r² at p.
func (c Circle) Power(p Pair) *big.Rat {
	d := p.SquaredDistance(c.center)
	return d.Sub(d, c.SquaredRadius())
}

// BoundedSide returns Negative if p is inside c, Zero if on c, Positive if
// outside.
func (c Circle) BoundedSide(p Pair) Sign {
	return Sign(c.Power(p).Sign())
}

// HasOn is a predicate: is p on the circle?
func (c Circle) HasOn(p Pair) bool {
	return c.BoundedSide(p) == Zero
}

// Equal is true for identical circles.
func (c Circle) Equal(c2 Circle) bool {
	return c.center.Equal(c2.center) && c.SquaredRadius().Cmp(c2.SquaredRadius()) == 0
}

// Shifted returns the circle translated by v.
func (c Circle) Shifted(v Pair) Circle {
	return Circle{center: c.center.Shifted(v), sqradius: new(big.Rat).Set(c.SquaredRadius())}
}

// Transformed maps c by a similarity transform m. Panics if m does not map
// circles onto circles.
func (c Circle) Transformed(m AT) Circle {
	if !m.IsSimilarity() {
		panic("arcs: transform does not preserve circles")
	}
	// scale factor² of the linear part is a² + c²
	k := new(big.Rat).Mul(m.get(0, 0), m.get(0, 0))
	k.Add(k, new(big.Rat).Mul(m.get(1, 0), m.get(1, 0)))
	return Circle{center: m.Transform(c.center), sqradius: k.Mul(k, c.SquaredRadius())}
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%v, r²=%s)", c.center, c.SquaredRadius().RatString())
}
