package algebraic

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/polyn"
)

var (
	// ErrDegenerate indicates an equation which is neither a proper circle
	// nor a proper line.
	ErrDegenerate = errors.New("degenerate equation")
	// ErrCoincident indicates that two equations describe the same curve.
	ErrCoincident = errors.New("equations describe the same curve")
)

// Kernel is the algebraic root kernel: it solves systems of two bivariate
// equations of degree at most 2 and decides signs and orderings of their
// solutions exactly.
type Kernel interface {
	// Solve returns the real solutions of e1 = e2 = 0, ordered by x, then y.
	Solve(e1, e2 polyn.Polynomial) ([]Solution, error)
	// SignAt returns the sign of e at r.
	SignAt(e polyn.Polynomial, r Root) arcs.Sign
	// XCriticalPoints returns the leftmost and rightmost point of a circle.
	XCriticalPoints(e polyn.Polynomial) ([2]Root, error)
	// XCriticalPoint returns the leftmost or the rightmost point of a circle.
	XCriticalPoint(e polyn.Polynomial, leftmost bool) (Root, error)
	// YCriticalPoints returns the bottom and top point of a circle.
	YCriticalPoints(e polyn.Polynomial) ([2]Root, error)
	// YCriticalPoint returns the bottom or the top point of a circle.
	YCriticalPoint(e polyn.Polynomial, bottom bool) (Root, error)
	CompareX(r1, r2 Root) arcs.Comparison
	CompareY(r1, r2 Root) arcs.Comparison
	CompareXY(r1, r2 Root) arcs.Comparison
}

// RationalKernel implements Kernel for equations with rational
// coefficients.
type RationalKernel struct{}

var _ Kernel = RationalKernel{}

// NewRationalKernel creates an algebraic kernel over the rationals.
func NewRationalKernel() RationalKernel {
	return RationalKernel{}
}

type equationKind int8

const (
	circleEquation equationKind = iota
	lineEquation
)

// classify checks that e is the equation of a circle of positive radius or
// of a proper line.
func classify(e polyn.Polynomial) (equationKind, arcs.Circle, arcs.Line, error) {
	switch e.Degree() {
	case 1:
		if l, ok := e.AsLine(); ok {
			return lineEquation, arcs.Circle{}, l, nil
		}
	case 2:
		if c, ok := e.AsCircle(); ok {
			return circleEquation, c, arcs.Line{}, nil
		}
	}
	tracer().Errorf("rejecting equation 0 = %s", e)
	return 0, arcs.Circle{}, arcs.Line{}, fmt.Errorf("%w: 0 = %s", ErrDegenerate, e)
}

// Solve returns the real solutions of the system e1 = e2 = 0, in order of
// increasing x, then y. For two circles and for a circle and a line there
// are at most two solutions, for two lines at most one.
//
// Identical curves yield ErrCoincident, zero-radius circles, degenerate lines
// and other conics yield ErrDegenerate. Curves which do not meet yield an
// empty slice and no error.
func (k RationalKernel) Solve(e1, e2 polyn.Polynomial) ([]Solution, error) {
	k1, c1, l1, err := classify(e1)
	if err != nil {
		return nil, err
	}
	k2, c2, l2, err := classify(e2)
	if err != nil {
		return nil, err
	}
	var sols []Solution
	switch {
	case k1 == circleEquation && k2 == circleEquation:
		sols, err = solveCircleCircle(c1, c2)
	case k1 == circleEquation && k2 == lineEquation:
		sols, err = solveCircleLine(c1, l2), nil
	case k1 == lineEquation && k2 == circleEquation:
		sols, err = solveCircleLine(c2, l1), nil
	default:
		sols, err = solveLineLine(e1, e2, l1, l2)
	}
	tracer().Debugf("solve 0 = %s, 0 = %s: %v", e1, e2, sols)
	return sols, err
}

func solveCircleCircle(c1, c2 arcs.Circle) ([]Solution, error) {
	if c1.Center().Equal(c2.Center()) {
		if c1.SquaredRadius().Cmp(c2.SquaredRadius()) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrCoincident, c1)
		}
		return []Solution{}, nil
	}
	// the difference of the normalized equations is the radical line
	radical := polyn.CirclePolynomial(c1).Subtract(polyn.CirclePolynomial(c2))
	l, ok := radical.AsLine()
	if !ok {
		panic(fmt.Sprintf("algebraic: no radical line for %v and %v", c1, c2))
	}
	return solveCircleLine(c1, l), nil
}

// solveCircleLine intersects a circle with center (a,b) and squared radius
// r² with the line px + qy + s = 0. With F the foot of the center on the
// line, the solutions are F ± √D⋅(-q, p) with
//
//	D = (r²(p²+q²) - (pa+qb+s)²) / (p²+q²)²
func solveCircleLine(c arcs.Circle, l arcs.Line) []Solution {
	p, q := l.A(), l.B()
	n := new(big.Rat).Mul(p, p)
	n.Add(n, new(big.Rat).Mul(q, q))
	g := l.Value(c.Center())
	t := new(big.Rat).Quo(g, n)
	t.Neg(t)
	fx := new(big.Rat).Mul(p, t)
	fx.Add(fx, c.Center().X())
	fy := new(big.Rat).Mul(q, t)
	fy.Add(fy, c.Center().Y())
	D := new(big.Rat).Mul(c.SquaredRadius(), n)
	D.Sub(D, new(big.Rat).Mul(g, g))
	D.Quo(D, new(big.Rat).Mul(n, n))
	switch D.Sign() {
	case -1:
		return []Solution{}
	case 0:
		return []Solution{{Root: RationalRoot(arcs.PQ(fx, fy)), Multiplicity: 2}}
	}
	negq := new(big.Rat).Neg(q)
	negp := new(big.Rat).Neg(p)
	r1 := NewRoot(NewRootOf2(fx, negq, D), NewRootOf2(fy, p, D))
	r2 := NewRoot(NewRootOf2(fx, q, D), NewRootOf2(fy, negp, D))
	if r1.CompareXY(r2) == arcs.Larger {
		r1, r2 = r2, r1
	}
	return []Solution{{Root: r1, Multiplicity: 1}, {Root: r2, Multiplicity: 1}}
}

func solveLineLine(e1, e2 polyn.Polynomial, l1, l2 arcs.Line) ([]Solution, error) {
	if l1.Equal(l2) {
		return nil, fmt.Errorf("%w: %v", ErrCoincident, l1)
	}
	x, y, ok, err := polyn.SolveLinearSystem(e1, e2)
	if errors.Is(err, polyn.ErrInconsistentEquation) { // parallel
		return []Solution{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		panic(fmt.Sprintf("algebraic: underdetermined intersection of %v and %v", l1, l2))
	}
	return []Solution{{Root: RationalRoot(arcs.PQ(x, y)), Multiplicity: 1}}, nil
}

// SignAt evaluates e at r exactly and returns the sign of the result.
func (k RationalKernel) SignAt(e polyn.Polynomial, r Root) arcs.Sign {
	v := Rational(new(big.Rat))
	e.Each(func(m polyn.Monomial, c *big.Rat) {
		t := Rational(c)
		for i := 0; i < m.X; i++ {
			t = t.Mul(r.x)
		}
		for i := 0; i < m.Y; i++ {
			t = t.Mul(r.y)
		}
		v = v.Add(t)
	})
	return v.Sign()
}

func criticalCircle(e polyn.Polynomial) (arcs.Circle, error) {
	kind, c, _, err := classify(e)
	if err != nil {
		return c, err
	}
	if kind != circleEquation {
		return c, fmt.Errorf("%w: critical points of non-circle 0 = %s", ErrDegenerate, e)
	}
	return c, nil
}

// XCriticalPoints returns the points of vertical tangency of a circle,
// leftmost first.
func (k RationalKernel) XCriticalPoints(e polyn.Polynomial) ([2]Root, error) {
	var pts [2]Root
	var err error
	if pts[0], err = k.XCriticalPoint(e, true); err != nil {
		return pts, err
	}
	pts[1], err = k.XCriticalPoint(e, false)
	return pts, err
}

// XCriticalPoint returns the leftmost or the rightmost point of a circle.
func (k RationalKernel) XCriticalPoint(e polyn.Polynomial, leftmost bool) (Root, error) {
	c, err := criticalCircle(e)
	if err != nil {
		return Root{}, err
	}
	return xCritical(c, leftmost), nil
}

func xCritical(c arcs.Circle, leftmost bool) Root {
	b := arcs.QInt(1)
	if leftmost {
		b = arcs.QInt(-1)
	}
	return NewRoot(NewRootOf2(c.Center().X(), b, c.SquaredRadius()), Rational(c.Center().Y()))
}

// YCriticalPoints returns the points of horizontal tangency of a circle,
// bottom first.
func (k RationalKernel) YCriticalPoints(e polyn.Polynomial) ([2]Root, error) {
	var pts [2]Root
	var err error
	if pts[0], err = k.YCriticalPoint(e, true); err != nil {
		return pts, err
	}
	pts[1], err = k.YCriticalPoint(e, false)
	return pts, err
}

// YCriticalPoint returns the bottom or the top point of a circle.
func (k RationalKernel) YCriticalPoint(e polyn.Polynomial, bottom bool) (Root, error) {
	c, err := criticalCircle(e)
	if err != nil {
		return Root{}, err
	}
	return yCritical(c, bottom), nil
}

func yCritical(c arcs.Circle, bottom bool) Root {
	b := arcs.QInt(1)
	if bottom {
		b = arcs.QInt(-1)
	}
	return NewRoot(Rational(c.Center().X()), NewRootOf2(c.Center().Y(), b, c.SquaredRadius()))
}

// CompareX compares the x-coordinates of two roots.
func (k RationalKernel) CompareX(r1, r2 Root) arcs.Comparison {
	return r1.CompareX(r2)
}

// CompareY compares the y-coordinates of two roots.
func (k RationalKernel) CompareY(r1, r2 Root) arcs.Comparison {
	return r1.CompareY(r2)
}

// CompareXY compares two roots lexicographically.
func (k RationalKernel) CompareXY(r1, r2 Root) arcs.Comparison {
	return r1.CompareXY(r2)
}
