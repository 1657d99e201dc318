/*
Package arcs implements exact rational points, lines, segments, circles and
affine transformations. It is the linear kernel consumed by the curved
kernel in package circular.

All values are immutable and all predicates are exact: coordinates are
rationals (math/big.Rat) and no decision is ever taken on a floating point
approximation. Floats are available for output and for conservative
bounding boxes only.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arcs

import (
	"fmt"
	"math"
	"math/big"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcs'
func tracer() tracing.Trace {
	return tracing.Select("arcs")
}

// === Numeric Data Type =====================================================

// Epsilon is the relative slack by which float approximations of exact
// values are widened. It is never used to take a decision.
var Epsilon float64 = 0.0000001

// Q is a quick notation for constructing a rational num/den.
// Panics if den is 0.
func Q(num, den int64) *big.Rat {
	if den == 0 {
		panic("arcs: zero denominator")
	}
	return new(big.Rat).SetFrac64(num, den)
}

// QInt is a quick notation for constructing an integral rational.
func QInt(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// QFloat converts a float to the rational of identical value.
// Panics for NaN and infinities.
func QFloat(f float64) *big.Rat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("arcs: cannot convert %g to a rational", f))
	}
	return new(big.Rat).SetFloat64(f)
}

// Widen returns an interval [lo,hi] around f which is guaranteed to contain
// the exact value f approximates, given that f is off by no more than a few
// ulps relative to Epsilon.
// Infinities are returned unchanged.
func Widen(f float64) (float64, float64) {
	if math.IsInf(f, 0) {
		return f, f
	}
	d := Epsilon * (1 + math.Abs(f))
	return f - d, f + d
}

// --- Signs and comparisons -------------------------------------------------

// Sign is the sign of an exact value.
type Sign int8

// Signs of exact values.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// SignOf returns the sign of a rational.
func SignOf(r *big.Rat) Sign {
	return Sign(r.Sign())
}

// Reverse flips the sign.
func (s Sign) Reverse() Sign {
	return -s
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	}
	return "positive"
}

// Comparison is the result of comparing two exact values.
type Comparison int8

// Comparison results.
const (
	Smaller Comparison = -1
	Equal   Comparison = 0
	Larger  Comparison = 1
)

// Compare converts a Cmp-style int into a Comparison.
func Compare(c int) Comparison {
	switch {
	case c < 0:
		return Smaller
	case c > 0:
		return Larger
	}
	return Equal
}

// Reverse flips the comparison result.
func (c Comparison) Reverse() Comparison {
	return -c
}

func (c Comparison) String() string {
	switch c {
	case Smaller:
		return "smaller"
	case Equal:
		return "equal"
	}
	return "larger"
}

// Orientation of a turn or of the traversal of a circular arc.
type Orientation int8

// Orientations. Collinear is only a valid result of OrientationOf.
const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// Reverse flips the orientation.
func (o Orientation) Reverse() Orientation {
	return -o
}

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "cw"
	case Collinear:
		return "collinear"
	}
	return "ccw"
}

// === Pair Data Type ========================================================

// Pair is a rational 2D-point. Pairs are immutable; all operations return
// new pairs.
type Pair struct {
	x, y *big.Rat
}

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from integers.
func P(x, y int64) Pair {
	return Pair{x: QInt(x), y: QInt(y)}
}

// PQ constructs a pair from rationals. The arguments are copied.
func PQ(x, y *big.Rat) Pair {
	return Pair{x: new(big.Rat).Set(x), y: new(big.Rat).Set(y)}
}

// PF constructs a pair from floats, converting them exactly.
func PF(x, y float64) Pair {
	return Pair{x: QFloat(x), y: QFloat(y)}
}

// X is the x-part of a pair. Callers must not modify the result.
func (p Pair) X() *big.Rat {
	if p.x == nil {
		return new(big.Rat)
	}
	return p.x
}

// Y is the y-part of a pair. Callers must not modify the result.
func (p Pair) Y() *big.Rat {
	if p.y == nil {
		return new(big.Rat)
	}
	return p.y
}

// F is a quick notation for getting (approximate) float values from a pair.
func (p Pair) F() (float64, float64) {
	x, _ := p.X().Float64()
	y, _ := p.Y().Float64()
	return x, y
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.X().RatString(), p.Y().RatString())
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.X().Sign() == 0 && p.Y().Sign() == 0
}

// Equal compares two pairs exactly.
func (p Pair) Equal(p2 Pair) bool {
	return p.X().Cmp(p2.X()) == 0 && p.Y().Cmp(p2.Y()) == 0
}

// CompareX compares the x-coordinates of two pairs.
func (p Pair) CompareX(p2 Pair) Comparison {
	return Compare(p.X().Cmp(p2.X()))
}

// CompareY compares the y-coordinates of two pairs.
func (p Pair) CompareY(p2 Pair) Comparison {
	return Compare(p.Y().Cmp(p2.Y()))
}

// CompareXY compares two pairs lexicographically, x first.
func (p Pair) CompareXY(p2 Pair) Comparison {
	if c := p.CompareX(p2); c != Equal {
		return c
	}
	return p.CompareY(p2)
}

// Add returns p + v.
func (p Pair) Add(v Pair) Pair {
	return Pair{
		x: new(big.Rat).Add(p.X(), v.X()),
		y: new(big.Rat).Add(p.Y(), v.Y()),
	}
}

// Sub returns p - v.
func (p Pair) Sub(v Pair) Pair {
	return Pair{
		x: new(big.Rat).Sub(p.X(), v.X()),
		y: new(big.Rat).Sub(p.Y(), v.Y()),
	}
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a *big.Rat) Pair {
	return Pair{
		x: new(big.Rat).Mul(p.X(), a),
		y: new(big.Rat).Mul(p.Y(), a),
	}
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Perp returns p rotated by 90 degrees counterclockwise, i.e. (-y,x).
func (p Pair) Perp() Pair {
	return Pair{
		x: new(big.Rat).Neg(p.Y()),
		y: new(big.Rat).Set(p.X()),
	}
}

// Dot returns the dot product of p and v.
func (p Pair) Dot(v Pair) *big.Rat {
	d := new(big.Rat).Mul(p.X(), v.X())
	return d.Add(d, new(big.Rat).Mul(p.Y(), v.Y()))
}

// SquaredDistance returns |p - q|².
func (p Pair) SquaredDistance(q Pair) *big.Rat {
	d := p.Sub(q)
	return d.Dot(d)
}

// Midpoint returns the point halfway between p and q.
func (p Pair) Midpoint(q Pair) Pair {
	return p.Add(q).Scaled(Q(1, 2))
}

// Transformed returns p transformed by the affine transform m.
func (p Pair) Transformed(m AT) Pair {
	return m.Transform(p)
}

// OrientationOf is the exact turn predicate for three points: it reports
// whether r lies left of (counterclockwise), right of (clockwise) or on the
// directed line p→q.
func OrientationOf(p, q, r Pair) Orientation {
	u, v := q.Sub(p), r.Sub(p)
	d := new(big.Rat).Mul(u.X(), v.Y())
	d.Sub(d, new(big.Rat).Mul(u.Y(), v.X()))
	return Orientation(d.Sign())
}

// === Affine Transformations ================================================

// AT is an exact affine transform, a matrix type used for transforming
// pairs.
type AT []*big.Rat // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]*big.Rat, 9)
	for i := range m {
		m[i] = new(big.Rat)
	}
	return m
}

func (m AT) get(row, col int) *big.Rat {
	return m[row*3+col]
}

func (m AT) set(row, col int, value *big.Rat) {
	m[row*3+col] = new(big.Rat).Set(value)
}

func (m AT) row(row int) []*big.Rat {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []*big.Rat {
	c := make([]*big.Rat, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, QInt(1))
	m.set(1, 1, QInt(1))
	m.set(2, 2, QInt(1))
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale uniformly around the origin by a.
// Uniform scalings map circles onto circles.
func Scaling(a *big.Rat) AT {
	m := newAT()
	m.set(0, 0, a)
	m.set(1, 1, a)
	m.set(2, 2, QInt(1))
	return m
}

// XScaling transform. Scale x-coordinates by a, leaving y-coordinates
// unchanged. This is not a similarity unless |a| = 1.
func XScaling(a *big.Rat) AT {
	m := Identity()
	m.set(0, 0, a)
	return m
}

// Reflection transform. Mirror a point at the x-axis.
func Reflection() AT {
	m := Identity()
	m.set(1, 1, QInt(-1))
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%s,%s,%s|%s,%s,%s|%s,%s,%s]",
		m[0].RatString(), m[1].RatString(), m[2].RatString(),
		m[3].RatString(), m[4].RatString(), m[5].RatString(),
		m[6].RatString(), m[7].RatString(), m[8].RatString())
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []*big.Rat) *big.Rat {
	s := new(big.Rat)
	for i := 0; i < 3; i++ {
		s.Add(s, new(big.Rat).Mul(vec1[i], vec2[i]))
	}
	return s
}

// Combine 2 affine transformation to a new one: first m, then n. Returns a
// new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o[row*3+col] = dotProd(n.row(row), m.col(col))
		}
	}
	return o
}

func (m AT) multiplyVector(v []*big.Rat) []*big.Rat {
	c := make([]*big.Rat, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// IsSimilarity is a predicate: does m map circles onto circles?
// This holds if the linear part of m is a scaled rotation or reflection.
func (m AT) IsSimilarity() bool {
	a, b, c, d := m.get(0, 0), m.get(0, 1), m.get(1, 0), m.get(1, 1)
	ac := new(big.Rat).Mul(a, b)
	ac.Add(ac, new(big.Rat).Mul(c, d)) // columns orthogonal
	n1 := new(big.Rat).Mul(a, a)
	n1.Add(n1, new(big.Rat).Mul(c, c))
	n2 := new(big.Rat).Mul(b, b)
	n2.Add(n2, new(big.Rat).Mul(d, d))
	return ac.Sign() == 0 && n1.Cmp(n2) == 0 && n1.Sign() != 0
}

// Determinant returns the determinant of the linear part of m. It is negative
// for transforms which include a reflection.
func (m AT) Determinant() *big.Rat {
	d := new(big.Rat).Mul(m.get(0, 0), m.get(1, 1))
	return d.Sub(d, new(big.Rat).Mul(m.get(0, 1), m.get(1, 0)))
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	c := []*big.Rat{p.X(), p.Y(), QInt(1)}
	c = m.multiplyVector(c)
	return Pair{x: c[0], y: c[1]}
}
