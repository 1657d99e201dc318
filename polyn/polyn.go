// Package polyn is for exact arithmetic with bivariate polynomials of total
// degree at most 2 and for solving linear equations.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/arcs"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the polynomials tracer.
func T() tracing.Trace {
	return tracing.Select("polyn")
}

// MaxDegree is the maximum total degree of a polynomial.
const MaxDegree = 2

// ErrDegreeTooHigh indicates a term or product of total degree > 2.
var ErrDegreeTooHigh = errors.New("polynomial degree exceeds 2")

// Monomial is a power product x^X ⋅ y^Y.
type Monomial struct {
	X, Y int // exponents of x and y
}

// Frequently used monomials.
var (
	One = Monomial{0, 0}
	MX  = Monomial{1, 0}
	MY  = Monomial{0, 1}
	MXX = Monomial{2, 0}
	MXY = Monomial{1, 1}
	MYY = Monomial{0, 2}
)

// Degree is the total degree of a monomial.
func (m Monomial) Degree() int {
	return m.X + m.Y
}

func (m Monomial) String() string {
	var s string
	switch m.X {
	case 0:
	case 1:
		s = "x"
	case 2:
		s = "x²"
	default:
		s = fmt.Sprintf("x^%d", m.X)
	}
	switch m.Y {
	case 0:
	case 1:
		s += "y"
	case 2:
		s += "y²"
	default:
		s += fmt.Sprintf("y^%d", m.Y)
	}
	return s
}

// monomialComparator orders monomials by degree, then by descending
// x-exponent: 1, x, y, x², xy, y².
func monomialComparator(a, b interface{}) int {
	m1, m2 := a.(Monomial), b.(Monomial)
	if d := m1.Degree() - m2.Degree(); d != 0 {
		return d
	}
	return m2.X - m1.X
}

// Term is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅M
type Term struct {
	M Monomial // power product
	C *big.Rat // coefficient
}

// New creates a polynomial, given the constant and additional terms.
//
// Use it as
//
//	polyn.New(arcs.QInt(-4), polyn.Term{polyn.MXX, arcs.QInt(1)}, polyn.Term{polyn.MYY, arcs.QInt(1)})
//
// to get
//
//	P(x,y) = -4 + x² + y²
//
// Terms of degree > 2 are skipped and reported as an error.
func New(c *big.Rat, tms ...Term) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.M.Degree() > MaxDegree || t.M.X < 0 || t.M.Y < 0 {
			err = fmt.Errorf("%w: skipping term %s", ErrDegreeTooHigh, t.M)
		} else {
			p = p.SetTerm(t.M, new(big.Rat).Add(p.Coeff(t.M), t.C))
		}
	}
	return p.Zap(), err
}

// Polynomial is a type for bivariate polynomials over the rationals
//
//	c + a.x x + a.y y + a.xx x² + a.xy xy + a.yy y²
//
// We store the coefficients only, in a TreeMap (sorted map) keyed by
// monomial. Polynomials are treated as immutable: every operation returns a
// new polynomial.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c *big.Rat) Polynomial {
	p := Polynomial{Terms: treemap.NewWith(monomialComparator)}
	p.Terms.Put(One, new(big.Rat).Set(c))
	return p
}

// CirclePolynomial creates (x-cx)² + (y-cy)² - r² for a circle.
func CirclePolynomial(c arcs.Circle) Polynomial {
	cx, cy := c.Center().X(), c.Center().Y()
	k := new(big.Rat).Mul(cx, cx)
	k.Add(k, new(big.Rat).Mul(cy, cy))
	k.Sub(k, c.SquaredRadius())
	p := NewConstantPolynomial(k)
	p = p.SetTerm(MXX, arcs.QInt(1)).SetTerm(MYY, arcs.QInt(1))
	p = p.SetTerm(MX, new(big.Rat).Mul(cx, arcs.QInt(-2)))
	p = p.SetTerm(MY, new(big.Rat).Mul(cy, arcs.QInt(-2)))
	return p.Zap()
}

// LinePolynomial creates a x + b y + c for a line.
func LinePolynomial(l arcs.Line) Polynomial {
	p := NewConstantPolynomial(l.C())
	p = p.SetTerm(MX, l.A()).SetTerm(MY, l.B())
	return p.Zap()
}

func (p Polynomial) checkTerms() Polynomial {
	if p.Terms == nil {
		p.Terms = treemap.NewWith(monomialComparator)
		p.Terms.Put(One, new(big.Rat))
	}
	return p
}

// SetTerm returns a copy of p with the coefficient for monomial m replaced.
// For m = One, sets the constant term.
// Panics if m has degree > 2.
func (p Polynomial) SetTerm(m Monomial, scale *big.Rat) Polynomial {
	if m.Degree() > MaxDegree {
		panic(fmt.Sprintf("polyn: cannot set term %s: %v", m, ErrDegreeTooHigh))
	}
	p1 := p.CopyPolynomial()
	p1.Terms.Put(m, new(big.Rat).Set(scale))
	return p1
}

// CopyPolynomial makes a deep copy of a polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p = p.checkTerms()
	p1 := Polynomial{Terms: treemap.NewWith(monomialComparator)}
	it := p.Terms.Iterator()
	for it.Next() { // copy all terms of p into p1
		p1.Terms.Put(it.Key(), new(big.Rat).Set(it.Value().(*big.Rat)))
	}
	return p1
}

// Coeff gets the coefficient for monomial m. Callers must not modify the
// result.
//
// Example:
//
//	p = x + 3y²
//
// ⇒
//
//	coeff(y²) = 3
func (p Polynomial) Coeff(m Monomial) *big.Rat {
	if p.Terms == nil {
		return new(big.Rat)
	}
	if sc, found := p.Terms.Get(m); found {
		return sc.(*big.Rat)
	}
	return new(big.Rat)
}

// ConstantValue returns the constant term of a polynomial.
func (p Polynomial) ConstantValue() *big.Rat {
	return p.Coeff(One)
}

// Each calls f for every non-zero term of p, in monomial order.
func (p Polynomial) Each(f func(Monomial, *big.Rat)) {
	p = p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		c := it.Value().(*big.Rat)
		if c.Sign() != 0 {
			f(it.Key().(Monomial), c)
		}
	}
}

// Monomials returns the monomials with non-zero coefficients, in order.
func (p Polynomial) Monomials() []Monomial {
	var ms []Monomial
	p.Each(func(m Monomial, _ *big.Rat) {
		ms = append(ms, m)
	})
	return ms
}

// TermCount returns the number of non-zero terms.
func (p Polynomial) TermCount() int {
	return len(p.Monomials())
}

// Internal method: add or subtract 2 polynomials. The high level methods
// are based on this one.
// Flag doAdd signals addition or subtraction.
func (p Polynomial) addOrSub(p2 Polynomial, doAdd bool) Polynomial {
	p1 := p.CopyPolynomial() // will become our return value
	p2.Each(func(m Monomial, scale2 *big.Rat) {
		scale1 := new(big.Rat).Set(p1.Coeff(m))
		if doAdd {
			scale1.Add(scale1, scale2) // if present, add a1 + a2
		} else {
			scale1.Sub(scale1, scale2) // if present, subtract a1 - a2
		}
		p1.Terms.Put(m, scale1)
	})
	return p1.Zap()
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, true)
}

// Subtract subtracts two Polynomials. Returns a new Polynomial.
func (p Polynomial) Subtract(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, false)
}

// Scale multiplies all coefficients by c.
func (p Polynomial) Scale(c *big.Rat) Polynomial {
	p1 := Polynomial{Terms: treemap.NewWith(monomialComparator)}
	p1.Terms.Put(One, new(big.Rat))
	p.Each(func(m Monomial, scale *big.Rat) {
		p1.Terms.Put(m, new(big.Rat).Mul(scale, c))
	})
	return p1.Zap()
}

// Multiply multiplies two Polynomials. The product must not exceed degree 2,
// otherwise ErrDegreeTooHigh is returned.
func (p Polynomial) Multiply(p2 Polynomial) (Polynomial, error) {
	if p.Degree()+p2.Degree() > MaxDegree {
		return Polynomial{}, fmt.Errorf("%w: (%s) * (%s)", ErrDegreeTooHigh, p, p2)
	}
	prod := NewConstantPolynomial(new(big.Rat))
	p.Each(func(m1 Monomial, c1 *big.Rat) {
		p2.Each(func(m2 Monomial, c2 *big.Rat) {
			m := Monomial{m1.X + m2.X, m1.Y + m2.Y}
			c := new(big.Rat).Mul(c1, c2)
			prod.Terms.Put(m, c.Add(c, prod.Coeff(m)))
		})
	})
	return prod.Zap(), nil
}

// Divide divides a polynomial by a non-zero rational.
// Panics on division by zero.
func (p Polynomial) Divide(c *big.Rat) Polynomial {
	if c.Sign() == 0 {
		panic("polyn: illegal divisor 0")
	}
	return p.Scale(new(big.Rat).Inv(c))
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
// The constant term is always present.
func (p Polynomial) Zap() Polynomial {
	p = p.checkTerms()
	for _, m := range p.Terms.Keys() {
		if scale, _ := p.Terms.Get(m); scale.(*big.Rat).Sign() == 0 {
			p.Terms.Remove(m)
		}
	}
	if _, ok := p.Terms.Get(One); !ok {
		p.Terms.Put(One, new(big.Rat)) // set p = 0: re-introduce c
	}
	return p
}

// IsConstant checks wether a Polynomial is a constant, i.e. p = { c }.
// Returns the constant and a flag.
func (p Polynomial) IsConstant() (*big.Rat, bool) {
	return p.ConstantValue(), p.Degree() == 0
}

// IsZero is true for the zero polynomial.
func (p Polynomial) IsZero() bool {
	c, isconst := p.IsConstant()
	return isconst && c.Sign() == 0
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return p.Terms != nil
}

// Degree returns the total degree of p. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	d := 0
	p.Each(func(m Monomial, _ *big.Rat) {
		if m.Degree() > d {
			d = m.Degree()
		}
	})
	return d
}

// Equal compares two polynomials coefficient-wise.
func (p Polynomial) Equal(p2 Polynomial) bool {
	return p.Subtract(p2).IsZero()
}

// Proportional is true if p = k⋅p2 for some non-zero rational k.
func (p Polynomial) Proportional(p2 Polynomial) bool {
	if p.IsZero() || p2.IsZero() {
		return p.IsZero() && p2.IsZero()
	}
	var m0 Monomial
	p.Each(func(m Monomial, _ *big.Rat) { m0 = m })
	if p2.Coeff(m0).Sign() == 0 {
		return false
	}
	k := new(big.Rat).Quo(p.Coeff(m0), p2.Coeff(m0))
	return p.Equal(p2.Scale(k))
}

// EvalRat evaluates p at the rational point (x,y).
func (p Polynomial) EvalRat(x, y *big.Rat) *big.Rat {
	v := new(big.Rat)
	p.Each(func(m Monomial, c *big.Rat) {
		t := new(big.Rat).Set(c)
		for i := 0; i < m.X; i++ {
			t.Mul(t, x)
		}
		for i := 0; i < m.Y; i++ {
			t.Mul(t, y)
		}
		v.Add(v, t)
	})
	return v
}

// AsLine interprets p as a line a x + b y + c = 0. Fails if p is not of
// degree 1.
func (p Polynomial) AsLine() (arcs.Line, bool) {
	if p.Degree() != 1 {
		return arcs.Line{}, false
	}
	return arcs.NewLine(p.Coeff(MX), p.Coeff(MY), p.ConstantValue()), true
}

// AsCircle interprets p as the equation of a real circle of positive
// radius. Fails for other conics, for point circles and for circles with
// negative squared radius.
func (p Polynomial) AsCircle() (arcs.Circle, bool) {
	if p.Degree() != 2 || p.Coeff(MXY).Sign() != 0 {
		return arcs.Circle{}, false
	}
	k := p.Coeff(MXX)
	if k.Sign() == 0 || k.Cmp(p.Coeff(MYY)) != 0 {
		return arcs.Circle{}, false
	}
	q := p.Divide(k) // now x² + y² + d x + e y + f
	half := arcs.Q(-1, 2)
	cx := new(big.Rat).Mul(q.Coeff(MX), half)
	cy := new(big.Rat).Mul(q.Coeff(MY), half)
	r2 := new(big.Rat).Mul(cx, cx)
	r2.Add(r2, new(big.Rat).Mul(cy, cy))
	r2.Sub(r2, q.ConstantValue())
	if r2.Sign() <= 0 {
		return arcs.Circle{}, false
	}
	return arcs.NewCircle(arcs.PQ(cx, cy), r2), true
}

// String creates a readable string representation for a Polynomial.
func (p Polynomial) String() string {
	return p.TraceString()
}

// TraceString creates a string representation for a Polynomial, with
// terms ordered by degree.
func (p Polynomial) TraceString() string {
	var buffer bytes.Buffer
	first := true
	p.Each(func(m Monomial, scale *big.Rat) {
		if first {
			if scale.Sign() < 0 {
				buffer.WriteString("-")
			}
		} else if scale.Sign() < 0 {
			buffer.WriteString(" - ")
		} else {
			buffer.WriteString(" + ")
		}
		first = false
		abs := new(big.Rat).Abs(scale)
		if m == One || abs.Cmp(arcs.QInt(1)) != 0 {
			buffer.WriteString(abs.RatString())
		}
		buffer.WriteString(m.String())
	})
	if first {
		return "0"
	}
	return buffer.String()
}
