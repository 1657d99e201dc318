package algebraic

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/arcs"
)

// RootOf2 is an exact real number a + b√c with rationals a, b, c and c ≥ 0.
// It is the number type of solutions of degree-2 systems: every coordinate of
// an intersection of circles and lines is of this form.
//
// RootOf2 values are normalized on construction: if b = 0, c = 0 or c is the
// square of a rational, the value is folded into a plain rational with
// b = c = 0. Values are immutable.
type RootOf2 struct {
	a, b, c *big.Rat
}

// NewRootOf2 creates a + b√c. Arguments are copied.
// Panics if c is negative.
func NewRootOf2(a, b, c *big.Rat) RootOf2 {
	if c.Sign() < 0 {
		panic(fmt.Sprintf("algebraic: negative radicand %s", c.RatString()))
	}
	r := RootOf2{a: new(big.Rat).Set(a), b: new(big.Rat).Set(b), c: new(big.Rat).Set(c)}
	if r.b.Sign() == 0 || r.c.Sign() == 0 {
		return Rational(a)
	}
	if s, ok := SqrtRat(c); ok {
		v := new(big.Rat).Mul(b, s)
		return Rational(v.Add(v, a))
	}
	return r
}

// Rational creates a RootOf2 from a rational.
func Rational(a *big.Rat) RootOf2 {
	return RootOf2{a: new(big.Rat).Set(a), b: new(big.Rat), c: new(big.Rat)}
}

// SqrtRat returns √r if it is rational.
func SqrtRat(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	num, ok := sqrtInt(r.Num())
	if !ok {
		return nil, false
	}
	den, ok := sqrtInt(r.Denom())
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func sqrtInt(n *big.Int) (*big.Int, bool) {
	s := new(big.Int).Sqrt(n)
	return s, new(big.Int).Mul(s, s).Cmp(n) == 0
}

func orZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}

// A is the rational part. Callers must not modify the result.
func (r RootOf2) A() *big.Rat { return orZero(r.a) }

// B is the coefficient of the square root. Callers must not modify the result.
func (r RootOf2) B() *big.Rat { return orZero(r.b) }

// C is the radicand. Callers must not modify the result.
func (r RootOf2) C() *big.Rat { return orZero(r.c) }

// IsRational is true if r has no irrational part.
func (r RootOf2) IsRational() bool {
	return r.B().Sign() == 0
}

// Rat returns r as a rational, if it is one.
func (r RootOf2) Rat() (*big.Rat, bool) {
	if !r.IsRational() {
		return nil, false
	}
	return new(big.Rat).Set(r.A()), true
}

// Sign returns the exact sign of a + b√c.
func (r RootOf2) Sign() arcs.Sign {
	sa, sb := arcs.SignOf(r.A()), arcs.SignOf(r.B())
	if sb == arcs.Zero || r.C().Sign() == 0 {
		return sa
	}
	if sa == arcs.Zero {
		return sb
	}
	if sa == sb {
		return sa
	}
	// opposite signs: compare a² with b²c
	a2 := new(big.Rat).Mul(r.A(), r.A())
	b2c := new(big.Rat).Mul(r.B(), r.B())
	b2c.Mul(b2c, r.C())
	return sa * arcs.Sign(a2.Cmp(b2c))
}

// Compare compares r with s exactly. r and s may have different radicands.
func (r RootOf2) Compare(s RootOf2) arcs.Comparison {
	if r.IsRational() && s.IsRational() {
		return arcs.Compare(r.A().Cmp(s.A()))
	}
	if r.sameRadicand(s) {
		return arcs.Comparison(r.Sub(s).Sign())
	}
	// r - s = u - v with u = (a1-a2) + b1√c1 and v = b2√c2
	d := new(big.Rat).Sub(r.A(), s.A())
	u := NewRootOf2(d, r.B(), r.C())
	su, sv := u.Sign(), arcs.SignOf(s.B())
	if su != sv {
		return arcs.Compare(int(su) - int(sv))
	}
	if su == arcs.Zero {
		return arcs.Equal
	}
	// equal signs: sign(u-v) = su * sign(u² - v²)
	// u² - v² = d² + b1²c1 - b2²c2 + 2·d·b1·√c1
	rat := new(big.Rat).Mul(d, d)
	t := new(big.Rat).Mul(r.B(), r.B())
	rat.Add(rat, t.Mul(t, r.C()))
	t = new(big.Rat).Mul(s.B(), s.B())
	rat.Sub(rat, t.Mul(t, s.C()))
	irr := new(big.Rat).Mul(d, r.B())
	irr.Mul(irr, arcs.QInt(2))
	diff := NewRootOf2(rat, irr, r.C())
	return arcs.Comparison(su * diff.Sign())
}

// Equal is true if r and s denote the same real number.
func (r RootOf2) Equal(s RootOf2) bool {
	return r.Compare(s) == arcs.Equal
}

func (r RootOf2) sameRadicand(s RootOf2) bool {
	return r.IsRational() || s.IsRational() || r.C().Cmp(s.C()) == 0
}

// radicand returns the common radicand of r and s.
// Panics if they have different radicands.
func (r RootOf2) radicand(s RootOf2) *big.Rat {
	if !r.sameRadicand(s) {
		panic(fmt.Sprintf("algebraic: arithmetic on different radicands %s and %s",
			r.C().RatString(), s.C().RatString()))
	}
	if r.IsRational() {
		return s.C()
	}
	return r.C()
}

// Neg returns -r.
func (r RootOf2) Neg() RootOf2 {
	return NewRootOf2(new(big.Rat).Neg(r.A()), new(big.Rat).Neg(r.B()), r.C())
}

// Add returns r + s. Panics if both are irrational with different radicands.
func (r RootOf2) Add(s RootOf2) RootOf2 {
	c := r.radicand(s)
	return NewRootOf2(new(big.Rat).Add(r.A(), s.A()), new(big.Rat).Add(r.B(), s.B()), c)
}

// Sub returns r - s. Panics if both are irrational with different radicands.
func (r RootOf2) Sub(s RootOf2) RootOf2 {
	return r.Add(s.Neg())
}

// Mul returns r ⋅ s. Panics if both are irrational with different radicands.
func (r RootOf2) Mul(s RootOf2) RootOf2 {
	c := r.radicand(s)
	// (a1 + b1√c)(a2 + b2√c) = a1a2 + b1b2c + (a1b2 + a2b1)√c
	a := new(big.Rat).Mul(r.A(), s.A())
	t := new(big.Rat).Mul(r.B(), s.B())
	a.Add(a, t.Mul(t, c))
	b := new(big.Rat).Mul(r.A(), s.B())
	b.Add(b, new(big.Rat).Mul(s.A(), r.B()))
	return NewRootOf2(a, b, c)
}

// MulRat returns r ⋅ q.
func (r RootOf2) MulRat(q *big.Rat) RootOf2 {
	return NewRootOf2(new(big.Rat).Mul(r.A(), q), new(big.Rat).Mul(r.B(), q), r.C())
}

// AddRat returns r + q.
func (r RootOf2) AddRat(q *big.Rat) RootOf2 {
	return NewRootOf2(new(big.Rat).Add(r.A(), q), r.B(), r.C())
}

// Conjugate returns a - b√c.
func (r RootOf2) Conjugate() RootOf2 {
	return NewRootOf2(r.A(), new(big.Rat).Neg(r.B()), r.C())
}

// Div returns r / s. Panics if s is zero or if both are irrational with
// different radicands.
func (r RootOf2) Div(s RootOf2) RootOf2 {
	if s.Sign() == arcs.Zero {
		panic("algebraic: division by zero")
	}
	// r/s = r⋅s' / (s⋅s'), with s' the conjugate of s; s⋅s' is rational
	num := r.Mul(s.Conjugate())
	den := s.Mul(s.Conjugate()).A()
	return num.MulRat(new(big.Rat).Inv(den))
}

// Float64 returns a float approximation of r.
func (r RootOf2) Float64() float64 {
	if r.IsRational() {
		f, _ := r.A().Float64()
		return f
	}
	const prec = 128
	sq := new(big.Float).SetPrec(prec).SetRat(r.C())
	sq.Sqrt(sq)
	v := new(big.Float).SetPrec(prec).SetRat(r.B())
	v.Mul(v, sq)
	v.Add(v, new(big.Float).SetPrec(prec).SetRat(r.A()))
	f, _ := v.Float64()
	return f
}

func (r RootOf2) String() string {
	if r.IsRational() {
		return r.A().RatString()
	}
	if r.A().Sign() == 0 {
		return fmt.Sprintf("%s√%s", r.B().RatString(), r.C().RatString())
	}
	op, b := "+", r.B()
	if b.Sign() < 0 {
		op, b = "-", new(big.Rat).Neg(b)
	}
	return fmt.Sprintf("%s%s%s√%s", r.A().RatString(), op, b.RatString(), r.C().RatString())
}
