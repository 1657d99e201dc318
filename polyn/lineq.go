package polyn

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

var (
	// ErrEmptyEquationList indicates no equations were supplied to AddEqs.
	ErrEmptyEquationList = errors.New("empty list of equations")
	// ErrInconsistentEquation indicates an equation reduced to 0 = c with c != 0.
	ErrInconsistentEquation = errors.New("inconsistent equation")
	// ErrNotLinear indicates an equation with terms of degree 2.
	ErrNotLinear = errors.New("equation is not linear")
)

/*
----------------------------------------------------------------------

Objects and interfaces for solving systems of linear equations (LEQ) in the
unknowns x and y, exactly.

Inspired by Donald E. Knuth's MetaFont and John Hobby's MetaPost: equations
are added incrementally, every new equation is solved for its unknown of
largest coefficient and substituted into the dependent unknowns known so
far.
*/

// EquationMap maps a dependent unknown to its right hand side.
type EquationMap map[Monomial]Polynomial

// LinEqSolver is a container for linear equations in x and y. Used to
// incrementally solve systems of linear equations.
type LinEqSolver struct {
	dependents EquationMap           // dependent unknown m has right hand side dependents[m]
	solved     map[Monomial]*big.Rat // m => rational
}

// NewLinEqSolver creates a new system of linear equations.
func NewLinEqSolver() *LinEqSolver {
	leq := LinEqSolver{
		dependents: make(EquationMap),
		solved:     make(map[Monomial]*big.Rat),
	}
	return &leq
}

// Adapter helper to keep deterministic ascending iteration over equation maps.
// Keys are snapshotted so callbacks may remove entries from m safely.
func forEachEquationAscending(m EquationMap, fn func(Monomial, Polynomial) error) error {
	keys := make([]Monomial, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return monomialComparator(keys[i], keys[j]) < 0
	})
	for _, i := range keys {
		v, ok := m[i]
		if !ok { // key may have been removed by callback
			continue
		}
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// AddEq adds a new equation 0 = p (p is Polynomial) to a system of linear
// equations.
func (leq *LinEqSolver) AddEq(p Polynomial) (*LinEqSolver, error) {
	return leq.addEq(p)
}

// AddEqs adds a set of linear equations to the LEQ system.
func (leq *LinEqSolver) AddEqs(plist []Polynomial) (*LinEqSolver, error) {
	if len(plist) == 0 {
		return leq, ErrEmptyEquationList
	}
	for i, p := range plist {
		if _, err := leq.addEq(p); err != nil {
			return leq, fmt.Errorf("equation #%d: %w", i, err)
		}
	}
	return leq, nil
}

func (leq *LinEqSolver) addEq(p Polynomial) (*LinEqSolver, error) {
	p = p.Zap()
	T().Debugf("new equation 0 = %s", p)
	if p.Degree() > 1 {
		return leq, fmt.Errorf("%w: 0 = %s", ErrNotLinear, p)
	}
	p = leq.substituteSolved(p)
	p = leq.substituteDependents(p)
	if coeff, isconst := p.IsConstant(); isconst {
		if coeff.Sign() != 0 {
			return leq, fmt.Errorf("%w: 0 = %s (off by %s)", ErrInconsistentEquation, p, coeff.RatString())
		}
		T().Debugf("redundant equation")
		return leq, nil
	}
	i := p.maxCoeff()
	rhs, err := activateEquationTowards(i, p) // now  x.i = -1/a * p(...)
	if err != nil {
		return leq, err
	}
	// substitute x.i in every dependent x.j = q(j)
	D := make(EquationMap)
	_ = forEachEquationAscending(leq.dependents, func(j Monomial, q Polynomial) error {
		D[j] = subst(i, rhs, q)
		return nil
	})
	D[i] = rhs
	// split solved x off to S
	for {
		moved := false
		_ = forEachEquationAscending(D, func(j Monomial, q Polynomial) error {
			if c, isconst := q.IsConstant(); isconst {
				leq.solved[j] = new(big.Rat).Set(c)
				T().Infof("## %s = %s", j, c.RatString())
				delete(D, j)
				moved = true
			}
			return nil
		})
		if !moved {
			break
		}
		_ = forEachEquationAscending(D, func(j Monomial, q Polynomial) error {
			D[j] = leq.substituteSolved(q)
			return nil
		})
	}
	leq.dependents = D
	return leq, nil
}

// Find the unknown with the largest absolute coefficient in p.
func (p Polynomial) maxCoeff() Monomial {
	var largest *big.Rat
	var at Monomial
	p.Each(func(m Monomial, c *big.Rat) {
		if m == One {
			return
		}
		a := new(big.Rat).Abs(c)
		if largest == nil || a.Cmp(largest) > 0 {
			largest, at = a, m
		}
	})
	return at
}

// Transform an equation 0 = p(a x.i) to make x.i the dependent variable, i.e.
// x.i = -1/a * p(...).
func activateEquationTowards(i Monomial, p Polynomial) (Polynomial, error) {
	coeff := p.Coeff(i)
	if coeff.Sign() == 0 {
		return Polynomial{}, fmt.Errorf("cannot activate equation towards %s: zero coefficient", i)
	}
	p = p.SetTerm(i, new(big.Rat)) // remove term x.i from RHS(p)
	return p.Scale(new(big.Rat).Neg(new(big.Rat).Inv(coeff))), nil
}

// Substitute x.i = p(i) for x.i in q.
func subst(i Monomial, p Polynomial, q Polynomial) Polynomial {
	ai := q.Coeff(i)
	if ai.Sign() == 0 {
		return q
	}
	q = q.SetTerm(i, new(big.Rat))
	return q.Add(p.Scale(ai))
}

// In an equation, substitute all unknowns which are already known.
func (leq *LinEqSolver) substituteSolved(p Polynomial) Polynomial {
	for m, c := range leq.solved {
		coeff := p.Coeff(m)
		if coeff.Sign() == 0 {
			continue
		}
		k := new(big.Rat).Mul(coeff, c)
		p = p.SetTerm(m, new(big.Rat))
		p = p.SetTerm(One, k.Add(k, p.ConstantValue()))
	}
	return p.Zap()
}

// In an equation, substitute all dependent unknowns.
func (leq *LinEqSolver) substituteDependents(p Polynomial) Polynomial {
	_ = forEachEquationAscending(leq.dependents, func(m Monomial, rhs Polynomial) error {
		p = subst(m, rhs, p)
		return nil
	})
	return p.Zap()
}

// IsSolved checks if unknown m (MX or MY) is solved.
func (leq *LinEqSolver) IsSolved(m Monomial) bool {
	_, ok := leq.solved[m]
	return ok
}

// Value returns the value of unknown m, if it is solved.
func (leq *LinEqSolver) Value(m Monomial) (*big.Rat, bool) {
	c, ok := leq.solved[m]
	if !ok {
		return nil, false
	}
	return new(big.Rat).Set(c), true
}

// Solution returns x and y, if both are solved.
func (leq *LinEqSolver) Solution() (*big.Rat, *big.Rat, bool) {
	x, okx := leq.Value(MX)
	y, oky := leq.Value(MY)
	if !okx || !oky {
		return nil, nil, false
	}
	return x, y, true
}

// Dependents returns the right hand side for a dependent unknown m.
func (leq *LinEqSolver) Dependents(m Monomial) (Polynomial, bool) {
	p, ok := leq.dependents[m]
	return p, ok
}

// String lists the dependent and solved unknowns.
func (leq *LinEqSolver) String() string {
	var b strings.Builder
	_ = forEachEquationAscending(leq.dependents, func(m Monomial, p Polynomial) error {
		fmt.Fprintf(&b, "%s = %s; ", m, p)
		return nil
	})
	for _, m := range []Monomial{MX, MY} {
		if c, ok := leq.solved[m]; ok {
			fmt.Fprintf(&b, "%s = %s; ", m, c.RatString())
		}
	}
	return strings.TrimSuffix(b.String(), " ")
}

// SolveLinearSystem solves a1 x + b1 y + c1 = 0, a2 x + b2 y + c2 = 0.
// Returns ok=false if the system is underdetermined, and
// ErrInconsistentEquation if it has no solution.
func SolveLinearSystem(p1, p2 Polynomial) (x, y *big.Rat, ok bool, err error) {
	leq := NewLinEqSolver()
	if _, err = leq.AddEqs([]Polynomial{p1, p2}); err != nil {
		return nil, nil, false, err
	}
	x, y, ok = leq.Solution()
	return
}
