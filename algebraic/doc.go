// Package algebraic is an exact root kernel for systems of two bivariate
// equations of degree at most 2, i.e. for intersections of circles and lines.
/*

Solutions of such systems have coordinates of the form a + b√c with rational
a, b and c (type RootOf2), where both coordinates of a solution share the
radicand c. Signs and comparisons of these numbers are decided exactly, by
squaring out the radical where necessary. No decision is ever taken on a
floating point approximation.

Equations are given as polynomials of package polyn:

   k := algebraic.NewRationalKernel()
   c1 := polyn.CirclePolynomial(arcs.NewCircle(arcs.P(0, 0), arcs.QInt(4)))
   l := polyn.LinePolynomial(arcs.Horizontal(arcs.QInt(1)))
   sols, err := k.Solve(c1, l)   // (-√3,1), (√3,1)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package algebraic

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'algebraic'
func tracer() tracing.Trace {
	return tracing.Select("algebraic")
}
