// Package circular is an exact curved kernel for circles, lines and their
// bounded pieces.
/*

The kernel represents circular arcs and line arcs (segments, rays and full
lines) with endpoints which are either rational points or exact algebraic
roots (see package algebraic), and decides predicates on them exactly:
ordering of points, vertical ordering of curves at a point and to the right
of it, containment, overlap and intersection. It decomposes arcs into
x-monotone pieces suitable for a plane sweep.

Clients create a kernel and use its operation objects:

   k := circular.New()
   c := k.Construction()
   a, err := c.ArcThroughPoints(arcs.P(-1, 0), arcs.P(0, 1), arcs.P(1, 0))
   pieces := k.Decomposition().MakeXMonotone(circular.FromArc(a))

Every value of this package is immutable. Values are small handles to shared
representations; splitting or cutting an arc yields new values.

Preconditions of predicates (e.g., a split point which is not in the
interior of an arc) are programming errors and result in a panic. Invalid
input to constructors (e.g., points not on a circle) is reported by an
error.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package circular

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'circular'
func tracer() tracing.Trace {
	return tracing.Select("circular")
}
