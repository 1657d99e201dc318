// Package chain deals with MetaPost-like paths of straight and circular
// joins between rational knots.
/*

A chain is a polyline in which every join is either a straight line or a
circular arc given by its bulge. The bulge of an arc is the tangent of a
quarter of its included angle; a bulge of 1 is a half circle, positive
bulges turn counterclockwise and negative ones clockwise. This is the
representation of arcs in many CAD exchange formats.

Usage

Clients build a chain with a kind of builder pattern (package qualifiers
omitted for clarity and brevity):

   Nullpath().Knot(P(0,0)).Line().Knot(P(4,0)).Bulge(QInt(1)).Knot(P(4,4)).Line().Cycle()

which in MetaPost-ish notation reads

   (0,0) -- (4,0) .. {bulge 1} .. (4,4) -- cycle

A chain is turned into curves of the curved kernel (package circular) by

   curves, err := path.Curves(circular.New())

MonotoneCurves additionally splits the arcs into x-monotone pieces, ready
for a sweep.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package chain

import (
	"fmt"
	"strings"
)

// AsString returns a path as a (debugging) string, in one line.
//
// Example, a square with its right side bulged out:
//
//	(0,0) -- (4,0) .. {bulge 1} .. (4,4) -- (0,4) -- cycle
//
// The format is not fully equivalent to MetaPost's, but close.
func AsString(path *Path) string {
	var b strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			b.WriteString(joinString(path.JoinAt(i - 1)))
		}
		b.WriteString(path.Z(i).String())
	}
	if path.IsCycle() && path.N() > 0 {
		b.WriteString(joinString(path.JoinAt(path.N() - 1)))
		b.WriteString("cycle")
	}
	return b.String()
}

func joinString(j Join) string {
	if j.IsLine() {
		return " -- "
	}
	return fmt.Sprintf(" .. {bulge %s} .. ", j.Bulge.RatString())
}
