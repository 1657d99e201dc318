package circular

import (
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arcs"
)

// boundingBox returns a box guaranteed to contain the curve. Boxes of
// unbounded line arcs extend to infinity in the direction of the open ends.
func (k *Kernel) boundingBox(c Curve) polyclip.Rectangle {
	c = k.normalize(c)
	var cont polyclip.Contour
	switch c.kind {
	case KindCircularArc:
		a := c.arc
		cont = addPointBox(cont, a.source)
		cont = addPointBox(cont, a.target)
		for _, p := range a.critical {
			if a.full || a.inInterior(p) {
				cont = addPointBox(cont, p)
			}
		}
	case KindLineArc:
		a := c.larc
		d := a.direction()
		if a.srcInf {
			cont = append(cont, farPoints(a.support, arcs.Origin.Sub(d))...)
		} else {
			cont = addPointBox(cont, a.source)
		}
		if a.tgtInf {
			cont = append(cont, farPoints(a.support, d)...)
		} else {
			cont = addPointBox(cont, a.target)
		}
	default:
		panic(unhandledKind(c))
	}
	return cont.BoundingBox()
}

func addPointBox(cont polyclip.Contour, p Point) polyclip.Contour {
	box := p.BoundingBox()
	return append(cont, box.Min, box.Max)
}

// farPoints span the end at infinity of line l in direction d. Coordinates
// in which l does not move stay finite.
func farPoints(l arcs.Line, d arcs.Pair) []polyclip.Point {
	x0, y0 := l.Point().F()
	far := func(s int, fixed float64) (float64, float64) {
		switch {
		case s > 0:
			return math.Inf(1), math.Inf(1)
		case s < 0:
			return math.Inf(-1), math.Inf(-1)
		}
		return arcs.Widen(fixed)
	}
	xlo, xhi := far(d.X().Sign(), x0)
	ylo, yhi := far(d.Y().Sign(), y0)
	return []polyclip.Point{{X: xlo, Y: ylo}, {X: xhi, Y: yhi}}
}
