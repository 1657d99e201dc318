package circular

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/polyn"
)

// Intersect computes the intersection of two curves: isolated points with
// their multiplicity, and overlapping parts of curves with a common support.
// Results are ordered by their (minimum) point, xy-lexicographically.
// Overlaps are reported counterclockwise for circular arcs and
// xy-increasing for line arcs, regardless of the orientation of the
// arguments; thus Intersect(c1, c2) equals Intersect(c2, c1).
//
// Curves which do not meet yield an empty slice. Degenerate circles and
// lines yield algebraic.ErrDegenerate.
func (dec decomposition) Intersect(c1, c2 Curve) ([]Intersection, error) {
	return dec.k.intersect(c1, c2)
}

func checkCurve(c Curve) error {
	switch c.kind {
	case KindCircle:
		return checkCircle(c.circle)
	case KindLine:
		return checkLine(c.line)
	case KindCircularArc, KindLineArc:
		return nil
	}
	panic(unhandledKind(c))
}

func (k *Kernel) intersect(c1, c2 Curve) ([]Intersection, error) {
	if err := checkCurve(c1); err != nil {
		return nil, err
	}
	if err := checkCurve(c2); err != nil {
		return nil, err
	}
	c1, c2 = k.normalize(c1), k.normalize(c2)
	if c1.kind == KindCircularArc && c2.kind == KindLineArc {
		c1, c2 = c2, c1 // line arcs first
	}
	if k.boxFilter && !k.boundingBox(c1).Overlaps(k.boundingBox(c2)) {
		tracer().Debugf("bounding boxes of %v and %v are disjoint", c1, c2)
		return []Intersection{}, nil
	}
	if ovs, err := k.overlaps(c1, c2); err != nil || ovs != nil {
		return ovs, err
	}
	sols, err := k.ak.Solve(supportEquation(c1), supportEquation(c2))
	if err != nil {
		return nil, err
	}
	result := treemap.NewWith(pointComparator)
	for _, sol := range sols {
		p := NewPoint(sol.Root)
		if k.onArc(c1, p) && k.onArc(c2, p) {
			result.Put(p, Intersection{Point: p, Multiplicity: sol.Multiplicity})
		}
	}
	return collect(nil, result), nil
}

// supportEquation returns the equation of the support of an arc.
func supportEquation(c Curve) polyn.Polynomial {
	switch c.kind {
	case KindCircularArc:
		return c.arc.eq
	case KindLineArc:
		return c.larc.eq
	}
	panic(unhandledKind(c))
}

// onArc checks if a point on the support of an arc is on the arc.
func (k *Kernel) onArc(c Curve, p Point) bool {
	switch c.kind {
	case KindCircularArc:
		return c.arc.contains(p)
	case KindLineArc:
		return c.larc.contains(p)
	}
	panic(unhandledKind(c))
}

func collect(first []Intersection, m *treemap.Map) []Intersection {
	result := make([]Intersection, 0, len(first)+m.Size())
	result = append(result, first...)
	for _, v := range m.Values() {
		result = append(result, v.(Intersection))
	}
	return result
}

// overlaps computes the intersection of two normalized curves with a common
// support. It returns nil for curves with different supports.
func (k *Kernel) overlaps(c1, c2 Curve) ([]Intersection, error) {
	switch {
	case c1.kind == KindCircularArc && c2.kind == KindCircularArc:
		if !c1.arc.support.Equal(c2.arc.support) {
			return nil, nil
		}
		return k.arcOverlap(c1.arc, c2.arc), nil
	case c1.kind == KindLineArc && c2.kind == KindLineArc:
		if !c1.larc.support.Equal(c2.larc.support) {
			return nil, nil
		}
		return k.lineOverlap(c1.larc, c2.larc), nil
	case c1.kind == KindCircularArc && c2.kind == KindLineArc,
		c1.kind == KindLineArc && c2.kind == KindCircularArc:
		return nil, nil
	}
	panic(unhandledPair(c1, c2))
}

// arcOverlap intersects two arcs on the same circle. The common part of two
// circular intervals A = [a0,a1] and B = [b0,b1] consists of at most two
// pieces, one starting at b0 (if b0 is on A) and one starting at a0 (if a0 is
// on B).
func (k *Kernel) arcOverlap(a, b CircularArc) []Intersection {
	c := a.support
	result := treemap.NewWith(pointComparator)
	put := func(arc CircularArc) {
		key := arc.source
		if arc.target.compareXY(key) == arcs.Smaller {
			key = arc.target
		}
		result.Put(key, Intersection{Point: key, Overlap: FromArc(arc), overlap: true})
	}
	switch {
	case a.full && b.full:
		put(k.fullCircle(c))
		return collect(nil, result)
	case a.full:
		s, t := b.ccw()
		put(newCircularArc(k.ak, c, s, t, arcs.CounterClockwise))
		return collect(nil, result)
	case b.full:
		s, t := a.ccw()
		put(newCircularArc(k.ak, c, s, t, arcs.CounterClockwise))
		return collect(nil, result)
	}
	a0, a1 := a.ccw()
	b0, b1 := b.ccw()
	piece := func(start Point) {
		end := a1
		if ccwBefore(c, start, b1, a1) {
			end = b1
		}
		if end.Equal(start) {
			result.Put(start, Intersection{Point: start})
			return
		}
		put(newCircularArc(k.ak, c, start, end, arcs.CounterClockwise))
	}
	if a.contains(b0) {
		piece(b0)
	}
	if !a0.Equal(b0) && b.contains(a0) {
		piece(a0)
	}
	tracer().Debugf("overlap of %v and %v: %d parts", a, b, result.Size())
	return collect(nil, result)
}

// lineOverlap intersects two line arcs on the same line.
func (k *Kernel) lineOverlap(a, b LineArc) []Intersection {
	l := a.support
	if d := l.Direction(); d.X().Sign() < 0 || (d.X().Sign() == 0 && d.Y().Sign() < 0) {
		l = l.Opposite()
	}
	alo, aloInf := a.minEnd()
	blo, bloInf := b.minEnd()
	ahi, ahiInf := a.maxEnd()
	bhi, bhiInf := b.maxEnd()
	lo, loInf := alo, aloInf
	if aloInf || (!bloInf && blo.compareXY(alo) == arcs.Larger) {
		lo, loInf = blo, bloInf
	}
	hi, hiInf := ahi, ahiInf
	if ahiInf || (!bhiInf && bhi.compareXY(ahi) == arcs.Smaller) {
		hi, hiInf = bhi, bhiInf
	}
	result := treemap.NewWith(pointComparator)
	if loInf {
		ov := Intersection{Overlap: FromLineArc(newLineArc(l, Point{}, hi, true, hiInf)), overlap: true}
		return collect([]Intersection{ov}, result)
	}
	if !hiInf {
		switch lo.compareXY(hi) {
		case arcs.Larger:
			return collect(nil, result)
		case arcs.Equal:
			result.Put(lo, Intersection{Point: lo})
			return collect(nil, result)
		}
	}
	ov := newLineArc(l, lo, hi, false, hiInf)
	result.Put(lo, Intersection{Point: lo, Overlap: FromLineArc(ov), overlap: true})
	return collect(nil, result)
}
