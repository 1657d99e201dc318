package chain

import (
	"fmt"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arcs/circular"
)

// Validate checks if a path can be turned into curves.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if n < 2 {
		return fmt.Errorf("%w: path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	if path.IsCycle() && path.points[0].Equal(path.points[n-1]) {
		return ErrCycleHasDuplicateTerminalKnot
	}
	for i := 0; i < path.segmentCount(); i++ {
		j := (i + 1) % n
		if path.points[i].Equal(path.points[j]) {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

// segmentCount is the number of joins which connect two knots.
func (path *Path) segmentCount() int {
	if path.IsCycle() {
		return path.N()
	}
	return path.N() - 1
}

// Curves turns a path into curves of kernel k, one per join, in path order.
func (path *Path) Curves(k *circular.Kernel) ([]circular.Curve, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	cons := k.Construction()
	curves := make([]circular.Curve, 0, path.segmentCount())
	for i := 0; i < path.segmentCount(); i++ {
		from, to, join := path.Z(i), path.Z(i+1), path.JoinAt(i)
		if join.IsLine() {
			la, err := cons.LineArcFromPoints(from, to)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			curves = append(curves, circular.FromLineArc(la))
			continue
		}
		a, err := cons.ArcFromBulge(from, to, join.Bulge)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		curves = append(curves, circular.FromArc(a))
	}
	tracer().Debugf("path %s has %d curves", AsString(path), len(curves))
	return curves, nil
}

// MonotoneCurves turns a path into x-monotone curves of kernel k, in path
// order.
func (path *Path) MonotoneCurves(k *circular.Kernel) ([]circular.Curve, error) {
	curves, err := path.Curves(k)
	if err != nil {
		return nil, err
	}
	dec := k.Decomposition()
	var pieces []circular.Curve
	for _, c := range curves {
		pieces = append(pieces, dec.MakeXMonotone(c)...)
	}
	return pieces, nil
}

// BoundingBox returns a box which is guaranteed to contain the path.
func (path *Path) BoundingBox(k *circular.Kernel) (polyclip.Rectangle, error) {
	curves, err := path.Curves(k)
	if err != nil {
		return polyclip.Rectangle{}, err
	}
	var cont polyclip.Contour
	for _, c := range curves {
		box := k.Construction().BoundingBox(c)
		cont = append(cont, box.Min, box.Max)
	}
	return cont.BoundingBox(), nil
}
