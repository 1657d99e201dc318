package chain

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/arcs"
)

func newSkeletonPath(points []arcs.Pair) *Path {
	path := &Path{}
	path.points = make([]arcs.Pair, len(points), len(points)*2)
	copy(path.points, points)
	path.joins = make([]Join, len(points), len(points)*2)
	return path
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path of three knots, which are
// connected by a straight line, a half circle and a straight line again.
//
//	path := Nullpath().Knot(arcs.P(0,0)).Line().Knot(arcs.P(4,0)).Bulge(arcs.QInt(1)).
//	    Knot(arcs.P(4,4)).Line().Cycle()
//
// Knots without an explicit join are connected by a straight line.
func Nullpath() *Path {
	return newSkeletonPath(nil)
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. The join after the last knot connects it to
// the first knot. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds a knot to a path. Part of builder functionality.
func (path *Path) Knot(p arcs.Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// Line connects the last knot to the next one with a straight line.
// Part of builder functionality.
func (path *Path) Line() *Path {
	if path.N() == 0 {
		panic("cannot add line to empty path")
	}
	return path.SetJoin(path.N()-1, lineJoin)
}

// Bulge connects the last knot to the next one with a circular arc of the
// given bulge. A bulge of 0 is a straight line.
// Part of builder functionality.
func (path *Path) Bulge(b *big.Rat) *Path {
	if path.N() == 0 {
		panic("cannot add arc to empty path")
	}
	if b.Sign() == 0 {
		return path.Line()
	}
	return path.SetJoin(path.N()-1, Join{Bulge: new(big.Rat).Set(b)})
}

// AppendSubpath concatenates two open paths. If the last knot of path
// equals the first knot of sp, they are merged into one.
// Part of builder functionality.
func (path *Path) AppendSubpath(sp *Path) *Path {
	if path.IsCycle() || sp.IsCycle() {
		panic("cannot append cyclic paths")
	}
	from := 0
	if path.N() > 0 && sp.N() > 0 && path.Z(path.N()-1).Equal(sp.Z(0)) {
		tracer().Debugf("merging terminal knot %v", sp.Z(0))
		from = 1
		path.SetJoin(path.N()-1, sp.JoinAt(0))
	}
	for i := from; i < sp.N(); i++ {
		path.Knot(sp.Z(i))
		path.SetJoin(path.N()-1, sp.JoinAt(i))
	}
	return path
}

// SetJoin is a property setter for the join from knot i to knot i+1.
func (path *Path) SetJoin(i int, j Join) *Path {
	path.joins = extendJ(path.joins, i)
	path.joins[i] = j
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) arcs.Pair {
	if i < 0 || i >= path.N() {
		i = i % path.N()
		if i < 0 {
			i += path.N()
		}
	}
	return path.points[i]
}

// JoinAt returns the join from knot i to knot i+1.
func (path *Path) JoinAt(i int) Join {
	if i < 0 || i >= path.N() {
		panic(fmt.Sprintf("join index %d out of range for path of length %d", i, path.N()))
	}
	if i >= len(path.joins) {
		return lineJoin
	}
	return path.joins[i]
}

// Extend a slice of joins to make room for index i.
// Will do nothing if the slice is already large enough.
func extendJ(arr []Join, i int) []Join {
	if l := len(arr); i >= l {
		arr = append(arr, make([]Join, i-l+1)...)
	}
	return arr
}
