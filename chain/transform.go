package chain

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/arcs"
)

// Transformed returns a copy of path with every knot mapped by m. m has to
// be a similarity. Bulges keep their value, except for transforms with a
// reflection, which turn counterclockwise joins into clockwise ones.
func (path *Path) Transformed(m arcs.AT) (*Path, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	if !m.IsSimilarity() {
		return nil, fmt.Errorf("%w: %v", ErrNotSimilarity, m)
	}
	flip := m.Determinant().Sign() < 0
	t := newSkeletonPath(nil)
	for i := 0; i < path.N(); i++ {
		t.Knot(path.Z(i).Transformed(m))
		j := path.JoinAt(i)
		if !j.IsLine() && flip {
			j = Join{Bulge: new(big.Rat).Neg(j.Bulge)}
		}
		t.SetJoin(i, j)
	}
	t.cycle = path.cycle
	tracer().Debugf("transformed path %s", AsString(t))
	return t, nil
}
