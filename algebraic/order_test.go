package algebraic

import (
	"testing"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/polyn"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedRoots collects rational points, roots from solving several systems and
// hand-made roots whose coordinates use different radicands for the same value.
func mixedRoots(t *testing.T, k RationalKernel) []Root {
	t.Helper()
	line := func(l arcs.Line) polyn.Polynomial { return polyn.LinePolynomial(l) }
	systems := [][2]polyn.Polynomial{
		{circle(0, 0, 25), circle(6, 0, 25)},                    // (3,∓4)
		{circle(0, 0, 4), line(arcs.Horizontal(arcs.QInt(1)))},  // (∓√3,1)
		{circle(0, 0, 4), circle(1, 0, 4)},                      // (1/2,∓√15/2)
		{circle(0, 0, 4), circle(1, 1, 4)},                      // ((1±√7)/2,(1∓√7)/2)
		{circle(0, 0, 13), line(arcs.Horizontal(arcs.QInt(1)))}, // (∓√12,1)
		{circle(0, 0, 1), circle(2, 0, 1)},                      // (1,0) tangent
		{line(arcs.LineThrough(arcs.P(0, 0), arcs.P(1, 1))), line(arcs.Vertical(arcs.QInt(3)))},
	}
	var roots []Root
	for i, sys := range systems {
		sols, err := k.Solve(sys[0], sys[1])
		require.NoError(t, err, "system #%d", i)
		require.NotEmpty(t, sols, "system #%d", i)
		for _, s := range sols {
			roots = append(roots, s.Root)
		}
	}
	for _, p := range []arcs.Pair{arcs.P(0, 0), arcs.P(3, 4), arcs.P(-2, 1), arcs.P(1, 0),
		arcs.PQ(arcs.Q(1, 2), arcs.QInt(2)), arcs.P(3, 3)} {
		roots = append(roots, RationalRoot(p))
	}
	sqrt12 := NewRootOf2(arcs.QInt(0), arcs.QInt(1), arcs.QInt(12))
	twoSqrt3 := NewRootOf2(arcs.QInt(0), arcs.QInt(2), arcs.QInt(3))
	roots = append(roots,
		NewRoot(sqrt12, Rational(arcs.QInt(1))),
		NewRoot(twoSqrt3.Neg(), Rational(arcs.QInt(1))),
		NewRoot(Rational(arcs.QInt(1)), twoSqrt3),
		NewRoot(NewRootOf2(arcs.QInt(1), arcs.QInt(1), arcs.QInt(2)), NewRootOf2(arcs.QInt(0), arcs.QInt(-1), arcs.QInt(2))),
	)
	return roots
}

func TestOrderProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := NewRationalKernel()
	roots := mixedRoots(t, k)
	for _, order := range []struct {
		name  string
		cmp   func(Root, Root) arcs.Comparison
		coord func(Root) float64
	}{
		{"x", k.CompareX, func(r Root) float64 { x, _ := r.Float64(); return x }},
		{"y", k.CompareY, func(r Root) float64 { _, y := r.Float64(); return y }},
		{"xy", k.CompareXY, nil},
	} {
		for i, a := range roots {
			assert.Equal(t, arcs.Equal, order.cmp(a, a), "%s: reflexivity of #%d %v", order.name, i, a)
			for j, b := range roots {
				ab := order.cmp(a, b)
				assert.Equal(t, ab, order.cmp(b, a).Reverse(),
					"%s: antisymmetry of #%d %v and #%d %v", order.name, i, a, j, b)
				if order.coord != nil {
					if d := order.coord(a) - order.coord(b); d > 1e-9 {
						assert.Equal(t, arcs.Larger, ab, "%s: #%d %v vs #%d %v", order.name, i, a, j, b)
					} else if d < -1e-9 {
						assert.Equal(t, arcs.Smaller, ab, "%s: #%d %v vs #%d %v", order.name, i, a, j, b)
					}
				}
				for l, c := range roots {
					bc, ac := order.cmp(b, c), order.cmp(a, c)
					if ab != arcs.Larger && bc != arcs.Larger {
						assert.NotEqual(t, arcs.Larger, ac,
							"%s: transitivity of #%d, #%d, #%d", order.name, i, j, l)
					}
					if ab == arcs.Equal && bc == arcs.Equal {
						assert.Equal(t, arcs.Equal, ac,
							"%s: transitivity of equality of #%d, #%d, #%d", order.name, i, j, l)
					}
				}
			}
		}
	}
}

func TestMixedRepresentationEquality(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := NewRationalKernel()
	one := Rational(arcs.QInt(1))
	sqrt12 := NewRoot(NewRootOf2(arcs.QInt(0), arcs.QInt(1), arcs.QInt(12)), one)
	twoSqrt3 := NewRoot(NewRootOf2(arcs.QInt(0), arcs.QInt(2), arcs.QInt(3)), one)
	assert.True(t, sqrt12.Equal(twoSqrt3))
	assert.Equal(t, arcs.Equal, k.CompareXY(sqrt12, twoSqrt3))
	// solving yields the same point, whatever its representation
	sols, err := k.Solve(circle(0, 0, 13), polyn.LinePolynomial(arcs.Horizontal(arcs.QInt(1))))
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assert.True(t, sols[1].Root.Equal(sqrt12))
	assert.True(t, sols[1].Root.Equal(twoSqrt3))
	assert.Equal(t, arcs.Smaller, k.CompareX(sols[0].Root, twoSqrt3))
	// rational points equal roots from solving
	sols, err = k.Solve(circle(0, 0, 25), circle(6, 0, 25))
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assert.Equal(t, arcs.Equal, k.CompareXY(RationalRoot(arcs.P(3, 4)), sols[1].Root))
	assert.Equal(t, arcs.Equal, k.CompareXY(sols[0].Root, RationalRoot(arcs.P(3, -4))))
	// a perfect square radicand collapses to a rational
	r := NewRoot(NewRootOf2(arcs.QInt(1), arcs.QInt(1), arcs.QInt(4)), one)
	assert.True(t, r.IsRational())
	assert.True(t, r.Equal(RationalRoot(arcs.P(3, 1))))
	// irrational and rational values differ
	assert.Equal(t, arcs.Larger, k.CompareX(sqrt12, RationalRoot(arcs.P(3, 0))))
	assert.Equal(t, arcs.Smaller, k.CompareX(sqrt12, RationalRoot(arcs.P(4, 0))))
}
