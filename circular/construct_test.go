package circular

import (
	"errors"
	"testing"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	a, err := cons.FullCircle(circ(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, a.IsFullCircle())
	assert.True(t, a.Source().Equal(pt(-1, 0)))
	assert.True(t, a.Target().Equal(pt(-1, 0)))
	assert.Equal(t, arcs.CounterClockwise, a.Orientation())
	assert.False(t, a.IsXMonotone())
	assert.False(t, a.IsYMonotone())
	assert.Panics(t, func() { a.MinVertex() })
	assert.True(t, a.LeftCriticalPoint().Equal(pt(-1, 0)))
	assert.True(t, a.RightCriticalPoint().Equal(pt(1, 0)))
	//
	_, err = cons.FullCircle(circ(0, 0, 0))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestArcThroughPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	upper, lower := halves(t, k)
	assert.True(t, upper.SupportingCircle().Equal(circ(0, 0, 1)))
	assert.Equal(t, arcs.CounterClockwise, upper.Orientation())
	assert.True(t, upper.IsXMonotone())
	assert.False(t, upper.IsYMonotone())
	assert.True(t, upper.OnUpperPart())
	assert.False(t, lower.OnUpperPart())
	assert.True(t, upper.MinVertex().Equal(pt(-1, 0)))
	assert.True(t, upper.MaxVertex().Equal(pt(1, 0)))
	//
	cw := mustArc(k.Construction().ArcThroughPoints(arcs.P(-1, 0), arcs.P(0, 1), arcs.P(1, 0)))
	assert.Equal(t, arcs.Clockwise, cw.Orientation())
	assert.True(t, cw.OnUpperPart())
	//
	_, err := k.Construction().ArcThroughPoints(arcs.P(0, 0), arcs.P(1, 1), arcs.P(2, 2))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestArcFromBulge(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	// half circle below the chord
	a, err := cons.ArcFromBulge(arcs.P(0, 0), arcs.P(2, 0), arcs.QInt(1))
	require.NoError(t, err)
	assert.True(t, a.SupportingCircle().Equal(circ(1, 0, 1)))
	assert.Equal(t, arcs.CounterClockwise, a.Orientation())
	assert.False(t, a.OnUpperPart())
	// half circle above the chord
	a, err = cons.ArcFromBulge(arcs.P(0, 0), arcs.P(2, 0), arcs.QInt(-1))
	require.NoError(t, err)
	assert.Equal(t, arcs.Clockwise, a.Orientation())
	assert.True(t, a.OnUpperPart())
	// sagitta 1, radius 5/2
	a, err = cons.ArcFromBulge(arcs.P(0, 0), arcs.P(4, 0), arcs.Q(1, 2))
	require.NoError(t, err)
	center := arcs.PQ(arcs.QInt(2), arcs.Q(3, 2))
	assert.True(t, a.SupportingCircle().Equal(arcs.NewCircle(center, arcs.Q(25, 4))))
	assert.True(t, a.IsXMonotone())
	assert.False(t, a.OnUpperPart())
	//
	_, err = cons.ArcFromBulge(arcs.P(0, 0), arcs.P(2, 0), arcs.QInt(0))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
	_, err = cons.ArcFromBulge(arcs.P(1, 1), arcs.P(1, 1), arcs.QInt(1))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestArcFromLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	a, err := cons.ArcFromLines(circ(0, 0, 1),
		arcs.Horizontal(arcs.QInt(0)), true,
		arcs.Vertical(arcs.QInt(0)), false)
	require.NoError(t, err)
	assert.True(t, a.Source().Equal(pt(-1, 0)))
	assert.True(t, a.Target().Equal(pt(0, 1)))
	assert.False(t, a.IsXMonotone())
	// tangent delimiters meeting at the same point give a full circle
	a, err = cons.ArcFromLines(circ(0, 0, 1),
		arcs.Vertical(arcs.QInt(-1)), true,
		arcs.Vertical(arcs.QInt(-1)), false)
	require.NoError(t, err)
	assert.True(t, a.IsFullCircle())
	//
	_, err = cons.ArcFromLines(circ(0, 0, 1),
		arcs.Horizontal(arcs.QInt(5)), true,
		arcs.Vertical(arcs.QInt(0)), false)
	assert.True(t, errors.Is(err, ErrNoIntersection))
	_, err = cons.ArcFromLines(circ(0, 0, 0),
		arcs.Horizontal(arcs.QInt(0)), true,
		arcs.Vertical(arcs.QInt(0)), false)
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestArcFromCircles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	// (0,0)/25 meets (6,0)/25 at (3,-4) and (3,4)
	a, err := cons.ArcFromCircles(circ(0, 0, 25), circ(6, 0, 25), true, circ(6, 0, 25), false)
	require.NoError(t, err)
	assert.True(t, a.Source().Equal(pt(3, -4)))
	assert.True(t, a.Target().Equal(pt(3, 4)))
	assert.False(t, a.IsXMonotone()) // passes (5,0)
	assert.True(t, a.IsYMonotone())
	//
	_, err = cons.ArcFromCircles(circ(0, 0, 1), circ(10, 0, 1), true, circ(6, 0, 25), false)
	assert.True(t, errors.Is(err, ErrNoIntersection))
	_, err = cons.ArcFromCircles(circ(0, 0, 1), circ(0, 0, 1), true, circ(6, 0, 25), false)
	assert.True(t, errors.Is(err, algebraic.ErrCoincident))
}

func TestCutArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	upper, _ := halves(t, k)
	cons := k.Construction()
	// (0,2)/1 touches the unit circle at (0,1)
	a, err := cons.CutArc(upper, true, circ(0, 2, 1), true)
	require.NoError(t, err)
	assert.True(t, a.Source().Equal(pt(1, 0)))
	assert.True(t, a.Target().Equal(pt(0, 1)))
	a, err = cons.CutArc(upper, false, circ(0, 2, 1), true)
	require.NoError(t, err)
	assert.True(t, a.Source().Equal(pt(0, 1)))
	assert.True(t, a.Target().Equal(pt(-1, 0)))
	assert.True(t, a.IsYMonotone())
	//
	_, err = cons.CutArc(upper, true, circ(0, -2, 1), true)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = cons.CutArc(upper, true, circ(0, 9, 1), true)
	assert.True(t, errors.Is(err, ErrNoIntersection))
}

func TestArcFromPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	a, err := cons.ArcFromPoints(circ(0, 0, 25), pt(3, 4), pt(-5, 0), arcs.CounterClockwise)
	require.NoError(t, err)
	assert.True(t, a.IsXMonotone())
	assert.True(t, a.OnUpperPart())
	a, err = cons.ArcFromPoints(circ(0, 0, 25), pt(3, 4), pt(-5, 0), arcs.Clockwise)
	require.NoError(t, err)
	assert.False(t, a.IsXMonotone())
	a, err = cons.ArcFromPoints(circ(0, 0, 25), pt(3, 4), pt(3, 4), arcs.Clockwise)
	require.NoError(t, err)
	assert.True(t, a.IsFullCircle())
	//
	_, err = cons.ArcFromPoints(circ(0, 0, 25), pt(3, 3), pt(-5, 0), arcs.Clockwise)
	assert.True(t, errors.Is(err, ErrNotOnCurve))
	_, err = cons.ArcFromPoints(circ(0, 0, 25), pt(3, 4), pt(-5, 0), arcs.Collinear)
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestLineArcFromPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	a, err := cons.LineArcFromPoints(arcs.P(2, 2), arcs.P(0, 0))
	require.NoError(t, err)
	assert.True(t, a.IsSegment())
	assert.True(t, a.Source().Equal(pt(2, 2)))
	assert.True(t, a.MinVertex().Equal(pt(0, 0)))
	assert.True(t, a.MaxVertex().Equal(pt(2, 2)))
	assert.False(t, a.IsVertical())
	//
	s, err := cons.LineArcFromSegment(arcs.Seg(arcs.P(1, 0), arcs.P(1, 5)))
	require.NoError(t, err)
	assert.True(t, s.IsVertical())
	assert.True(t, s.MinVertex().Equal(pt(1, 0)))
	//
	_, err = cons.LineArcFromPoints(arcs.P(1, 1), arcs.P(1, 1))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestLineArcOnLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	l := arcs.Horizontal(arcs.QInt(1))
	a, err := cons.LineArcOnLine(l, pt(3, 1), pt(-1, 1))
	require.NoError(t, err)
	assert.True(t, a.MinVertex().Equal(pt(-1, 1)))
	assert.True(t, a.SupportingLine().Equal(l))
	_, err = cons.LineArcOnLine(l, pt(3, 1), pt(-1, 0))
	assert.True(t, errors.Is(err, ErrNotOnCurve))
	_, err = cons.LineArcOnLine(l, pt(3, 1), pt(3, 1))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
	_, err = cons.LineArcOnLine(arcs.NewLine(arcs.QInt(0), arcs.QInt(0), arcs.QInt(1)), pt(3, 1), pt(-1, 1))
	assert.True(t, errors.Is(err, algebraic.ErrDegenerate))
}

func TestLineArcFromDelimiters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	x := arcs.Horizontal(arcs.QInt(0))
	a, err := cons.LineArcFromLines(x, arcs.Vertical(arcs.QInt(1)), arcs.Vertical(arcs.QInt(3)))
	require.NoError(t, err)
	assert.True(t, a.Source().Equal(pt(1, 0)))
	assert.True(t, a.Target().Equal(pt(3, 0)))
	_, err = cons.LineArcFromLines(x, arcs.Horizontal(arcs.QInt(2)), arcs.Vertical(arcs.QInt(3)))
	assert.True(t, errors.Is(err, ErrNoIntersection))
	//
	a, err = cons.LineArcFromCircles(x, circ(0, 0, 1), true, circ(3, 0, 1), false)
	require.NoError(t, err)
	assert.True(t, a.Source().Equal(pt(-1, 0)))
	assert.True(t, a.Target().Equal(pt(4, 0)))
	_, err = cons.LineArcFromCircles(x, circ(0, 5, 1), true, circ(3, 0, 1), false)
	assert.True(t, errors.Is(err, ErrNoIntersection))
}

func TestRayAndFullLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cons := New().Construction()
	x := arcs.Horizontal(arcs.QInt(0))
	r, err := cons.Ray(x, pt(1, 0))
	require.NoError(t, err)
	assert.False(t, r.IsSourceUnbounded())
	assert.True(t, r.IsTargetUnbounded())
	assert.False(t, r.IsSegment())
	assert.True(t, r.MinVertex().Equal(pt(1, 0)))
	assert.Panics(t, func() { r.MaxVertex() })
	// rays against the direction of x run to -∞
	r, err = cons.Ray(x.Opposite(), pt(1, 0))
	require.NoError(t, err)
	assert.True(t, r.MaxVertex().Equal(pt(1, 0)))
	assert.Panics(t, func() { r.MinVertex() })
	_, err = cons.Ray(x, pt(1, 1))
	assert.True(t, errors.Is(err, ErrNotOnCurve))
	//
	l, err := cons.FullLine(arcs.Vertical(arcs.QInt(2)))
	require.NoError(t, err)
	assert.True(t, l.IsSourceUnbounded())
	assert.True(t, l.IsTargetUnbounded())
	assert.True(t, l.IsVertical())
	assert.False(t, l.Source().IsValid())
}

func TestCurveParts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	cons := k.Construction()
	upper, _ := halves(t, k)
	seg := mustLineArc(cons.LineArcFromPoints(arcs.P(0, 0), arcs.P(1, 1)))
	assert.True(t, cons.MinVertex(FromArc(upper)).Equal(pt(-1, 0)))
	assert.True(t, cons.MaxVertex(FromLineArc(seg)).Equal(pt(1, 1)))
	assert.True(t, cons.SourceVertex(FromArc(upper)).Equal(pt(1, 0)))
	assert.True(t, cons.TargetVertex(FromLineArc(seg)).Equal(pt(1, 1)))
	assert.Panics(t, func() { cons.MinVertex(FromCircle(circ(0, 0, 1))) })
	assert.Panics(t, func() { cons.MaxVertex(FromLine(arcs.Horizontal(arcs.QInt(0)))) })
	c, ok := cons.SupportingCircle(FromArc(upper))
	assert.True(t, ok)
	assert.True(t, c.Equal(circ(0, 0, 1)))
	_, ok = cons.SupportingCircle(FromLineArc(seg))
	assert.False(t, ok)
	l, ok := cons.SupportingLine(FromLineArc(seg))
	assert.True(t, ok)
	assert.True(t, l.HasOn(arcs.P(5, 5)))
	_, ok = cons.SupportingLine(FromCircle(circ(0, 0, 1)))
	assert.False(t, ok)
	assert.True(t, cons.PointFromPair(arcs.P(1, 2)).Equal(pt(1, 2)))
	assert.True(t, cons.Point(algebraic.RationalRoot(arcs.P(1, 2))).Equal(pt(1, 2)))
}
