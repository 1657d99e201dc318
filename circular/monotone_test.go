package circular

import (
	"testing"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arcEnds(t *testing.T, c Curve) (Point, Point) {
	t.Helper()
	a, ok := c.CircularArc()
	require.True(t, ok, "expected circular arc, is %v", c.Kind())
	return a.Source(), a.Target()
}

func TestMakeXMonotoneFullCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dec := New().Decomposition()
	pieces := dec.MakeXMonotone(FromCircle(circ(0, 0, 1)))
	require.Len(t, pieces, 2)
	s, e := arcEnds(t, pieces[0])
	assert.True(t, s.Equal(pt(-1, 0)))
	assert.True(t, e.Equal(pt(1, 0)))
	s, e = arcEnds(t, pieces[1])
	assert.True(t, s.Equal(pt(1, 0)))
	assert.True(t, e.Equal(pt(-1, 0)))
	for _, p := range pieces {
		a, _ := p.CircularArc()
		assert.True(t, a.IsXMonotone())
	}
	//
	adv := dec.AdvancedMakeXMonotone(FromCircle(circ(0, 0, 1)))
	require.Len(t, adv, 2)
	assert.True(t, adv[0].XIncreasing)
	assert.False(t, adv[0].OnUpperPart)
	assert.False(t, adv[1].XIncreasing)
	assert.True(t, adv[1].OnUpperPart)
}

func TestMakeXMonotoneArcs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	dec := k.Decomposition()
	upper, _ := halves(t, k)
	pieces := dec.MakeXMonotone(FromArc(upper))
	require.Len(t, pieces, 1)
	assert.True(t, k.Comparison().EqualCurves(pieces[0], FromArc(upper)))
	// three quarters, from the left around the bottom to the top
	a, err := k.Construction().ArcFromLines(circ(0, 0, 1),
		arcs.Horizontal(arcs.QInt(0)), true,
		arcs.Vertical(arcs.QInt(0)), false)
	require.NoError(t, err)
	pieces = dec.MakeXMonotone(FromArc(a))
	require.Len(t, pieces, 2)
	s, e := arcEnds(t, pieces[0])
	assert.True(t, s.Equal(pt(-1, 0)))
	assert.True(t, e.Equal(pt(1, 0)))
	s, e = arcEnds(t, pieces[1])
	assert.True(t, s.Equal(pt(1, 0)))
	assert.True(t, e.Equal(pt(0, 1)))
	// clockwise, from the top around the right to the bottom and left
	cw, err := k.Construction().ArcFromPoints(circ(0, 0, 1), pt(0, 1), pt(-1, 0), arcs.Clockwise)
	require.NoError(t, err)
	adv := dec.AdvancedMakeXMonotone(FromArc(cw))
	require.Len(t, adv, 2)
	s, e = arcEnds(t, adv[0].Curve)
	assert.True(t, s.Equal(pt(0, 1)))
	assert.True(t, e.Equal(pt(1, 0)))
	assert.True(t, adv[0].XIncreasing)
	assert.True(t, adv[0].OnUpperPart)
	s, e = arcEnds(t, adv[1].Curve)
	assert.True(t, s.Equal(pt(1, 0)))
	assert.True(t, e.Equal(pt(-1, 0)))
	assert.False(t, adv[1].XIncreasing)
	assert.False(t, adv[1].OnUpperPart)
}

func TestMakeXMonotoneLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	dec := k.Decomposition()
	r, err := k.Construction().Ray(arcs.Horizontal(arcs.QInt(0)).Opposite(), pt(1, 0))
	require.NoError(t, err)
	pieces := dec.MakeXMonotone(FromLineArc(r))
	require.Len(t, pieces, 1)
	adv := dec.AdvancedMakeXMonotone(FromLineArc(r))
	require.Len(t, adv, 1)
	assert.False(t, adv[0].XIncreasing)
	adv = dec.AdvancedMakeXMonotone(FromLine(arcs.LineThrough(arcs.P(0, 0), arcs.P(1, 1))))
	require.Len(t, adv, 1)
	assert.True(t, adv[0].XIncreasing)
	assert.Equal(t, KindLineArc, adv[0].Curve.Kind())
}

func TestMakeXYMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	dec := k.Decomposition()
	pieces := dec.MakeXYMonotone(FromCircle(circ(0, 0, 1)))
	require.Len(t, pieces, 4)
	ends := [][2]Point{
		{pt(-1, 0), pt(0, -1)},
		{pt(0, -1), pt(1, 0)},
		{pt(1, 0), pt(0, 1)},
		{pt(0, 1), pt(-1, 0)},
	}
	dirs := [][2]bool{{true, false}, {true, true}, {false, true}, {false, false}}
	for i, p := range pieces {
		s, e := arcEnds(t, p.Curve)
		assert.True(t, s.Equal(ends[i][0]), "source of piece #%d is %v", i, s)
		assert.True(t, e.Equal(ends[i][1]), "target of piece #%d is %v", i, e)
		assert.Equal(t, dirs[i][0], p.XIncreasing, "x-direction of piece #%d", i)
		assert.Equal(t, dirs[i][1], p.YIncreasing, "y-direction of piece #%d", i)
	}
	//
	upper, _ := halves(t, k)
	pieces = dec.MakeXYMonotone(FromArc(upper))
	require.Len(t, pieces, 2)
	s, e := arcEnds(t, pieces[0].Curve)
	assert.True(t, s.Equal(pt(1, 0)))
	assert.True(t, e.Equal(pt(0, 1)))
	//
	diag, err := k.Construction().LineArcFromPoints(arcs.P(4, 4), arcs.P(0, 0))
	require.NoError(t, err)
	pieces = dec.MakeXYMonotone(FromLineArc(diag))
	require.Len(t, pieces, 1)
	assert.False(t, pieces[0].XIncreasing)
	assert.False(t, pieces[0].YIncreasing)
}

func TestSplitArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	dec := k.Decomposition()
	upper, _ := halves(t, k)
	left, right := dec.Split(FromArc(upper), pt(0, 1))
	s, e := arcEnds(t, left)
	assert.True(t, s.Equal(pt(1, 0)))
	assert.True(t, e.Equal(pt(0, 1)))
	s, e = arcEnds(t, right)
	assert.True(t, s.Equal(pt(0, 1)))
	assert.True(t, e.Equal(pt(-1, 0)))
	// pieces rejoin to the unsplit arc
	l, _ := left.CircularArc()
	rejoined, err := k.Construction().ArcFromPoints(l.SupportingCircle(), l.Source(),
		right.Target(), l.Orientation())
	require.NoError(t, err)
	assert.True(t, k.Comparison().EqualCurves(FromArc(rejoined), FromArc(upper)))
	//
	cw, err := k.Construction().ArcThroughPoints(arcs.P(-1, 0), arcs.P(0, 1), arcs.P(1, 0))
	require.NoError(t, err)
	left, right = dec.Split(FromArc(cw), pt(0, 1))
	l, _ = left.CircularArc()
	assert.Equal(t, arcs.Clockwise, l.Orientation())
	assert.True(t, l.Target().Equal(pt(0, 1)))
	assert.True(t, right.Target().Equal(pt(1, 0)))
	//
	left, right = dec.Split(FromCircle(circ(0, 0, 1)), pt(1, 0))
	s, e = arcEnds(t, left)
	assert.True(t, s.Equal(pt(-1, 0)))
	assert.True(t, e.Equal(pt(1, 0)))
	s, e = arcEnds(t, right)
	assert.True(t, s.Equal(pt(1, 0)))
	assert.True(t, e.Equal(pt(-1, 0)))
	//
	assert.Panics(t, func() { dec.Split(FromArc(upper), pt(1, 0)) })
	assert.Panics(t, func() { dec.Split(FromArc(upper), pt(0, -1)) })
	assert.Panics(t, func() { dec.Split(FromArc(upper), pt(0, 0)) })
}

func TestSplitLineArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := New()
	dec := k.Decomposition()
	seg, err := k.Construction().LineArcFromPoints(arcs.P(0, 0), arcs.P(4, 0))
	require.NoError(t, err)
	left, right := dec.Split(FromLineArc(seg), pt(1, 0))
	assert.True(t, left.Source().Equal(pt(0, 0)))
	assert.True(t, left.Target().Equal(pt(1, 0)))
	assert.True(t, right.Source().Equal(pt(1, 0)))
	assert.True(t, right.Target().Equal(pt(4, 0)))
	assert.Panics(t, func() { dec.Split(FromLineArc(seg), pt(4, 0)) })
	assert.Panics(t, func() { dec.Split(FromLineArc(seg), pt(5, 0)) })
	assert.Panics(t, func() { dec.Split(FromLineArc(seg), pt(1, 1)) })
	//
	ray, err := k.Construction().Ray(arcs.Horizontal(arcs.QInt(0)), pt(1, 0))
	require.NoError(t, err)
	left, right = dec.Split(FromLineArc(ray), pt(3, 0))
	l, _ := left.LineArc()
	r, _ := right.LineArc()
	assert.True(t, l.IsSegment())
	assert.True(t, l.MaxVertex().Equal(pt(3, 0)))
	assert.True(t, r.IsTargetUnbounded())
	assert.True(t, r.MinVertex().Equal(pt(3, 0)))
	//
	left, right = dec.Split(FromLine(arcs.Vertical(arcs.QInt(0))), pt(0, 0))
	l, _ = left.LineArc()
	r, _ = right.LineArc()
	assert.True(t, l.IsSourceUnbounded())
	assert.True(t, l.Target().Equal(pt(0, 0)))
	assert.True(t, r.IsTargetUnbounded())
	assert.True(t, r.Source().Equal(pt(0, 0)))
}
