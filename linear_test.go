package arcs

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLineThrough(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := LineThrough(P(0, 0), P(2, 0))
	assert.True(t, l.IsHorizontal())
	assert.Equal(t, Positive, l.Side(P(1, 1)), "left of a line running towards +x is above")
	assert.Equal(t, Negative, l.Side(P(1, -1)))
	assert.True(t, l.HasOn(P(-5, 0)))
	assert.True(t, l.SameDirection(Horizontal(QInt(3))))
	assert.False(t, l.SameDirection(l.Opposite()))
	assert.True(t, l.Equal(l.Opposite()))
	assert.True(t, l.Equal(Horizontal(QInt(0))))
}

func TestLineVertical(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Vertical(QInt(2))
	assert.True(t, v.IsVertical())
	assert.True(t, v.HasOn(P(2, 7)))
	assert.True(t, v.Direction().Y().Sign() > 0)
	assert.True(t, v.SameDirection(LineThrough(P(2, 0), P(2, 1))))
	assert.True(t, v.HasOn(v.Point()))
	assert.True(t, NewLine(QInt(0), QInt(0), QInt(1)).IsDegenerate())
}

func TestLineShifted(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := LineThrough(P(0, 0), P(1, 1)).Shifted(P(0, 1))
	assert.True(t, l.HasOn(P(0, 1)))
	assert.True(t, l.HasOn(P(1, 2)))
}

func TestSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := Seg(P(0, 0), P(0, 3))
	assert.False(t, s.IsDegenerate())
	assert.True(t, s.SupportingLine().IsVertical())
	assert.True(t, Seg(P(1, 1), P(1, 1)).IsDegenerate())
}

func TestCircleBasics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCircle(P(1, 1), QInt(4))
	assert.True(t, c.HasOn(P(3, 1)))
	assert.Equal(t, Negative, c.BoundedSide(P(1, 1)))
	assert.Equal(t, Positive, c.BoundedSide(P(4, 4)))
	assert.True(t, c.Equal(CircleFromRadius(P(1, 1), QInt(2))))
	assert.True(t, c.Shifted(P(-1, -1)).HasOn(P(0, 2)))
	assert.Panics(t, func() { NewCircle(P(0, 0), QInt(-1)) })
	assert.True(t, NewCircle(P(0, 0), QInt(0)).IsDegenerate())
}

func TestCircleTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCircle(P(1, 0), QInt(1))
	c2 := c.Transformed(Scaling(QInt(3)))
	assert.True(t, c2.Center().Equal(P(3, 0)))
	assert.Equal(t, 0, c2.SquaredRadius().Cmp(QInt(9)))
	skew := Identity()
	skew.set(0, 1, QInt(1))
	assert.Panics(t, func() { c.Transformed(skew) })
}
