package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(20, 30, 80, 40)

	assert.Equal(t, Point2D{X: 100, Y: 50}, r.RightMid())
	assert.Equal(t, Point2D{X: 20, Y: 50}, r.LeftMid())
	assert.Equal(t, Point2D{X: 60, Y: 50}, r.Center())
	assert.True(t, r.Contains(NewPoint2D(20, 30)))
	assert.True(t, r.Contains(NewPoint2D(100, 70)))
	assert.False(t, r.Contains(NewPoint2D(101, 50)))
}

func TestEmptyRectContainsNothing(t *testing.T) {
	var r Rect
	assert.True(t, r.Empty())
	assert.False(t, r.Contains(Point2D{}))
}

func TestIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.True(t, a.Intersects(NewRect(5, 5, 10, 10)))
	assert.False(t, a.Intersects(NewRect(10, 0, 10, 10)))
}

func TestPointArithmetic(t *testing.T) {
	p := NewPoint2D(3, 4)
	assert.InDelta(t, 5.0, p.Distance(Point2D{}), 1e-9)
	assert.Equal(t, NewPoint2D(4, 6), p.Add(NewPoint2D(1, 2)))
	assert.Equal(t, NewPoint2D(2, 2), p.Sub(NewPoint2D(1, 2)))
	assert.Equal(t, NewPoint2D(6, 8), p.Scale(2))
}

func TestStrokeQuadHorizontal(t *testing.T) {
	s := Segment{From: NewPoint2D(0, 10), To: NewPoint2D(100, 10)}
	q := s.StrokeQuad(4)

	assert.InDelta(t, 100.0, s.Length(), 1e-9)
	assert.InDelta(t, 0.0, q[0].X, 1e-9)
	assert.InDelta(t, 12.0, q[0].Y, 1e-9)
	assert.InDelta(t, 100.0, q[1].X, 1e-9)
	assert.InDelta(t, 12.0, q[1].Y, 1e-9)
	assert.InDelta(t, 8.0, q[2].Y, 1e-9)
	assert.InDelta(t, 8.0, q[3].Y, 1e-9)
}

func TestStrokeQuadDegenerate(t *testing.T) {
	s := Segment{From: NewPoint2D(5, 5), To: NewPoint2D(5, 5)}
	q := s.StrokeQuad(2)
	assert.Equal(t, NewPoint2D(4, 4), q[0])
	assert.Equal(t, NewPoint2D(6, 6), q[2])
}
