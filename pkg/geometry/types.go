// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// FromVec converts a gonum vector to a Point2D.
func FromVec(v r2.Vec) Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

// Vec returns the point as a gonum vector.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return r2.Norm(r2.Sub(p.Vec(), other.Vec()))
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return FromVec(r2.Add(p.Vec(), other.Vec()))
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return FromVec(r2.Sub(p.Vec(), other.Vec()))
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return FromVec(r2.Scale(factor, p.Vec()))
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x" yaml:"x" toml:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point is inside the rectangle.
// Empty rectangles contain nothing.
func (r Rect) Contains(p Point2D) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// LeftMid returns the midpoint of the left edge.
func (r Rect) LeftMid() Point2D {
	return Point2D{X: r.X, Y: r.Y + r.Height/2}
}

// RightMid returns the midpoint of the right edge.
func (r Rect) RightMid() Point2D {
	return Point2D{X: r.X + r.Width, Y: r.Y + r.Height/2}
}

// Intersects returns true if this rectangle intersects with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Segment is a straight line between two points.
type Segment struct {
	From Point2D
	To   Point2D
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// StrokeQuad returns the four corners of the rectangle covered by the segment
// stroked with the given width, in drawing order. A zero-length segment
// yields a width x width square centered on From.
func (s Segment) StrokeQuad(width float64) [4]Point2D {
	half := width / 2
	d := r2.Sub(s.To.Vec(), s.From.Vec())
	if r2.Norm(d) == 0 {
		c := s.From
		return [4]Point2D{
			{X: c.X - half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y + half},
			{X: c.X - half, Y: c.Y + half},
		}
	}
	u := r2.Unit(d)
	n := r2.Scale(half, r2.Vec{X: -u.Y, Y: u.X})
	return [4]Point2D{
		FromVec(r2.Add(s.From.Vec(), n)),
		FromVec(r2.Add(s.To.Vec(), n)),
		FromVec(r2.Sub(s.To.Vec(), n)),
		FromVec(r2.Sub(s.From.Vec(), n)),
	}
}
