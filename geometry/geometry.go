// Package geometry contains the fundamental value types used throughout the
// drafter diagram engine.
package geometry

import "math"

// Point represents a 2D coordinate on the diagram canvas.
type Point struct {
	X, Y float64
}

// Add returns the point translated by p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector from p2 to p.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Translate returns the point moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance to p2.
func (p Point) Distance(p2 Point) float64 {
	dx := p.X - p2.X
	dy := p.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle. The invariant X1<=X2, Y1<=Y2 is
// maintained by NewRect and by every method that produces a Rect.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// NewRect creates a normalized rectangle from any two opposite corners.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Corners returns the four corners in top-left, top-right,
// bottom-right, bottom-left order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X1, Y: r.Y1},
		{X: r.X2, Y: r.Y1},
		{X: r.X2, Y: r.Y2},
		{X: r.X1, Y: r.Y2},
	}
}

// ContainsPoint checks if a point is inside the rectangle.
// Points on the boundary are inside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 &&
		p.Y >= r.Y1 && p.Y <= r.Y2
}

// Overlaps checks if two rectangles share interior area. Rectangles that
// merely touch along an edge or corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X1 < o.X2 && o.X1 < r.X2 &&
		r.Y1 < o.Y2 && o.Y1 < r.Y2
}

// Expand returns the rectangle grown by margin on every side.
// A negative margin shrinks it; the result is re-normalized.
func (r Rect) Expand(margin float64) Rect {
	return NewRect(r.X1-margin, r.Y1-margin, r.X2+margin, r.Y2+margin)
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
		X2: math.Max(r.X2, o.X2),
		Y2: math.Max(r.Y2, o.Y2),
	}
}
