package routing

import (
	"math"

	"drafter/geometry"
)

// PathNear reports whether a point lies within tolerance of the path.
// Curves are tested against their cached flattening.
func PathNear(p Path, pt geometry.Point, tolerance float64) bool {
	for _, s := range p.Flattened() {
		if segmentNear(s.From, s.To, pt, tolerance) {
			return true
		}
	}
	return false
}

// segmentNear tests one straight segment, rejecting cheaply via a
// tolerance-expanded bounding box before the distance computation.
func segmentNear(a, b, p geometry.Point, tolerance float64) bool {
	if p.X < math.Min(a.X, b.X)-tolerance || p.X > math.Max(a.X, b.X)+tolerance ||
		p.Y < math.Min(a.Y, b.Y)-tolerance || p.Y > math.Max(a.Y, b.Y)+tolerance {
		return false
	}
	return DistanceToSegment(p, a, b) <= tolerance
}

// DistanceToSegment returns the perpendicular distance from p to the segment
// a-b, clamped to the segment's extent. Degenerate segments fall back to
// plain point distance.
func DistanceToSegment(p, a, b geometry.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	len2 := dx*dx + dy*dy
	if len2 < epsilon {
		return p.Distance(a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / len2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(geometry.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
