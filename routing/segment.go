// Package routing computes connection paths between shape boundaries:
// attachment side selection, per-style segment generation, obstacle-avoiding
// orthogonal detours, hit-testing, and label placement.
package routing

import (
	"drafter/geometry"
)

// SegmentKind distinguishes straight lines from quadratic curves.
type SegmentKind int

const (
	Line SegmentKind = iota
	Curve
)

// Segment is one piece of a connection path. Curve segments are quadratic
// Beziers with a single control point; Control is meaningless for lines.
type Segment struct {
	Kind    SegmentKind
	From    geometry.Point
	To      geometry.Point
	Control geometry.Point
}

// LineSegment creates a straight segment.
func LineSegment(from, to geometry.Point) Segment {
	return Segment{Kind: Line, From: from, To: to}
}

// CurveSegment creates a quadratic Bezier segment.
func CurveSegment(from, control, to geometry.Point) Segment {
	return Segment{Kind: Curve, From: from, To: to, Control: control}
}

// PointAt evaluates the segment at parameter t in [0,1].
func (s Segment) PointAt(t float64) geometry.Point {
	if s.Kind == Line {
		return geometry.Point{
			X: s.From.X + (s.To.X-s.From.X)*t,
			Y: s.From.Y + (s.To.Y-s.From.Y)*t,
		}
	}
	u := 1 - t
	return geometry.Point{
		X: u*u*s.From.X + 2*u*t*s.Control.X + t*t*s.To.X,
		Y: u*u*s.From.Y + 2*u*t*s.Control.Y + t*t*s.To.Y,
	}
}

// Bounds returns the bounding box of the segment's defining points. For
// curves this includes the control point, which over-covers the true curve;
// callers use it only as a pre-filter.
func (s Segment) Bounds() geometry.Rect {
	r := geometry.NewRect(s.From.X, s.From.Y, s.To.X, s.To.Y)
	if s.Kind == Curve {
		r = r.Union(geometry.NewRect(s.Control.X, s.Control.Y, s.Control.X, s.Control.Y))
	}
	return r
}

// curveFlattenSteps is the number of uniform-parameter line segments used to
// approximate an arc for hit-testing and label placement.
const curveFlattenSteps = 8

// Path is an ordered sequence of segments from a source shape's boundary to a
// target's. It is derived state: recomputed whenever topology or shape bounds
// change, never persisted.
type Path struct {
	Segments []Segment

	// flat caches a line-only approximation; equal to Segments for
	// line paths, an 8-piece flattening for arcs.
	flat []Segment
}

// newLinePath builds a path of straight segments through the given points,
// dropping near-zero-length legs.
func newLinePath(points ...geometry.Point) Path {
	segs := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		if points[i].Distance(points[i+1]) < epsilon {
			continue
		}
		segs = append(segs, LineSegment(points[i], points[i+1]))
	}
	if len(segs) == 0 && len(points) > 0 {
		// Fully degenerate input still yields one trivial segment so that
		// every connection has some drawable path.
		segs = append(segs, LineSegment(points[0], points[len(points)-1]))
	}
	return Path{Segments: segs, flat: segs}
}

// newArcPath builds a single-curve path plus its cached flattening.
func newArcPath(from, control, to geometry.Point) Path {
	curve := CurveSegment(from, control, to)
	flat := make([]Segment, 0, curveFlattenSteps)
	prev := from
	for i := 1; i <= curveFlattenSteps; i++ {
		t := float64(i) / curveFlattenSteps
		next := curve.PointAt(t)
		flat = append(flat, LineSegment(prev, next))
		prev = next
	}
	return Path{Segments: []Segment{curve}, flat: flat}
}

// Flattened returns the path as straight segments only, suitable for
// hit-testing, length accumulation, and obstacle checks.
func (p Path) Flattened() []Segment {
	if p.flat != nil {
		return p.flat
	}
	return p.Segments
}

// Length returns the total arc length of the flattened path.
func (p Path) Length() float64 {
	total := 0.0
	for _, s := range p.Flattened() {
		total += s.From.Distance(s.To)
	}
	return total
}

// IsEmpty returns true if the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}
