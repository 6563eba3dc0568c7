package routing

import (
	"math"

	"drafter/geometry"
)

// epsilon guards divisions and degenerate-geometry comparisons.
const epsilon = 1e-6

// Style selects the routing algorithm for a connection.
type Style int

const (
	// OrthogonalAuto is the default: an S-shape that detours around
	// obstacles when its middle run is blocked.
	OrthogonalAuto Style = iota
	Direct
	LShape
	SShape
	UShape
	Arc
)

// String returns the string representation of a Style.
func (s Style) String() string {
	switch s {
	case Direct:
		return "Direct"
	case LShape:
		return "LShape"
	case SShape:
		return "SShape"
	case UShape:
		return "UShape"
	case Arc:
		return "Arc"
	default:
		return "OrthogonalAuto"
	}
}

// Router computes connection paths. The zero value is not ready to use;
// construct with NewRouter.
type Router struct {
	StubLength     float64 // perpendicular exit distance from a shape edge
	ObstacleMargin float64 // clearance kept around obstacles when detouring
	MaxDetourHops  int     // waypoint budget for the obstacle router
}

// NewRouter creates a router with the standard tunables.
func NewRouter() *Router {
	return &Router{
		StubLength:     20,
		ObstacleMargin: 15,
		MaxDetourHops:  10,
	}
}

// CalculateSides chooses attachment sides for a connection between two
// rectangles. Directions are checked in priority order below, above, right,
// left, each requiring at least 2*stub clearance between the facing edges.
// When no direction is clearly separated, the axis with the larger
// center-to-center delta wins and the delta's sign picks the side.
func CalculateSides(src, dst geometry.Rect, stub float64) (geometry.Side, geometry.Side) {
	clear := 2 * stub

	switch {
	case dst.Y1-src.Y2 >= clear:
		return geometry.SideBottom, geometry.SideTop
	case src.Y1-dst.Y2 >= clear:
		return geometry.SideTop, geometry.SideBottom
	case dst.X1-src.X2 >= clear:
		return geometry.SideRight, geometry.SideLeft
	case src.X1-dst.X2 >= clear:
		return geometry.SideLeft, geometry.SideRight
	}

	delta := dst.Center().Sub(src.Center())
	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		if delta.X >= 0 {
			return geometry.SideRight, geometry.SideLeft
		}
		return geometry.SideLeft, geometry.SideRight
	}
	if delta.Y >= 0 {
		return geometry.SideBottom, geometry.SideTop
	}
	return geometry.SideTop, geometry.SideBottom
}

// SidePoint returns the midpoint of the given side shifted by offset along
// that side's axis. SideNone yields the rectangle center.
func SidePoint(bounds geometry.Rect, side geometry.Side, offset float64) geometry.Point {
	c := bounds.Center()
	switch side {
	case geometry.SideTop:
		return geometry.Point{X: c.X + offset, Y: bounds.Y1}
	case geometry.SideBottom:
		return geometry.Point{X: c.X + offset, Y: bounds.Y2}
	case geometry.SideLeft:
		return geometry.Point{X: bounds.X1, Y: c.Y + offset}
	case geometry.SideRight:
		return geometry.Point{X: bounds.X2, Y: c.Y + offset}
	default:
		return c
	}
}

// StubPoint extends a boundary point outward from the shape by stub along
// the side's outward normal.
func StubPoint(p geometry.Point, side geometry.Side, stub float64) geometry.Point {
	switch side {
	case geometry.SideTop:
		return geometry.Point{X: p.X, Y: p.Y - stub}
	case geometry.SideBottom:
		return geometry.Point{X: p.X, Y: p.Y + stub}
	case geometry.SideLeft:
		return geometry.Point{X: p.X - stub, Y: p.Y}
	case geometry.SideRight:
		return geometry.Point{X: p.X + stub, Y: p.Y}
	default:
		return p
	}
}

// Route computes the path for a connection with no obstacle constraints.
func (r *Router) Route(style Style, src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	switch style {
	case Direct:
		return r.direct(src, dst, srcSide, dstSide, srcOff, dstOff)
	case LShape:
		return r.lShape(src, dst, srcSide, dstSide, srcOff, dstOff)
	case UShape:
		return r.uShape(src, dst, srcSide, srcOff, dstOff)
	case Arc:
		return r.arc(src, dst, srcSide, dstSide, srcOff, dstOff)
	default: // SShape and OrthogonalAuto share the plain S path.
		return r.sShape(src, dst, srcSide, dstSide, srcOff, dstOff)
	}
}

func (r *Router) direct(src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	return newLinePath(
		SidePoint(src, srcSide, srcOff),
		SidePoint(dst, dstSide, dstOff),
	)
}

// lShape produces exactly one right-angle turn. Exits through a left or
// right edge run horizontally first (the corner takes the target's x);
// exits through a top or bottom edge run vertically first.
func (r *Router) lShape(src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	a := SidePoint(src, srcSide, srcOff)
	b := SidePoint(dst, dstSide, dstOff)

	var corner geometry.Point
	if srcSide.Horizontal() {
		corner = geometry.Point{X: b.X, Y: a.Y}
	} else {
		corner = geometry.Point{X: a.X, Y: b.Y}
	}
	return newLinePath(a, corner, b)
}

// sShape stubs out of the source, runs stub-to-stub, and stubs into the
// target: three segments, two turns.
func (r *Router) sShape(src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	a := SidePoint(src, srcSide, srcOff)
	b := SidePoint(dst, dstSide, dstOff)
	return newLinePath(
		a,
		StubPoint(a, srcSide, r.StubLength),
		StubPoint(b, dstSide, r.StubLength),
		b,
	)
}

// uShape exits and re-enters facing the same direction, bulging
// 2*StubLength past the outermost side point. The target side is forced to
// match the source's exit direction.
func (r *Router) uShape(src, dst geometry.Rect, side geometry.Side, srcOff, dstOff float64) Path {
	if side == geometry.SideNone {
		side, _ = CalculateSides(src, dst, r.StubLength)
	}
	a := SidePoint(src, side, srcOff)
	b := SidePoint(dst, side, dstOff)
	aStub := StubPoint(a, side, r.StubLength)
	bStub := StubPoint(b, side, r.StubLength)

	bulge := 2 * r.StubLength
	var p2, p3 geometry.Point
	switch side {
	case geometry.SideRight:
		x := math.Max(a.X, b.X) + bulge
		p2 = geometry.Point{X: x, Y: a.Y}
		p3 = geometry.Point{X: x, Y: b.Y}
	case geometry.SideLeft:
		x := math.Min(a.X, b.X) - bulge
		p2 = geometry.Point{X: x, Y: a.Y}
		p3 = geometry.Point{X: x, Y: b.Y}
	case geometry.SideTop:
		y := math.Min(a.Y, b.Y) - bulge
		p2 = geometry.Point{X: a.X, Y: y}
		p3 = geometry.Point{X: b.X, Y: y}
	default: // SideBottom
		y := math.Max(a.Y, b.Y) + bulge
		p2 = geometry.Point{X: a.X, Y: y}
		p3 = geometry.Point{X: b.X, Y: y}
	}

	return newLinePath(a, aStub, p2, p3, bStub, b)
}

// arc produces a single quadratic Bezier. The control point sits at the
// chord midpoint, offset perpendicular by max(0.3*chord, 30); opposing
// horizontal or vertical side pairs curve one way, everything else the
// other. Near-zero chords fall back to a fixed perpendicular.
func (r *Router) arc(src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	a := SidePoint(src, srcSide, srcOff)
	b := SidePoint(dst, dstSide, dstOff)

	chord := b.Sub(a)
	length := a.Distance(b)

	perp := geometry.Point{X: 0, Y: -1}
	if length >= epsilon {
		perp = geometry.Point{X: chord.Y / length, Y: -chord.X / length}
	}

	// Opposing side pairs (left/right or top/bottom) curve toward one fixed
	// side of the chord; every other pairing curves the other way.
	sign := 1.0
	if srcSide != geometry.SideNone && srcSide == dstSide.Opposite() {
		sign = -1
	}

	offset := math.Max(0.3*length, 30)
	mid := geometry.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	control := geometry.Point{
		X: mid.X + perp.X*offset*sign,
		Y: mid.Y + perp.Y*offset*sign,
	}
	return newArcPath(a, control, b)
}
