package routing

import (
	"math"

	"drafter/geometry"
)

// SegmentIntersectsRect reports whether the segment a-b passes through the
// rectangle, using a parametric (Liang-Barsky) clip. Touching the boundary
// counts as an intersection.
func SegmentIntersectsRect(a, b geometry.Point, r geometry.Rect) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if math.Abs(p) < epsilon {
			// Segment parallel to this boundary: inside iff q >= 0.
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, a.X-r.X1) {
		return false
	}
	if !clip(dx, r.X2-a.X) {
		return false
	}
	if !clip(-dy, a.Y-r.Y1) {
		return false
	}
	if !clip(dy, r.Y2-a.Y) {
		return false
	}
	return t0 <= t1
}

// RouteAvoiding computes an OrthogonalAuto path that detours around the
// given obstacle rectangles. Other styles and empty obstacle sets fall
// through to the plain router. The detour search is a bounded greedy
// heuristic, not a shortest path: a full A* could be used, but the hop cap
// keeps per-call latency fixed.
func (r *Router) RouteAvoiding(style Style, obstacles []geometry.Rect, src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	if style != OrthogonalAuto || len(obstacles) == 0 {
		return r.Route(style, src, dst, srcSide, dstSide, srcOff, dstOff)
	}

	plain := r.sShape(src, dst, srcSide, dstSide, srcOff, dstOff)
	if !r.middleRunBlocked(plain, obstacles) {
		return plain
	}
	return r.detour(obstacles, src, dst, srcSide, dstSide, srcOff, dstOff)
}

// middleRunBlocked checks the stub-to-stub run of a plain S-shape against
// every obstacle.
func (r *Router) middleRunBlocked(p Path, obstacles []geometry.Rect) bool {
	segs := p.Segments
	if len(segs) < 2 {
		return false
	}
	mid := segs[len(segs)/2]
	for _, obs := range obstacles {
		if SegmentIntersectsRect(mid.From, mid.To, obs) {
			return true
		}
	}
	return false
}

// detour builds a waypoint chain from source stub to target stub. Candidate
// waypoints are the margin-expanded corners of every obstacle plus the two
// stubs; each hop greedily takes the nearest unvisited candidate reachable
// by a clear orthogonal two-leg path. Visited candidates are keyed by
// rounded coordinates to avoid cycling between near-identical corners. If
// the target stub is not reached within the hop budget the path degrades to
// a direct stub-to-stub run.
func (r *Router) detour(obstacles []geometry.Rect, src, dst geometry.Rect, srcSide, dstSide geometry.Side, srcOff, dstOff float64) Path {
	srcPt := SidePoint(src, srcSide, srcOff)
	dstPt := SidePoint(dst, dstSide, dstOff)
	srcStub := StubPoint(srcPt, srcSide, r.StubLength)
	dstStub := StubPoint(dstPt, dstSide, r.StubLength)

	candidates := make([]geometry.Point, 0, len(obstacles)*4+2)
	for _, obs := range obstacles {
		corners := obs.Expand(r.ObstacleMargin).Corners()
		candidates = append(candidates, corners[:]...)
	}
	candidates = append(candidates, srcStub, dstStub)

	visited := map[[2]int]bool{roundKey(srcStub): true}
	chain := []geometry.Point{srcStub}
	current := srcStub
	reached := false

	for hop := 0; hop < r.MaxDetourHops; hop++ {
		if _, ok := orthogonalCorner(current, dstStub, obstacles); ok {
			chain = append(chain, dstStub)
			reached = true
			break
		}

		best := -1
		bestDist := math.MaxFloat64
		for i, cand := range candidates {
			if visited[roundKey(cand)] {
				continue
			}
			if _, ok := orthogonalCorner(current, cand, obstacles); !ok {
				continue
			}
			if d := current.Distance(cand); d < bestDist {
				bestDist = d
				best = i
			}
		}
		if best < 0 {
			break
		}
		current = candidates[best]
		visited[roundKey(current)] = true
		chain = append(chain, current)
	}

	if !reached {
		// Accepted degradation: the run may overlap an obstacle.
		return newLinePath(srcPt, srcStub, dstStub, dstPt)
	}

	points := []geometry.Point{srcPt}
	for i := 0; i < len(chain)-1; i++ {
		a, b := chain[i], chain[i+1]
		points = append(points, a)
		if corner, ok := orthogonalCorner(a, b, obstacles); ok {
			if corner.Distance(a) >= epsilon && corner.Distance(b) >= epsilon {
				points = append(points, corner)
			}
		}
	}
	points = append(points, chain[len(chain)-1], dstPt)
	return newLinePath(points...)
}

// orthogonalCorner finds a clear two-leg orthogonal route from a to b,
// returning the corner point. Axis-aligned pairs route as a single leg and
// report a as their corner. Horizontal-then-vertical is preferred over
// vertical-then-horizontal.
func orthogonalCorner(a, b geometry.Point, obstacles []geometry.Rect) (geometry.Point, bool) {
	if math.Abs(a.X-b.X) < epsilon || math.Abs(a.Y-b.Y) < epsilon {
		if legClear(a, b, obstacles) {
			return a, true
		}
		return geometry.Point{}, false
	}

	hv := geometry.Point{X: b.X, Y: a.Y}
	if legClear(a, hv, obstacles) && legClear(hv, b, obstacles) {
		return hv, true
	}
	vh := geometry.Point{X: a.X, Y: b.Y}
	if legClear(a, vh, obstacles) && legClear(vh, b, obstacles) {
		return vh, true
	}
	return geometry.Point{}, false
}

func legClear(a, b geometry.Point, obstacles []geometry.Rect) bool {
	for _, obs := range obstacles {
		if SegmentIntersectsRect(a, b, obs) {
			return false
		}
	}
	return true
}

// roundKey collapses a point to integer coordinates for visited tracking.
func roundKey(p geometry.Point) [2]int {
	return [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
}
