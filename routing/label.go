package routing

import (
	"unicode/utf8"

	"drafter/geometry"
)

const (
	// labelLift is how far above the path midpoint a label sits by default.
	labelLift = 15

	// No real text metrics are available at this layer; label bounds are
	// estimated from rune count.
	labelCharWidth = 7
	labelHeight    = 14
)

// LabelPosition returns the anchor point for a connection label: the
// arc-length midpoint of the path, lifted labelLift above it, unless a
// custom offset from the midpoint is supplied.
func LabelPosition(p Path, custom *geometry.Point) geometry.Point {
	mid := Midpoint(p)
	if custom != nil {
		return mid.Add(*custom)
	}
	return geometry.Point{X: mid.X, Y: mid.Y - labelLift}
}

// LabelBounds estimates the label's rectangle for hit-testing, centered on
// the label position.
func LabelBounds(p Path, text string, custom *geometry.Point) geometry.Rect {
	pos := LabelPosition(p, custom)
	w := float64(utf8.RuneCountInString(text)) * labelCharWidth
	h := float64(labelHeight)
	return geometry.NewRect(pos.X-w/2, pos.Y-h/2, pos.X+w/2, pos.Y+h/2)
}

// Midpoint returns the point at 50% of the path's arc length, interpolated
// within the segment that contains it. Empty paths yield the zero point.
func Midpoint(p Path) geometry.Point {
	segs := p.Flattened()
	if len(segs) == 0 {
		return geometry.Point{}
	}

	half := p.Length() / 2
	if half < epsilon {
		return segs[0].From
	}

	walked := 0.0
	for _, s := range segs {
		length := s.From.Distance(s.To)
		if walked+length >= half {
			t := (half - walked) / length
			return geometry.Point{
				X: s.From.X + (s.To.X-s.From.X)*t,
				Y: s.From.Y + (s.To.Y-s.From.Y)*t,
			}
		}
		walked += length
	}
	return segs[len(segs)-1].To
}
