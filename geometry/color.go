package geometry

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ParseFill parses a "#rrggbb" fill string. The second return is false for
// empty or malformed values, which callers treat as "no fill".
func ParseFill(hex string) (colorful.Color, bool) {
	if hex == "" {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// HighlightFill returns a lightened variant of a fill color, used to render
// selected shapes. Malformed fills highlight from a neutral grey.
func HighlightFill(hex string) colorful.Color {
	c, ok := ParseFill(hex)
	if !ok {
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	h, s, l := c.Hsl()
	l += (1 - l) * 0.4
	return colorful.Hsl(h, s, l).Clamped()
}
