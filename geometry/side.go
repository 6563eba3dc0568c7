package geometry

// Side denotes which edge of a rectangle a connection attaches to.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Opposite returns the side facing s across the rectangle.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// Vertical reports whether a connection leaving this side travels
// vertically (top and bottom edges).
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Horizontal reports whether a connection leaving this side travels
// horizontally (left and right edges).
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}
