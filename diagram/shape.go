// Package diagram owns the authoritative shape and connection collections of
// an editing session and keeps connection geometry in sync with shape bounds.
package diagram

import (
	"github.com/google/uuid"

	"drafter/geometry"
)

// Kind identifies what a shape is on the diagram. State is the only regular,
// resizable kind; the rest are fixed-function pseudo-state markers.
type Kind int

const (
	KindState Kind = iota
	KindInitial
	KindFinal
	KindChoice
	KindFork
	KindJoin
	KindJunction
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindState:
		return "State"
	case KindInitial:
		return "Initial"
	case KindFinal:
		return "Final"
	case KindChoice:
		return "Choice"
	case KindFork:
		return "Fork"
	case KindJoin:
		return "Join"
	case KindJunction:
		return "Junction"
	default:
		return "Unknown"
	}
}

// IsPseudo reports whether the kind is a fixed-function marker rather than a
// regular state.
func (k Kind) IsPseudo() bool {
	return k != KindState
}

// CanBeSource reports whether a transition may leave a shape of this kind.
// Final states and join bars only ever receive.
func (k Kind) CanBeSource() bool {
	return k != KindFinal && k != KindJoin
}

// CanBeTarget reports whether a transition may enter a shape of this kind.
// Initial markers and fork bars only ever emit.
func (k Kind) CanBeTarget() bool {
	return k != KindInitial && k != KindFork
}

// DefaultSize returns the width and height a freshly placed shape of this
// kind gets.
func (k Kind) DefaultSize() (w, h float64) {
	switch k {
	case KindState:
		return 120, 60
	case KindChoice:
		return 30, 30
	case KindFork, KindJoin:
		return 60, 8
	default: // Initial, Final, Junction markers
		return 20, 20
	}
}

// Shape is a node placed on the diagram. Selected is transient UI state and
// never persisted. Parent is a weak back-reference to a container shape's id;
// ownership stays with the Graph.
type Shape struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Kind     Kind          `json:"kind"`
	Bounds   geometry.Rect `json:"bounds"`
	Fill     string        `json:"fill,omitempty"`
	Parent   string        `json:"parent,omitempty"`
	Selected bool          `json:"-"`
}

func newID() string {
	return uuid.NewString()
}
