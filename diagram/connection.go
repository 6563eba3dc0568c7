package diagram

import (
	"strings"

	"drafter/geometry"
	"drafter/routing"
)

// Connection is a directed transition between two shapes. From and To are
// weak id references resolved through the owning Graph. Path and Selected
// are derived/transient: Path is recomputed from the endpoint shapes' current
// bounds and is never persisted.
type Connection struct {
	ID         string        `json:"id"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	FromSide   geometry.Side `json:"fromSide"`
	ToSide     geometry.Side `json:"toSide"`
	FromOffset float64       `json:"fromOffset,omitempty"`
	ToOffset   float64       `json:"toOffset,omitempty"`
	Style      routing.Style `json:"style"`

	// Transition text, composed into the display label.
	Event  string `json:"event,omitempty"`
	Guard  string `json:"guard,omitempty"`
	Action string `json:"action,omitempty"`

	// TextAdjoined snaps the label to the path; enabling it discards any
	// custom label offset.
	TextAdjoined bool            `json:"textAdjoined,omitempty"`
	LabelOffset  *geometry.Point `json:"labelOffset,omitempty"`

	Selected bool         `json:"-"`
	Path     routing.Path `json:"-"`
}

// Label composes the display label as "event [guard] / action", skipping
// empty parts.
func (c *Connection) Label() string {
	var sb strings.Builder
	sb.WriteString(c.Event)
	if c.Guard != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("[" + c.Guard + "]")
	}
	if c.Action != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("/ " + c.Action)
	}
	return sb.String()
}

// SetTextAdjoined toggles label snapping. Turning it on re-snaps the label
// to its default position by clearing any custom offset.
func (c *Connection) SetTextAdjoined(adjoined bool) {
	c.TextAdjoined = adjoined
	if adjoined {
		c.LabelOffset = nil
	}
}

// LabelPosition returns the current anchor point of the label.
func (c *Connection) LabelPosition() geometry.Point {
	return routing.LabelPosition(c.Path, c.LabelOffset)
}

// LabelBounds returns the label's estimated rectangle for hit-testing.
func (c *Connection) LabelBounds() geometry.Rect {
	return routing.LabelBounds(c.Path, c.Label(), c.LabelOffset)
}
