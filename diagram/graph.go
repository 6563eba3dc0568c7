package diagram

import (
	"drafter/geometry"
	"drafter/routing"
)

// Graph owns the shapes and connections of one editing session. Both
// collections preserve insertion order: iteration is deterministic and the
// most recently added shape wins overlapping hit-tests. The Graph is
// single-threaded by design; it is exclusively owned by the active session.
type Graph struct {
	// Root is the distinguished container every top-level shape parents
	// to. It is not part of the hit-testable collection.
	Root *Shape

	Shapes      []*Shape
	Connections []*Connection

	router *routing.Router
}

// NewGraph creates an empty graph with a default router.
func NewGraph() *Graph {
	return &Graph{
		Root:   &Shape{ID: newID(), Name: "root", Kind: KindState},
		router: routing.NewRouter(),
	}
}

// Router exposes the routing tunables.
func (g *Graph) Router() *routing.Router {
	return g.router
}

// AddShape places a new shape of the given kind with its type-appropriate
// default size, parented to the root container.
func (g *Graph) AddShape(kind Kind, x, y float64) *Shape {
	w, h := kind.DefaultSize()
	s := &Shape{
		ID:     newID(),
		Kind:   kind,
		Bounds: geometry.NewRect(x, y, x+w, y+h),
		Parent: g.Root.ID,
	}
	g.Shapes = append(g.Shapes, s)
	return s
}

// AddConnection creates a transition between two shapes. It returns nil when
// either id is unknown or an endpoint's kind forbids the role (nothing is
// created); callers surface that to the user. On success the attachment
// sides and initial path are computed immediately.
func (g *Graph) AddConnection(from, to string) *Connection {
	src := g.FindShape(from)
	dst := g.FindShape(to)
	if src == nil || dst == nil {
		return nil
	}
	if !src.Kind.CanBeSource() || !dst.Kind.CanBeTarget() {
		return nil
	}

	c := &Connection{ID: newID(), From: from, To: to}
	c.FromSide, c.ToSide = routing.CalculateSides(src.Bounds, dst.Bounds, g.router.StubLength)
	g.Connections = append(g.Connections, c)
	g.routeConnection(c, src, dst)
	return c
}

// FindShape returns the shape with the given id, or nil. Linear scan:
// collections stay at interactive scale.
func (g *Graph) FindShape(id string) *Shape {
	for _, s := range g.Shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// FindConnection returns the connection with the given id, or nil.
func (g *Graph) FindConnection(id string) *Connection {
	for _, c := range g.Connections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RemoveShape deletes a shape and cascades to every connection referencing
// it. The connections go first so a dangling reference is never observable.
func (g *Graph) RemoveShape(id string) {
	kept := g.Connections[:0]
	for _, c := range g.Connections {
		if c.From != id && c.To != id {
			kept = append(kept, c)
		}
	}
	g.Connections = kept

	for i, s := range g.Shapes {
		if s.ID == id {
			g.Shapes = append(g.Shapes[:i], g.Shapes[i+1:]...)
			break
		}
	}
}

// RemoveConnection deletes a single connection.
func (g *Graph) RemoveConnection(id string) {
	for i, c := range g.Connections {
		if c.ID == id {
			g.Connections = append(g.Connections[:i], g.Connections[i+1:]...)
			return
		}
	}
}

// MoveShape translates a shape's bounds. Connection paths go stale until the
// next RecalculateConnections call; there is no auto-sync.
func (g *Graph) MoveShape(id string, dx, dy float64) bool {
	s := g.FindShape(id)
	if s == nil {
		return false
	}
	s.Bounds = s.Bounds.Translate(dx, dy)
	return true
}

// RecalculateConnections re-resolves every connection's endpoint bounds and
// recomputes its attachment sides and path. Connections whose endpoints have
// vanished are skipped; the removal cascade means that should not occur.
// Calling this twice without intervening mutation produces identical paths.
func (g *Graph) RecalculateConnections() {
	for _, c := range g.Connections {
		src := g.FindShape(c.From)
		dst := g.FindShape(c.To)
		if src == nil || dst == nil {
			continue
		}
		c.FromSide, c.ToSide = routing.CalculateSides(src.Bounds, dst.Bounds, g.router.StubLength)
		g.routeConnection(c, src, dst)
	}
}

// routeConnection recomputes one connection's path. Only the auto style
// routes around other shapes; explicit styles honor the user's choice even
// through an obstacle.
func (g *Graph) routeConnection(c *Connection, src, dst *Shape) {
	if c.Style == routing.OrthogonalAuto {
		c.Path = g.router.RouteAvoiding(c.Style, g.obstaclesFor(c),
			src.Bounds, dst.Bounds, c.FromSide, c.ToSide, c.FromOffset, c.ToOffset)
		return
	}
	c.Path = g.router.Route(c.Style,
		src.Bounds, dst.Bounds, c.FromSide, c.ToSide, c.FromOffset, c.ToOffset)
}

// obstaclesFor returns the bounds of every shape except the connection's own
// endpoints.
func (g *Graph) obstaclesFor(c *Connection) []geometry.Rect {
	var obstacles []geometry.Rect
	for _, s := range g.Shapes {
		if s.ID == c.From || s.ID == c.To {
			continue
		}
		obstacles = append(obstacles, s.Bounds)
	}
	return obstacles
}

// ShapeAt returns the topmost shape containing the point: reverse insertion
// order so the most recently added shape wins on overlap.
func (g *Graph) ShapeAt(p geometry.Point) *Shape {
	for i := len(g.Shapes) - 1; i >= 0; i-- {
		if g.Shapes[i].Bounds.ContainsPoint(p) {
			return g.Shapes[i]
		}
	}
	return nil
}

// ConnectionAt returns the first connection whose cached path passes within
// tolerance of the point.
func (g *Graph) ConnectionAt(p geometry.Point, tolerance float64) *Connection {
	for _, c := range g.Connections {
		if routing.PathNear(c.Path, p, tolerance) {
			return c
		}
	}
	return nil
}

// ShapesIn returns every shape whose bounds overlap the rectangle, in
// insertion order. Used for marquee selection.
func (g *Graph) ShapesIn(r geometry.Rect) []*Shape {
	var hits []*Shape
	for _, s := range g.Shapes {
		if s.Bounds.Overlaps(r) {
			hits = append(hits, s)
		}
	}
	return hits
}

// ClearSelection deselects every shape and connection.
func (g *Graph) ClearSelection() {
	for _, s := range g.Shapes {
		s.Selected = false
	}
	for _, c := range g.Connections {
		c.Selected = false
	}
}

// SelectShape makes the shape the sole selection. Returns false for an
// unknown id, leaving the current selection untouched.
func (g *Graph) SelectShape(id string) bool {
	s := g.FindShape(id)
	if s == nil {
		return false
	}
	g.ClearSelection()
	s.Selected = true
	return true
}

// SelectConnection makes the connection the sole selection.
func (g *Graph) SelectConnection(id string) bool {
	c := g.FindConnection(id)
	if c == nil {
		return false
	}
	g.ClearSelection()
	c.Selected = true
	return true
}

// SelectInRect replaces the selection with every shape overlapping the
// rectangle and returns how many were selected.
func (g *Graph) SelectInRect(r geometry.Rect) int {
	g.ClearSelection()
	hits := g.ShapesIn(r)
	for _, s := range hits {
		s.Selected = true
	}
	return len(hits)
}
