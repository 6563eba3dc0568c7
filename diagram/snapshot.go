package diagram

import (
	"encoding/json"
	"fmt"
)

// persistentState is the serializable view of a graph: identifiers, names,
// bounds, styles, and text only. Derived paths and transient selection flags
// are excluded (their fields are tagged json:"-") and recomputed after
// restore.
type persistentState struct {
	Root        *Shape        `json:"root"`
	Shapes      []*Shape      `json:"shapes"`
	Connections []*Connection `json:"connections"`
}

// Snapshot serializes the graph's persistent state.
func (g *Graph) Snapshot() ([]byte, error) {
	data, err := json.Marshal(persistentState{
		Root:        g.Root,
		Shapes:      g.Shapes,
		Connections: g.Connections,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot graph: %w", err)
	}
	return data, nil
}

// Restore replaces the graph's state with a snapshot and re-derives all
// connection geometry. A malformed snapshot leaves the graph unmodified: the
// data is decoded into a temporary first, so there is no partial restore.
func (g *Graph) Restore(data []byte) error {
	var st persistentState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("restore graph: %w", err)
	}

	if st.Root != nil {
		g.Root = st.Root
	}
	g.Shapes = st.Shapes
	g.Connections = st.Connections
	if g.Shapes == nil {
		g.Shapes = []*Shape{}
	}
	if g.Connections == nil {
		g.Connections = []*Connection{}
	}

	g.RecalculateConnections()
	return nil
}
