package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"drafter/diagram"
)

// JSON round-trips a graph's persistent state as indented JSON.
type JSON struct{}

// NewJSON creates a new JSON exporter.
func NewJSON() *JSON {
	return &JSON{}
}

// Export serializes the graph's persistent state.
func (e *JSON) Export(g *diagram.Graph) (string, error) {
	data, err := g.Snapshot()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return "", fmt.Errorf("indent snapshot: %w", err)
	}
	return out.String(), nil
}

// Load builds a graph from previously exported JSON. Derived connection
// geometry is recomputed as part of the restore.
func (e *JSON) Load(data []byte) (*diagram.Graph, error) {
	g := diagram.NewGraph()
	if err := g.Restore(data); err != nil {
		return nil, err
	}
	return g, nil
}

// FileExtension returns the file extension for JSON.
func (e *JSON) FileExtension() string {
	return ".json"
}

// FormatName returns the format name.
func (e *JSON) FormatName() string {
	return "JSON"
}
