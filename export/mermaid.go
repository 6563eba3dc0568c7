package export

import (
	"fmt"
	"strings"

	"drafter/diagram"
)

// Mermaid exports a graph as Mermaid stateDiagram-v2 syntax.
type Mermaid struct{}

// NewMermaid creates a new Mermaid exporter.
func NewMermaid() *Mermaid {
	return &Mermaid{}
}

// Export converts the graph to Mermaid syntax. Initial and final pseudo
// shapes map to Mermaid's [*] marker; choice, fork, and join become
// annotated state declarations.
func (e *Mermaid) Export(g *diagram.Graph) (string, error) {
	if g == nil {
		return "", fmt.Errorf("graph is nil")
	}
	if len(g.Shapes) == 0 {
		return "", fmt.Errorf("graph has no shapes")
	}

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	// Stable aliases in insertion order; names go into declarations.
	alias := make(map[string]string, len(g.Shapes))
	for i, s := range g.Shapes {
		id := fmt.Sprintf("s%d", i)
		alias[s.ID] = id

		switch s.Kind {
		case diagram.KindInitial, diagram.KindFinal:
			alias[s.ID] = "[*]"
		case diagram.KindChoice:
			sb.WriteString(fmt.Sprintf("    state %s <<choice>>\n", id))
		case diagram.KindFork:
			sb.WriteString(fmt.Sprintf("    state %s <<fork>>\n", id))
		case diagram.KindJoin:
			sb.WriteString(fmt.Sprintf("    state %s <<join>>\n", id))
		default:
			if s.Name != "" {
				sb.WriteString(fmt.Sprintf("    %s: %s\n", id, s.Name))
			}
		}
	}

	for _, c := range g.Connections {
		from, ok := alias[c.From]
		if !ok {
			continue
		}
		to, ok := alias[c.To]
		if !ok {
			continue
		}

		line := fmt.Sprintf("    %s --> %s", from, to)
		if label := c.Label(); label != "" {
			line += ": " + label
		}
		sb.WriteString(line + "\n")
	}

	return sb.String(), nil
}

// FileExtension returns the file extension for Mermaid.
func (e *Mermaid) FileExtension() string {
	return ".mmd"
}

// FormatName returns the format name.
func (e *Mermaid) FormatName() string {
	return "Mermaid"
}
