// Package export converts diagram graphs to external text formats. The
// engine itself is format-agnostic; these exporters are the persistence-side
// consumers of its snapshot.
package export

import "drafter/diagram"

// Exporter converts a graph to a textual format.
type Exporter interface {
	Export(g *diagram.Graph) (string, error)
	FileExtension() string
	FormatName() string
}
