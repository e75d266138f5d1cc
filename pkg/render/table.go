package render

import (
	"fmt"
	"strings"

	"github.com/HIlight3R/package-manager/pkg/depgraph"
)

// Table renders the full graph as a sorted textual listing: one line per
// node with its direct dependencies, followed by a section listing revisit
// edges (or stating that none were found).
func Table(g depgraph.Graph, revisits depgraph.EdgeSet, root string) string {
	var b strings.Builder

	b.WriteString("Dependency graph (edge A -> B means \"A depends on B\").\n")
	fmt.Fprintf(&b, "Root package: %s\n\n", root)

	for _, node := range g.Nodes() {
		deps := g.Deps(node)
		if len(deps) == 0 {
			fmt.Fprintf(&b, "  %s -> (no dependencies)\n", node)
			continue
		}
		fmt.Fprintf(&b, "  %s -> %s\n", node, strings.Join(deps, ", "))
	}

	b.WriteString("\n")
	if len(revisits) == 0 {
		b.WriteString("No revisit edges detected.\n")
		return b.String()
	}

	b.WriteString("Revisit edges (edge U -> V targets an already visited package):\n")
	for _, e := range revisits.Sorted() {
		fmt.Fprintf(&b, "  %s -> %s\n", e.From, e.To)
	}
	return b.String()
}
