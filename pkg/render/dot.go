package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/HIlight3R/package-manager/pkg/depgraph"
)

// ToDOT converts a dependency graph to Graphviz DOT format.
//
// Every name appearing as a key or as a dependency is declared as a node,
// so leaves and disconnected nodes stay visible even with zero out-edges.
// Node declarations precede edge statements; both are sorted.
func ToDOT(g depgraph.Graph, root string) string {
	var b strings.Builder

	b.WriteString("digraph dependencies {\n")
	fmt.Fprintf(&b, "  label=%q;\n", "Dependencies for "+root)
	b.WriteString("  labelloc=top;\n")
	b.WriteString("  node [shape=ellipse];\n")

	seen := depgraph.Set{}
	for node, deps := range g {
		seen.Add(node)
		for dep := range deps {
			seen.Add(dep)
		}
	}
	for _, node := range seen.Sorted() {
		fmt.Fprintf(&b, "  %q;\n", node)
	}

	var edges []depgraph.Edge
	for node, deps := range g {
		for dep := range deps {
			edges = append(edges, depgraph.Edge{From: node, To: dep})
		}
	}
	slices.SortFunc(edges, func(a, b depgraph.Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	for _, e := range edges {
		fmt.Fprintf(&b, "  %q -> %q;\n", e.From, e.To)
	}

	b.WriteString("}\n")
	return b.String()
}
