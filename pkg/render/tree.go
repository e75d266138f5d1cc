package render

import (
	"strings"

	"github.com/HIlight3R/package-manager/pkg/depgraph"
)

// cycleMarker annotates a child that is already an ancestor on the current
// path; the walk does not descend into it again.
const cycleMarker = " (cycle)"

// Tree renders the graph as a box-drawing ASCII tree rooted at root,
// children sorted lexicographically. A node appearing several times in the
// graph is expanded at each occurrence, except when it is its own ancestor:
// such children are printed with a cycle marker and not recursed into, so
// the walk terminates on any cyclic graph.
func Tree(g depgraph.Graph, root string) string {
	var b strings.Builder
	b.WriteString(root + "\n")
	walkTree(&b, g, root, "", map[string]bool{root: true})
	return b.String()
}

func walkTree(b *strings.Builder, g depgraph.Graph, node, prefix string, path map[string]bool) {
	children := g.Deps(node)
	for i, child := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		if path[child] {
			b.WriteString(prefix + connector + child + cycleMarker + "\n")
			continue
		}

		b.WriteString(prefix + connector + child + "\n")
		path[child] = true
		walkTree(b, g, child, childPrefix, path)
		delete(path, child)
	}
}
