package depgraph

import (
	"cmp"
	"context"
	"slices"
)

// Set is an unordered collection of package names.
type Set map[string]struct{}

// Add inserts name into the set.
func (s Set) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the set's names in lexicographic order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Graph maps each package name to the set of its direct dependencies.
// Every name reached during a build is present as a key, possibly with an
// empty set; dependencies never appear only as values.
type Graph map[string]Set

// Add records the edge from -> to, creating entries as needed.
func (g Graph) Add(from, to string) {
	g.ensure(from).Add(to)
}

func (g Graph) ensure(name string) Set {
	deps, ok := g[name]
	if !ok {
		deps = Set{}
		g[name] = deps
	}
	return deps
}

// Nodes returns all node names in lexicographic order.
func (g Graph) Nodes() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Deps returns the direct dependencies of name in lexicographic order.
func (g Graph) Deps(name string) []string {
	return g[name].Sorted()
}

// Edge is a directed dependency edge: From depends on To.
type Edge struct {
	From string
	To   string
}

// EdgeSet is an unordered collection of edges.
type EdgeSet map[Edge]struct{}

// Add inserts e into the set.
func (s EdgeSet) Add(e Edge) { s[e] = struct{}{} }

// Sorted returns the edges ordered by source, then target.
func (s EdgeSet) Sorted() []Edge {
	edges := make([]Edge, 0, len(s))
	for e := range s {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return edges
}

// Provider resolves the direct dependencies of a package.
// Implementations may hit external state (a registry API) or serve a static
// fixture graph; either way the returned order is the declaration order.
type Provider interface {
	Neighbors(ctx context.Context, name string) ([]string, error)
}

// Build runs a level-synchronous breadth-first traversal from roots,
// resolving each node's dependencies through provider exactly once.
//
// It returns the resulting dependency graph and the set of revisit edges:
// edges whose target was already visited, or already enqueued for the next
// level by an earlier sibling, at the moment the edge was discovered. True
// back edges (cycles) and cross edges (diamonds) both qualify; in a
// diamond, the second-discovered edge into the shared dependency is the
// one recorded. An edge into a node that merely shares the current level
// and has not been visited yet is not a revisit.
//
// Frontiers are explicit slices processed level by level, so traversal
// depth is bounded only by memory, not the call stack. A provider error
// aborts the build; no partial graph is returned.
func Build(ctx context.Context, provider Provider, roots ...string) (Graph, EdgeSet, error) {
	graph := Graph{}
	revisits := EdgeSet{}
	visited := Set{}

	frontier := make([]string, 0, len(roots))
	frontier = append(frontier, roots...)

	for len(frontier) > 0 {
		var next []string
		enqueued := Set{}

		for _, node := range frontier {
			if visited.Has(node) {
				continue
			}
			visited.Add(node)

			neighbors, err := provider.Neighbors(ctx, node)
			if err != nil {
				return nil, nil, err
			}

			// Entry exists even for leaf nodes with zero dependencies.
			deps := graph.ensure(node)
			for _, nb := range neighbors {
				deps.Add(nb)
				if visited.Has(nb) || enqueued.Has(nb) {
					revisits.Add(Edge{From: node, To: nb})
				} else {
					enqueued.Add(nb)
					next = append(next, nb)
				}
			}
		}

		frontier = next
	}

	return graph, revisits, nil
}
