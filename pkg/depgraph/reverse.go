package depgraph

import "context"

// Reverse inverts a dependency graph: for every edge u -> v in g, the
// result contains v -> u. Every key of g keeps an entry in the result even
// when nothing depends on it, so the inverted graph is total over the same
// node set.
func Reverse(g Graph) Graph {
	rev := make(Graph, len(g))
	for node, deps := range g {
		rev.ensure(node)
		for dep := range deps {
			rev.Add(dep, node)
		}
	}
	return rev
}

// lookupProvider serves neighbors straight out of an in-memory graph.
type lookupProvider Graph

func (p lookupProvider) Neighbors(_ context.Context, name string) ([]string, error) {
	return Graph(p).Deps(name), nil
}

// Dependents returns every package that transitively depends on root,
// excluding root itself. It inverts the graph and reuses [Build] for the
// traversal, which deduplicates and terminates even when the inverted
// graph contains cycles.
func Dependents(ctx context.Context, g Graph, root string) (Set, error) {
	reached, _, err := Build(ctx, lookupProvider(Reverse(g)), root)
	if err != nil {
		return nil, err
	}

	dependents := Set{}
	for node := range reached {
		if node != root {
			dependents.Add(node)
		}
	}
	return dependents, nil
}
