// Package depgraph builds and inverts package dependency graphs.
//
// A [Graph] maps each package name to the set of its direct dependencies.
// [Build] runs a level-synchronous breadth-first traversal over a
// [Provider], recording revisit edges: edges whose target was already
// visited, or already enqueued for the next level by an earlier sibling.
// Revisit edges cover both true cycles and diamond (shared sub-dependency)
// shapes; they are deliberately not a precise cycle detector.
//
// [Reverse] inverts a graph, and [Dependents] reuses the same traversal
// over the inverted graph to answer "who transitively depends on this
// package". All graph values are plain maps built fresh per call; nothing
// in this package carries state between builds.
package depgraph
