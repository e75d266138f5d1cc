// Package render turns dependency graphs into text.
//
// All renderers are pure functions of a [depgraph.Graph] (plus revisit
// edges where noted): they mutate nothing and emit nodes and edges in
// lexicographic order, so output is deterministic and diff-friendly.
// Three formats are provided: a tabular listing ([Table]), a Graphviz DOT
// description ([ToDOT]), and a box-drawing ASCII tree ([Tree]).
// [RenderSVG] rasterizes the DOT output via Graphviz.
package render
