// Package pkg provides the core libraries for pkggraph dependency resolution.
//
// The pkg directory is organized into:
//
//   - [depgraph] - Graph construction (breadth-first resolution, revisit
//     detection, graph reversal)
//   - [render] - Output formats (table, Graphviz DOT, ASCII tree, SVG)
//   - [registry] - Package index clients (PyPI-style JSON metadata API)
//   - [fixture] - Local fixture-file dependency repositories for test mode
//   - [config] - TOML run configuration
//   - [httputil] - HTTP retry and response-cache plumbing
//   - [errors] - Structured errors with machine-readable codes
//   - [buildinfo] - Build-time version information
//
// The typical data flow:
//
//	TOML config
//	     ↓
//	[registry/pypi] or [fixture] (neighbor provider)
//	     ↓
//	[depgraph] (breadth-first graph build)
//	     ↓
//	[render] (table / DOT / tree / SVG output)
//
// [depgraph]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/depgraph
// [render]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/render
// [registry]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/registry
// [registry/pypi]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/registry/pypi
// [fixture]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/fixture
// [config]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/config
// [httputil]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/HIlight3R/package-manager/pkg/buildinfo
package pkg
