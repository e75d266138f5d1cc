// Package pypi resolves package dependencies through a PyPI-style JSON
// metadata API.
//
// Metadata for the root package is pinned to a configured version
// ({base}/{name}/{version}/json); every other package resolves to its
// latest release ({base}/{name}/json). Dependency names are extracted from
// the info.requires_dist list by stripping environment markers and taking
// the leading identifier of each requirement string. Names are matched
// exactly as the index reports them; no case folding or PEP 503
// normalization is applied.
package pypi
