package pypi

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	apperrors "github.com/HIlight3R/package-manager/pkg/errors"
	"github.com/HIlight3R/package-manager/pkg/httputil"
	"github.com/HIlight3R/package-manager/pkg/registry"
)

// nameRE matches the leading bare identifier of a pip-style requirement,
// e.g. "urllib3" in "urllib3 (<3,>=1.21.1)".
var nameRE = regexp.MustCompile(`^[A-Za-z0-9_.\-]+`)

// Client provides access to a PyPI-compatible package index API.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a client for the index rooted at baseURL
// (e.g. "https://pypi.org/pypi"). Pass a nil cache to disable response
// caching.
func NewClient(baseURL string, cache *httputil.Cache) *Client {
	if cache != nil {
		cache = cache.Namespace("pypi:")
	}
	return &Client{
		Client:  registry.NewClient(cache),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// metadataURL builds the metadata endpoint for a package. An empty version
// selects the latest release.
func (c *Client) metadataURL(name, version string) string {
	if version == "" {
		return c.baseURL + "/" + name + "/json"
	}
	return c.baseURL + "/" + name + "/" + version + "/json"
}

// RequiresDist fetches the raw requires_dist entries for a package.
// An empty version selects the latest release. A null or absent
// requires_dist means the package declares no dependencies; that is not an
// error. If refresh is true the response cache is bypassed.
func (c *Client) RequiresDist(ctx context.Context, name, version string, refresh bool) ([]string, error) {
	key := name
	if version != "" {
		key = name + "@" + version
	}

	var reqs []string
	err := c.Cached(ctx, key, refresh, &reqs, func() error {
		var err error
		reqs, err = c.fetch(ctx, name, version)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *Client) fetch(ctx context.Context, name, version string) ([]string, error) {
	url := c.metadataURL(name, version)

	var data struct {
		Info json.RawMessage `json:"info"`
	}
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "fetch %s", url)
	}

	if len(data.Info) == 0 || string(data.Info) == "null" {
		return nil, apperrors.New(apperrors.ErrCodeFetch, "malformed metadata from %s: missing 'info' object", url)
	}

	var info struct {
		RequiresDist json.RawMessage `json:"requires_dist"`
	}
	if err := json.Unmarshal(data.Info, &info); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "malformed metadata from %s: invalid 'info' object", url)
	}

	if len(info.RequiresDist) == 0 || string(info.RequiresDist) == "null" {
		return nil, nil
	}

	var items []any
	if err := json.Unmarshal(info.RequiresDist, &items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "malformed metadata from %s: 'requires_dist' must be a list", url)
	}

	var reqs []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			reqs = append(reqs, s)
		}
	}
	return reqs, nil
}

// Requirements strips environment-marker suffixes from raw requires_dist
// entries, keeping the version-qualified requirement text for display.
// Entries that are empty after stripping are dropped.
func Requirements(raw []string) []string {
	var out []string
	for _, req := range raw {
		base, _, _ := strings.Cut(req, ";")
		if base = strings.TrimSpace(base); base != "" {
			out = append(out, base)
		}
	}
	return out
}

// DependencyNames reduces raw requires_dist entries to bare package names:
// the marker suffix after the first ';' is discarded, then the leading run
// of name characters is taken. Entries that yield no name are skipped.
func DependencyNames(raw []string) []string {
	var names []string
	for _, req := range raw {
		base, _, _ := strings.Cut(req, ";")
		if name := nameRE.FindString(strings.TrimSpace(base)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Provider resolves dependency names for the graph builder, memoizing
// results so each distinct package is fetched at most once per build.
type Provider struct {
	client  *Client
	root    string
	version string
	refresh bool
	memo    map[string][]string
}

// Provider creates a neighbor provider for one graph build. The root
// package is pinned to version; every other package resolves to its
// latest release. The memoization cache is owned by the returned value,
// so separate builds stay independent.
func (c *Client) Provider(root, version string, refresh bool) *Provider {
	return &Provider{
		client:  c,
		root:    root,
		version: version,
		refresh: refresh,
		memo:    map[string][]string{},
	}
}

// Neighbors returns the direct dependency names of a package.
func (p *Provider) Neighbors(ctx context.Context, name string) ([]string, error) {
	if deps, ok := p.memo[name]; ok {
		return deps, nil
	}

	version := ""
	if name == p.root {
		version = p.version
	}
	raw, err := p.client.RequiresDist(ctx, name, version, p.refresh)
	if err != nil {
		return nil, err
	}

	deps := DependencyNames(raw)
	p.memo[name] = deps
	return deps, nil
}
