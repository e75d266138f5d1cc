package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when a cached entry exists but has
// exceeded its time-to-live. The data is still on disk but is considered
// stale; callers should fetch fresh data and update the cache with
// [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache provides file-based caching of JSON-marshalable values.
//
// Each entry is stored as a JSON file whose name is the SHA-256 hash of the
// cache key, so arbitrary keys (URLs, package names with slashes) are safe.
// Entry freshness is judged by file modification time against the TTL; a
// TTL of 0 means entries never expire.
//
// A single Cache instance is not goroutine-safe, but separate instances
// (even in different processes) can share a directory.
//
// Use [Cache.Namespace] to create scoped views that prefix keys, keeping
// different data sources from colliding:
//
//	pypi := cache.Namespace("pypi:")
//	pypi.Set("requests", data) // stored under key "pypi:requests"
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// DefaultDir returns the default cache directory following the XDG
// convention: $XDG_CACHE_HOME/pkggraph if set, otherwise ~/.cache/pkggraph.
func DefaultDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "pkggraph"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "pkggraph"), nil
}

// NewCache creates a Cache that stores entries in dir with the given TTL.
// An empty dir selects [DefaultDir], which is created if missing.
// Directory creation is the only source of failure.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live duration for cache entries.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves a cached value by key and unmarshals it into v.
//
// Outcomes:
//   - (true, nil): cache hit, v populated.
//   - (false, nil): cache miss, v unchanged.
//   - (false, ErrExpired): entry exists but exceeded its TTL, v unchanged.
//   - (false, other error): I/O or unmarshal failure.
//
// Reads are non-mutating; Get never refreshes modification times.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores a value in the cache under the given key, overwriting any
// existing entry and resetting its TTL. The value must be JSON-marshalable.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the cache that prefixes all keys with prefix.
// The returned Cache shares the directory and TTL of its parent; calls can
// be chained to build hierarchical key spaces.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
