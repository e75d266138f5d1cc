// Package httputil provides HTTP plumbing shared by registry clients:
// retry with exponential backoff for transient failures and a file-based
// JSON cache for responses.
//
// The cache is transport-level only. Graph state is rebuilt fresh on every
// run; caching here merely avoids re-downloading identical metadata
// documents between runs. Use a zero TTL for entries that never expire,
// or bypass the cache entirely for a forced refresh.
package httputil
