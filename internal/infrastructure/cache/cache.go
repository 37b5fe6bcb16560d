// Package cache provides the keyed, TTL-bounded storage of previously
// fetched candidate-place sets.  Two behaviorally interchangeable backends
// implement the same Store contract: a Redis-backed store that persists
// across process restarts, and an in-process map intended as a
// degraded-durability fallback (entries are lost on restart; filtering
// results are never silently affected, only refetch frequency).
//
// The cache deliberately has no single-flight protection: concurrent
// callers missing on the same key may both trigger a redundant external
// fetch.  Cache values are idempotent to overwrite, so this is a
// performance cost, not a correctness bug.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/veritrav/veritrav/internal/domain/place"
)

// DefaultTTL is the fixed lifetime of a cache entry from write time.
// Crawled place data goes stale slowly; a month keeps provider traffic low
// without serving dead places for long.
const DefaultTTL = 30 * 24 * time.Hour

// keyPrefix namespaces every cache key so that unrelated data sharing the
// same backend (a common Redis deployment shape) cannot collide.
const keyPrefix = "crawl:"

// Store is the cache contract injected into the discovery orchestrator.
// Storing under an existing key overwrites rather than merges; a read after
// the entry's expiry behaves as a miss and makes the entry eligible for
// removal.
type Store interface {
	// Get returns the cached places for key and whether the key was present
	// and unexpired.  An expired entry is a miss.
	Get(ctx context.Context, key string) ([]place.Place, bool, error)

	// Set stores places under key with the store's fixed TTL, overwriting
	// any existing entry.
	Set(ctx context.Context, key string, places []place.Place) error

	// Cleanup removes expired entries and returns the number removed.
	// Backends whose engine expires keys natively return 0.
	Cleanup(ctx context.Context) (int, error)
}

// Key derives the deterministic cache key for a (region, keyword) pair:
// lowercased, with spaces replaced by underscores.  A blank region yields a
// keyword-only key.
func Key(region, keyword string) string {
	region = strings.TrimSpace(region)
	keyword = strings.TrimSpace(keyword)

	var raw string
	if region == "" {
		raw = keyword
	} else {
		raw = region + "_" + keyword
	}
	return strings.ReplaceAll(strings.ToLower(raw), " ", "_")
}

//Personal.AI order the ending
