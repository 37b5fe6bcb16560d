package cache

import (
	"context"
	"sync"
	"time"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// memoryEntry pairs a value with its absolute expiry instant.
type memoryEntry struct {
	places    []place.Place
	expiresAt time.Time
}

// MemoryStore is the in-process Store backend.  It is safe for concurrent
// use and intended both for single-node deployments and as the fallback
// when Redis is unavailable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	logger  logging.Logger
}

// MemoryOption customizes a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces the time source, used by tests to step past expiry
// without sleeping.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore builds an empty in-process store with the default TTL.
func NewMemoryStore(logger logging.Logger, opts ...MemoryOption) *MemoryStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  logger.Named("cache.memory"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements Store.  An expired entry is removed eagerly and reported
// as a miss.
func (s *MemoryStore) Get(_ context.Context, key string) ([]place.Place, bool, error) {
	full := keyPrefix + key

	s.mu.RLock()
	entry, ok := s.entries[full]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry since the read.
		if cur, still := s.entries[full]; still && !s.now().Before(cur.expiresAt) {
			delete(s.entries, full)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	// Copy out so callers cannot mutate the cached slice.
	out := make([]place.Place, len(entry.places))
	copy(out, entry.places)
	return out, true, nil
}

// Set implements Store, overwriting any existing entry under key.
func (s *MemoryStore) Set(_ context.Context, key string, places []place.Place) error {
	stored := make([]place.Place, len(places))
	copy(stored, places)

	s.mu.Lock()
	s.entries[keyPrefix+key] = memoryEntry{
		places:    stored,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

// Cleanup implements Store: it sweeps the map and drops every expired
// entry, returning the removal count.
func (s *MemoryStore) Cleanup(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug("expired cache entries removed", logging.Int("count", removed))
	}
	return removed, nil
}

// Len reports the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

//Personal.AI order the ending
