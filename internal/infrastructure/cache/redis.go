package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/veritrav/veritrav/pkg/errors"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// RedisStore is the Redis-backed Store backend.  Entries are JSON encoded
// and expire server-side via the key TTL, so Cleanup has nothing to sweep.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger logging.Logger
}

// RedisOption customizes a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisTTL overrides the default entry lifetime.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewRedisStore wraps an existing Redis client as a Store.
func NewRedisStore(client redis.UniversalClient, logger logging.Logger, opts ...RedisOption) *RedisStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &RedisStore{
		client: client,
		ttl:    DefaultTTL,
		logger: logger.Named("cache.redis"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) ([]place.Place, bool, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.ErrCodeCacheUnavailable, "redis get failed")
	}

	var places []place.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		// A corrupt entry is unrecoverable; drop it and report a miss so
		// the caller refetches.
		s.logger.Warn("corrupt cache entry dropped", logging.String("key", key), logging.Err(err))
		s.client.Del(ctx, keyPrefix+key)
		return nil, false, nil
	}
	return places, true, nil
}

// Set implements Store using a single SET with TTL.
func (s *RedisStore) Set(ctx context.Context, key string, places []place.Place) error {
	raw, err := json.Marshal(places)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "encode cache entry")
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "redis set failed")
	}
	return nil
}

// Cleanup implements Store.  Redis expires keys natively, so there is
// never anything to remove here.
func (s *RedisStore) Cleanup(context.Context) (int, error) {
	return 0, nil
}

// Ping verifies connectivity, used at startup to decide whether to fall
// back to the in-process store.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheUnavailable, "redis ping failed")
	}
	return nil
}

//Personal.AI order the ending
