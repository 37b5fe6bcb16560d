package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

func samplePlaces() []place.Place {
	return []place.Place{
		{Name: "카페 온도", Address: "서울 종로구 삼청로 12", Rating: 4.4},
		{Name: "광화문 국밥", Address: "서울 종로구 세종대로 99", Rating: 4.1},
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		keyword string
		want    string
	}{
		{"region and keyword", "서울", "맛집", "서울_맛집"},
		{"lowercased", "Seoul", "Cafe", "seoul_cafe"},
		{"spaces replaced", "서울 강남구", "브런치 카페", "서울_강남구_브런치_카페"},
		{"blank region", "", "맛집", "맛집"},
		{"surrounding whitespace trimmed", "  서울 ", " 맛집 ", "서울_맛집"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.region, tt.keyword))
		})
	}
}

func TestKeyDeterministic(t *testing.T) {
	assert.Equal(t, Key("서울", "관광지"), Key("서울", "관광지"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(logging.NewNopLogger())
	ctx := context.Background()
	key := Key("서울", "맛집")

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "empty store must miss")

	require.NoError(t, store.Set(ctx, key, samplePlaces()))

	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, samplePlaces(), got)
}

func TestMemoryStoreOverwrites(t *testing.T) {
	store := NewMemoryStore(logging.NewNopLogger())
	ctx := context.Background()
	key := Key("서울", "카페")

	require.NoError(t, store.Set(ctx, key, samplePlaces()))
	replacement := []place.Place{{Name: "새 카페", Rating: 4.9}}
	require.NoError(t, store.Set(ctx, key, replacement))

	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, replacement, got, "Set must overwrite, not merge")
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(logging.NewNopLogger(), WithClock(func() time.Time { return now }))
	ctx := context.Background()
	key := Key("서울", "관광지")

	require.NoError(t, store.Set(ctx, key, samplePlaces()))

	// Just before expiry the entry is still served.
	now = now.Add(DefaultTTL - time.Second)
	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	// At and past expiry the read behaves exactly like a miss.
	now = now.Add(2 * time.Second)
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "expired entry is removed on read")
}

func TestMemoryStoreCleanup(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(logging.NewNopLogger(), WithClock(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Key("서울", "맛집"), samplePlaces()))
	now = now.Add(DefaultTTL + time.Minute)
	require.NoError(t, store.Set(ctx, Key("부산", "맛집"), samplePlaces()))

	removed, err := store.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok, err := store.Get(ctx, Key("부산", "맛집"))
	require.NoError(t, err)
	assert.True(t, ok, "unexpired entry survives cleanup")
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	store := NewMemoryStore(logging.NewNopLogger())
	ctx := context.Background()
	key := Key("서울", "쇼핑")

	require.NoError(t, store.Set(ctx, key, samplePlaces()))

	first, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "카페 온도", second[0].Name, "caller mutation must not leak into the cache")
}

//Personal.AI order the ending
