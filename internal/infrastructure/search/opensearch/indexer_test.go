package opensearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

func newTestIndexer(t *testing.T, serverURL string) *Indexer {
	t.Helper()
	idx := NewIndexer(newTestClient(t, serverURL), logging.NewNopLogger())
	idx.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return idx
}

func TestEnsureIndexCreates(t *testing.T) {
	var createdPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			createdPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"geo_point"`)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"acknowledged": true, "shards_acknowledged": true, "index": "veritrav-places"}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newTestIndexer(t, server.URL).EnsureIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/veritrav-places", createdPath)
}

func TestEnsureIndexAlreadyExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "resource_already_exists_exception", "reason": "index [veritrav-places] already exists"}, "status": 400}`))
	}))
	defer server.Close()

	err := newTestIndexer(t, server.URL).EnsureIndex(context.Background())
	assert.NoError(t, err, "an existing index is not an error")
}

func TestIndexPlaceUpserts(t *testing.T) {
	var paths []string
	var lastDoc placeDoc
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &lastDoc))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_index": "veritrav-places", "_id": "x", "result": "created"}`))
	}))
	defer server.Close()

	indexer := newTestIndexer(t, server.URL)
	p := place.Place{
		Name:     "스타벅스 강남점",
		Address:  "서울 강남구 테헤란로 101",
		Category: "카페",
		Rating:   4.2,
		Coord:    &place.Coordinate{Lat: 37.4981, Lng: 127.0276},
		Verified: true,
	}

	require.NoError(t, indexer.IndexPlace(context.Background(), "강남", p))
	require.NoError(t, indexer.IndexPlace(context.Background(), "강남", p))

	require.Len(t, paths, 2)
	assert.Equal(t, paths[0], paths[1],
		"same place and region must map to the same document ID")
	assert.True(t, strings.HasPrefix(paths[0], "/veritrav-places/_doc/"))

	assert.Equal(t, "스타벅스 강남점", lastDoc.Name)
	assert.Equal(t, "강남", lastDoc.Region)
	assert.True(t, lastDoc.Verified)
	assert.Equal(t, "2026-03-01T12:00:00Z", lastDoc.IndexedAt)
	require.NotNil(t, lastDoc.Location)
	assert.InDelta(t, 127.0276, lastDoc.Location.Lon, 0.0001)
}

func TestDocumentIDNormalizesName(t *testing.T) {
	assert.Equal(t, documentID("강남", "스타벅스"), documentID("강남", " 스타벅스 "),
		"whitespace variants must collapse to one document")
	assert.NotEqual(t, documentID("강남", "스타벅스"), documentID("홍대", "스타벅스"),
		"the same place name in a different region is a different document")
}

func TestIndexAcceptedAbsorbsFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error": {"type": "unavailable_shards_exception", "reason": "down"}, "status": 503}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_index": "veritrav-places", "_id": "x", "result": "created"}`))
	}))
	defer server.Close()

	indexer := newTestIndexer(t, server.URL)
	places := []place.Place{
		{Name: "실패하는곳", Address: "서울"},
		{Name: "성공하는곳", Address: "서울"},
	}
	indexed := indexer.IndexAccepted(context.Background(), "서울", places)
	assert.Equal(t, 1, indexed)
}

//Personal.AI order the ending
