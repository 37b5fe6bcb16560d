package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

func TestSearchParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, localSearchPath, r.URL.Path)
		assert.Equal(t, "서울 맛집", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("display"))
		assert.Equal(t, "id", r.Header.Get("X-Search-Client-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 2,
			"items": [
				{
					"title": "<b>광화문</b> 국밥",
					"category": "음식점>한식",
					"roadAddress": "서울 종로구 세종대로 99",
					"mapy": "375735000", "mapx": "1269788000"
				},
				{
					"title": "이름만 있는 곳",
					"address": "서울 중구 어딘가",
					"mapy": "", "mapx": ""
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, ClientID: "id", ClientSecret: "secret"}, logging.NewNopLogger())

	places, err := client.Search(context.Background(), "서울", "맛집", 5)
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "광화문 국밥", places[0].Name, "highlight markup is stripped")
	assert.Equal(t, "서울 종로구 세종대로 99", places[0].Address)
	assert.True(t, places[0].PrimarySource)
	require.NotNil(t, places[0].Coord)
	assert.InDelta(t, 37.5735, places[0].Coord.Lat, 1e-4)
	assert.InDelta(t, 126.9788, places[0].Coord.Lng, 1e-4)

	assert.Nil(t, places[1].Coord, "missing coordinates stay nil, never defaulted")
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, logging.NewNopLogger())

	_, err := client.Search(context.Background(), "서울", "맛집", 5)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProviderUnavailable, apperrors.GetCode(err))
}

func TestSearchConnectionRefused(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, logging.NewNopLogger())
	_, err := client.Search(context.Background(), "서울", "맛집", 5)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProviderUnavailable, apperrors.GetCode(err))
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng string
		wantNil  bool
	}{
		{"valid", "375000000", "1270000000", false},
		{"empty", "", "", true},
		{"garbage", "abc", "1270000000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord := parseCoord(tt.lat, tt.lng)
			if tt.wantNil {
				assert.Nil(t, coord)
			} else {
				require.NotNil(t, coord)
				assert.InDelta(t, 37.5, coord.Lat, 1e-9)
			}
		})
	}
}

//Personal.AI order the ending
