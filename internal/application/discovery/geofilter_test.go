package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

var seoulRegion = place.Region{
	Center:      place.Coordinate{Lat: 37.50, Lng: 127.00},
	RadiusKm:    3,
	Label:       "서울 강남",
	Specificity: place.SpecificityDistrict,
}

func TestFilterByDistance(t *testing.T) {
	f := NewGeoFilter(logging.NewNopLogger())

	places := []place.Place{
		{Name: "far", Coord: &place.Coordinate{Lat: 37.80, Lng: 127.00}},     // ~33 km
		{Name: "near", Coord: &place.Coordinate{Lat: 37.51, Lng: 127.00}},    // ~1.1 km
		{Name: "nearest", Coord: &place.Coordinate{Lat: 37.501, Lng: 127.0}}, // ~0.1 km
		{Name: "coordless"},
	}

	kept, excluded := f.FilterByDistance(places, seoulRegion)

	require.Len(t, kept, 2)
	assert.Equal(t, "nearest", kept[0].Name, "output sorted ascending by distance")
	assert.Equal(t, "near", kept[1].Name)
	assert.InDelta(t, 1.1, kept[1].DistanceFromCenterKm, 0.1)
	assert.True(t, kept[0].WithinRequestedArea)

	// Dropped places keep their computed annotation.
	require.Len(t, excluded, 2)
	assert.Equal(t, "far", excluded[0].Name)
	assert.Equal(t, ExclusionOutsideRadius, excluded[0].Reason)
	assert.InDelta(t, 33, excluded[0].DistanceKm, 1)
	assert.Equal(t, "coordless", excluded[1].Name)
	assert.Equal(t, ExclusionMissingCoordinates, excluded[1].Reason)
}

func TestFilterByDistanceResolvesDetailCoordinates(t *testing.T) {
	f := NewGeoFilter(logging.NewNopLogger())

	places := []place.Place{
		{
			Name:   "detail-coord",
			Detail: &place.Detail{Coord: &place.Coordinate{Lat: 37.505, Lng: 127.00}},
		},
	}

	kept, excluded := f.FilterByDistance(places, seoulRegion)
	require.Len(t, kept, 1)
	assert.Empty(t, excluded)
}

func TestFilterByAddress(t *testing.T) {
	f := NewGeoFilter(logging.NewNopLogger())
	places := []place.Place{
		{Name: "a", Address: "서울 강남구 역삼동 12"},
		{Name: "b", Address: "서울 종로구 삼청동 3"},
	}

	assert.Len(t, f.FilterByAddress(places, "", ""), 2, "no constraints is a pass-through")
	kept := f.FilterByAddress(places, "강남구", "")
	require.Len(t, kept, 1)
	assert.Equal(t, "a", kept[0].Name)

	kept = f.FilterByAddress(places, "종로구", "삼청동")
	require.Len(t, kept, 1)
	assert.Equal(t, "b", kept[0].Name)

	assert.Empty(t, f.FilterByAddress(places, "마포구", ""))
}

func TestRerankByDistanceAndRating(t *testing.T) {
	f := NewGeoFilter(logging.NewNopLogger())

	places := []place.Place{
		{Name: "far-great", DistanceFromCenterKm: 2.0, Rating: 5.0},
		{Name: "near-poor", DistanceFromCenterKm: 0.0, Rating: 1.0},
	}

	ranked := f.RerankByDistanceAndRating(places, 0.4, 0.6)
	require.Len(t, ranked, 2)

	// near-poor: dist 10*(1-0/2)=10 → 4.0; rating 1/5*10=2 → 1.2; total 5.2
	// far-great: dist 10*(1-2/2)=0 → 0.0; rating 5/5*10=10 → 6.0; total 6.0
	assert.Equal(t, "far-great", ranked[0].Name)
	assert.InDelta(t, 6.0, ranked[0].FinalScore, 1e-9)
	assert.InDelta(t, 5.2, ranked[1].FinalScore, 1e-9)
}

func TestRerankMaxDistanceFloor(t *testing.T) {
	f := NewGeoFilter(logging.NewNopLogger())

	// All distances below 1 km: the divisor floors at 1 so no score
	// exceeds the scale.
	places := []place.Place{
		{Name: "a", DistanceFromCenterKm: 0.2, Rating: 4.0},
		{Name: "b", DistanceFromCenterKm: 0.4, Rating: 4.0},
	}
	ranked := f.RerankByDistanceAndRating(places, 0.4, 0.6)
	assert.Equal(t, "a", ranked[0].Name)
	assert.LessOrEqual(t, ranked[0].DistanceScore, 10.0)
}

func TestRerankStableOnTies(t *testing.T) {
	f := NewGeoFilter(logging.NewNopLogger())
	places := []place.Place{
		{Name: "first", DistanceFromCenterKm: 1.0, Rating: 3.0},
		{Name: "second", DistanceFromCenterKm: 1.0, Rating: 3.0},
	}
	ranked := f.RerankByDistanceAndRating(places, 0.4, 0.6)
	assert.Equal(t, "first", ranked[0].Name, "ties keep the incoming order")
	assert.Equal(t, "second", ranked[1].Name)
}

//Personal.AI order the ending
