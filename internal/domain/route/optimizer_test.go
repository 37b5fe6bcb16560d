package route

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritrav/veritrav/internal/domain/district"
	"github.com/veritrav/veritrav/internal/domain/place"
)

func coord(lat, lng float64) *place.Coordinate {
	return &place.Coordinate{Lat: lat, Lng: lng}
}

func namedPlace(name string, lat, lng float64) place.Place {
	return place.Place{Name: name, Coord: coord(lat, lng)}
}

func TestClusterByDistrict_NearestCenterAssignment(t *testing.T) {
	t.Parallel()

	districts := district.ByCity("Seoul")
	places := []place.Place{
		namedPlace("경복궁", 37.5796, 126.9770),      // 종로구
		namedPlace("명동성당", 37.5633, 126.9873),     // 중구
		namedPlace("코엑스", 37.5116, 127.0594),      // 강남구
		namedPlace("홍대 걷고싶은거리", 37.5563, 126.9236), // 마포구
	}

	clusters := ClusterByDistrict(places, districts)
	byLabel := map[string][]place.Place{}
	for _, c := range clusters {
		byLabel[c.Label] = c.Places
	}

	require.Len(t, clusters, 4)
	assert.Equal(t, "경복궁", byLabel["종로구"][0].Name)
	assert.Equal(t, "명동성당", byLabel["중구"][0].Name)
	assert.Equal(t, "코엑스", byLabel["강남구"][0].Name)
	assert.Equal(t, "홍대 걷고싶은거리", byLabel["마포구"][0].Name)
}

func TestClusterByDistrict_NoSplittingOrDuplication(t *testing.T) {
	t.Parallel()

	districts := district.ByCity("Seoul")
	places := []place.Place{
		namedPlace("a", 37.52, 127.04),
		namedPlace("b", 37.57, 126.98),
		namedPlace("c", 37.56, 126.99),
	}

	total := 0
	seen := map[string]bool{}
	for _, c := range ClusterByDistrict(places, districts) {
		total += len(c.Places)
		for _, p := range c.Places {
			assert.False(t, seen[p.Name], "place %s assigned twice", p.Name)
			seen[p.Name] = true
		}
	}
	assert.Equal(t, len(places), total)
}

func TestClusterByDistrict_EmptyInputs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ClusterByDistrict(nil, district.ByCity("Seoul")))
	assert.Nil(t, ClusterByDistrict([]place.Place{namedPlace("x", 1, 1)}, nil))
}

func TestNearestNeighborClusterOrder_FromExplicitStart(t *testing.T) {
	t.Parallel()

	far := Cluster{Label: "far", Center: place.Coordinate{Lat: 37.60, Lng: 127.10}}
	mid := Cluster{Label: "mid", Center: place.Coordinate{Lat: 37.55, Lng: 127.05}}
	near := Cluster{Label: "near", Center: place.Coordinate{Lat: 37.50, Lng: 127.00}}

	ordered := NearestNeighborClusterOrder([]Cluster{far, mid, near}, coord(37.49, 126.99))

	require.Len(t, ordered, 3)
	assert.Equal(t, []string{"near", "mid", "far"},
		[]string{ordered[0].Label, ordered[1].Label, ordered[2].Label})
}

func TestNearestNeighborClusterOrder_DefaultStartIsFirstCluster(t *testing.T) {
	t.Parallel()

	a := Cluster{Label: "a", Center: place.Coordinate{Lat: 37.50, Lng: 127.00}}
	b := Cluster{Label: "b", Center: place.Coordinate{Lat: 37.70, Lng: 127.00}}
	c := Cluster{Label: "c", Center: place.Coordinate{Lat: 37.52, Lng: 127.00}}

	ordered := NearestNeighborClusterOrder([]Cluster{a, b, c}, nil)
	// From a's own center: a (distance 0), then c, then b.
	assert.Equal(t, []string{"a", "c", "b"},
		[]string{ordered[0].Label, ordered[1].Label, ordered[2].Label})
}

func TestNearestNeighborPlaceOrder_SeedIsLexSmallestCoordinate(t *testing.T) {
	t.Parallel()

	places := []place.Place{
		namedPlace("north", 37.60, 127.00),
		namedPlace("south", 37.50, 127.00),
		namedPlace("middle", 37.55, 127.00),
	}

	ordered := NearestNeighborPlaceOrder(places)
	assert.Equal(t, []string{"south", "middle", "north"},
		[]string{ordered[0].Name, ordered[1].Name, ordered[2].Name})
}

func TestNearestNeighborPlaceOrder_Degenerate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NearestNeighborPlaceOrder(nil))

	single := []place.Place{namedPlace("only", 37.5, 127.0)}
	assert.Equal(t, single, NearestNeighborPlaceOrder(single))
}

func TestNearestNeighborPlaceOrder_Deterministic(t *testing.T) {
	t.Parallel()

	places := []place.Place{
		namedPlace("a", 37.5796, 126.9770),
		namedPlace("b", 37.5633, 126.9873),
		namedPlace("c", 37.5116, 127.0594),
		namedPlace("d", 37.5563, 126.9236),
		namedPlace("e", 37.5145, 127.1059),
	}

	first := NearestNeighborPlaceOrder(places)
	second := NearestNeighborPlaceOrder(places)
	require.Equal(t, first, second, "same input must always produce the same order")
}

func TestBuild_ClustersStayContiguous(t *testing.T) {
	t.Parallel()

	// Two clusters, five places; the final route must visit all of one
	// cluster's places before any of the other's.
	jongno := Cluster{
		Label:  "종로구",
		Center: place.Coordinate{Lat: 37.5735, Lng: 126.9788},
		Places: []place.Place{
			namedPlace("경복궁", 37.5796, 126.9770),
			namedPlace("인사동", 37.5744, 126.9856),
			namedPlace("북촌한옥마을", 37.5826, 126.9850),
		},
	}
	gangnam := Cluster{
		Label:  "강남구",
		Center: place.Coordinate{Lat: 37.5173, Lng: 127.0473},
		Places: []place.Place{
			namedPlace("코엑스", 37.5116, 127.0594),
			namedPlace("가로수길", 37.5219, 127.0227),
		},
	}

	r := Build([]Cluster{jongno, gangnam},
		NearestNeighborClusterOrder, NearestNeighborPlaceOrder, DefaultTravelTime,
		coord(37.5700, 126.9800))

	require.Len(t, r.Places, 5)

	jongnoNames := map[string]bool{"경복궁": true, "인사동": true, "북촌한옥마을": true}
	var labels []bool
	for _, p := range r.Places {
		labels = append(labels, jongnoNames[p.Name])
	}
	// Start near Jongno: the three Jongno places come first, never interleaved.
	assert.Equal(t, []bool{true, true, true, false, false}, labels)
}

func TestBuild_TotalsAndSegments(t *testing.T) {
	t.Parallel()

	c := Cluster{
		Label:  "중구",
		Center: place.Coordinate{Lat: 37.5640, Lng: 126.9970},
		Places: []place.Place{
			namedPlace("명동", 37.5636, 126.9834),
			namedPlace("남대문시장", 37.5590, 126.9776),
			namedPlace("청계천", 37.5696, 126.9783),
		},
	}

	r := Build([]Cluster{c}, NearestNeighborClusterOrder, NearestNeighborPlaceOrder, DefaultTravelTime, nil)

	require.Len(t, r.Segments, 2)
	sum := 0.0
	var dur time.Duration
	for _, s := range r.Segments {
		assert.Greater(t, s.DistanceKm, 0.0)
		assert.NotEmpty(t, s.Transport)
		sum += s.DistanceKm
		dur += s.Duration
	}
	assert.InDelta(t, sum, r.TotalDistanceKm, 1e-9)
	assert.Equal(t, dur, r.TotalDuration)
}

func TestBuild_FewerThanTwoPlaces(t *testing.T) {
	t.Parallel()

	r := Build(nil, NearestNeighborClusterOrder, NearestNeighborPlaceOrder, DefaultTravelTime, nil)
	assert.Empty(t, r.Places)
	assert.Zero(t, r.TotalDistanceKm)
	assert.Zero(t, r.TotalDuration)

	one := Cluster{Label: "x", Places: []place.Place{namedPlace("only", 37.5, 127.0)}}
	r = Build([]Cluster{one}, NearestNeighborClusterOrder, NearestNeighborPlaceOrder, DefaultTravelTime, nil)
	require.Len(t, r.Places, 1)
	assert.Empty(t, r.Segments)
	assert.Zero(t, r.TotalDistanceKm)
}

func TestDefaultTravelTime_Bands(t *testing.T) {
	t.Parallel()

	// 0.3 km walks at 12 min/km: 3.6 min, reported as whole seconds.
	assert.Equal(t, 3*time.Minute+36*time.Second, DefaultTravelTime(0.3))
	assert.Equal(t, 13*time.Minute, DefaultTravelTime(1.0))
	assert.Equal(t, 40*time.Minute, DefaultTravelTime(5.0))

	// Fractional-minute inputs stay on second granularity.
	assert.Zero(t, DefaultTravelTime(0.77)%time.Second)
}

func TestRecommendTransport_Bands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "도보", RecommendTransport(0.2))
	assert.Equal(t, "버스 또는 도보", RecommendTransport(1.5))
	assert.Equal(t, "지하철 또는 버스", RecommendTransport(4.2))
}

//Personal.AI order the ending
