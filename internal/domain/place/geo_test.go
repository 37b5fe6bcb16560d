package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	gyeongbokgung = Coordinate{Lat: 37.5796, Lng: 126.9770}
	nearbyPoint   = Coordinate{Lat: 37.5800, Lng: 126.9775}
	haeundae      = Coordinate{Lat: 35.1631, Lng: 129.1635}
)

func TestHaversineMeters_KnownDistances(t *testing.T) {
	t.Parallel()

	// Zero distance.
	assert.Equal(t, 0.0, HaversineMeters(gyeongbokgung, gyeongbokgung))

	// A point ~60 m from Gyeongbokgung.
	d := HaversineMeters(gyeongbokgung, nearbyPoint)
	assert.InDelta(t, 62, d, 5)

	// Seoul to Busan is roughly 320 km.
	assert.InDelta(t, 320_000, HaversineMeters(gyeongbokgung, haeundae), 15_000)
}

func TestHaversineKm_MatchesMetersVariant(t *testing.T) {
	t.Parallel()

	km := HaversineKm(gyeongbokgung, haeundae)
	m := HaversineMeters(gyeongbokgung, haeundae)
	assert.InDelta(t, m/1000, km, 1e-6)
}

func TestHaversine_Symmetry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HaversineMeters(gyeongbokgung, haeundae), HaversineMeters(haeundae, gyeongbokgung))
}

func TestSameLocation(t *testing.T) {
	t.Parallel()

	// ~62 m apart: outside the default 50 m threshold, inside a 100 m one.
	assert.False(t, SameLocation(gyeongbokgung, nearbyPoint, SameLocationThresholdMeters))
	assert.True(t, SameLocation(gyeongbokgung, nearbyPoint, 100))
	assert.True(t, SameLocation(gyeongbokgung, gyeongbokgung, SameLocationThresholdMeters))
}

func TestResolveCoord_PreferenceOrder(t *testing.T) {
	t.Parallel()

	direct := &Coordinate{Lat: 37.50, Lng: 127.00}
	fromDetail := &Coordinate{Lat: 37.51, Lng: 127.01}

	cases := []struct {
		name string
		p    Place
		want *Coordinate
	}{
		{"direct wins", Place{Coord: direct, Detail: &Detail{Coord: fromDetail}}, direct},
		{"detail fallback", Place{Detail: &Detail{Coord: fromDetail}}, fromDetail},
		{"nothing resolves", Place{Detail: &Detail{}}, nil},
		{"no detail at all", Place{}, nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.p.ResolveCoord())
		})
	}
}

func TestVerificationSignals(t *testing.T) {
	t.Parallel()

	p := Place{
		Name:          "국립중앙박물관",
		PrimarySource: true,
		Detail:        &Detail{Name: "National Museum of Korea", Rating: 4.7},
		Reviews:       []ReviewSnippet{{Title: "방문 후기"}},
	}
	s := p.VerificationSignals()
	assert.True(t, s.PrimaryHit)
	assert.True(t, s.SecondaryHit)
	assert.True(t, s.HasReview)
	assert.Equal(t, 3, s.Count())

	bare := Place{Name: "이름만 있는 곳"}
	assert.Equal(t, 0, bare.VerificationSignals().Count())
}

//Personal.AI order the ending
