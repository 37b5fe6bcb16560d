package discovery

import "github.com/veritrav/veritrav/internal/domain/place"

// MinViableItinerary is the smallest accepted-place count that still makes
// a usable itinerary; below it the curated fallback list backfills.
const MinViableItinerary = 3

// fallbackPlaces is the curated backfill list: well-known, always-open
// public spots that need no verification.  They still pass through the
// run's dedup check so a fallback never duplicates an accepted place.
var fallbackPlaces = []place.Place{
	{
		Name:         "명동 쇼핑거리",
		Address:      "서울시 중구 명동길",
		Category:     "쇼핑",
		Rating:       4.2,
		Coord:        &place.Coordinate{Lat: 37.5636, Lng: 126.9834},
		Verified:     true,
		QualityScore: 4.0,
	},
	{
		Name:         "홍대 걷고싶은거리",
		Address:      "서울시 마포구 서교동",
		Category:     "관광지",
		Rating:       4.1,
		Coord:        &place.Coordinate{Lat: 37.5563, Lng: 126.9236},
		Verified:     true,
		QualityScore: 4.0,
	},
	{
		Name:         "한강공원 여의도",
		Address:      "서울시 영등포구 여의동로",
		Category:     "관광지",
		Rating:       4.3,
		Coord:        &place.Coordinate{Lat: 37.5285, Lng: 126.9335},
		Verified:     true,
		QualityScore: 4.2,
	},
}

// FallbackPlaces returns up to needed places from the curated list that
// do not duplicate anything already accepted in register, recording each
// returned place as used.
func FallbackPlaces(register *QualityRegister, needed int) []place.Place {
	if needed <= 0 {
		return nil
	}

	added := make([]place.Place, 0, needed)
	for _, p := range fallbackPlaces {
		if len(added) >= needed {
			break
		}
		if register.IsDuplicate(p.Name, p.Address, p.Coord) {
			continue
		}
		register.AddToUsed(p.Name, p.Address, p.Coord)
		added = append(added, p)
	}
	return added
}

//Personal.AI order the ending
