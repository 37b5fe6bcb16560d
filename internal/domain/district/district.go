// Package district carries the static per-city district definitions used to
// cluster places for route construction.  The tables are deliberately plain
// data: centers, characteristics, and transit hubs, keyed by city then
// district name.
package district

import "github.com/veritrav/veritrav/internal/domain/place"

// District is a named sub-region of a city with a representative center
// coordinate.  Characteristics drive travel-style matching; TransitHubs are
// informational only.
type District struct {
	Name            string           `json:"name"`
	Center          place.Coordinate `json:"center"`
	Characteristics []string         `json:"characteristics,omitempty"`
	TransitHubs     []string         `json:"transit_hubs,omitempty"`
}

// table maps city → ordered district list.  Order matters: cluster seeding
// and tie-breaks are first-encountered, so the tables must stay stable.
var table = map[string][]District{
	"Seoul": {
		{
			Name:            "강남구",
			Center:          place.Coordinate{Lat: 37.5173, Lng: 127.0473},
			Characteristics: []string{"쇼핑", "트렌디", "고급", "카페"},
			TransitHubs:     []string{"강남역", "신사역", "압구정역", "선릉역"},
		},
		{
			Name:            "종로구",
			Center:          place.Coordinate{Lat: 37.5735, Lng: 126.9788},
			Characteristics: []string{"전통", "문화", "역사", "궁궐"},
			TransitHubs:     []string{"종각역", "안국역", "경복궁역", "광화문역"},
		},
		{
			Name:            "중구",
			Center:          place.Coordinate{Lat: 37.5640, Lng: 126.9970},
			Characteristics: []string{"쇼핑", "전통시장", "관광", "야경"},
			TransitHubs:     []string{"명동역", "을지로입구역", "동대문역", "회현역"},
		},
		{
			Name:            "마포구",
			Center:          place.Coordinate{Lat: 37.5663, Lng: 126.9019},
			Characteristics: []string{"젊음", "클럽", "카페", "예술"},
			TransitHubs:     []string{"홍대입구역", "상수역", "망원역", "디지털미디어시티역"},
		},
		{
			Name:            "송파구",
			Center:          place.Coordinate{Lat: 37.5145, Lng: 127.1059},
			Characteristics: []string{"가족", "놀이공원", "쇼핑몰", "한강"},
			TransitHubs:     []string{"잠실역", "석촌역", "송파역", "올림픽공원역"},
		},
		{
			Name:            "영등포구",
			Center:          place.Coordinate{Lat: 37.5264, Lng: 126.8962},
			Characteristics: []string{"한강", "야경", "쇼핑", "비즈니스"},
			TransitHubs:     []string{"여의도역", "영등포구청역", "여의나루역"},
		},
	},
	"Busan": {
		{
			Name:            "해운대구",
			Center:          place.Coordinate{Lat: 35.1631, Lng: 129.1635},
			Characteristics: []string{"해변", "리조트", "야경", "해산물"},
			TransitHubs:     []string{"해운대역", "동백역"},
		},
		{
			Name:            "중구",
			Center:          place.Coordinate{Lat: 35.1014, Lng: 129.0320},
			Characteristics: []string{"전통시장", "해산물", "관광", "항구"},
			TransitHubs:     []string{"남포역", "자갈치역", "부산역"},
		},
	},
}

// ByCity returns the district definitions for the given city, or nil when
// the city has no table.  The returned slice must not be mutated.
func ByCity(city string) []District {
	return table[city]
}

// Cities returns the set of cities with district tables, in no particular
// order.
func Cities() []string {
	cities := make([]string, 0, len(table))
	for city := range table {
		cities = append(cities, city)
	}
	return cities
}

//Personal.AI order the ending
