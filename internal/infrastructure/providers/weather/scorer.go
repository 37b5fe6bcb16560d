// Package weather scores how suitable a place is for the forecast
// conditions.  The default implementation is a static category heuristic:
// outdoor categories score poorly on rainy dates, indoor ones well.
package weather

import (
	"context"
	"strings"

	"github.com/veritrav/veritrav/internal/domain/place"
)

// Category fragments matched against a place's free-text category.
var (
	outdoorFragments = []string{
		"공원", "산", "해변", "강", "섬", "호수", "거리", "시장", "마을", "전망대",
	}
	indoorFragments = []string{
		"박물관", "미술관", "카페", "쇼핑", "몰", "영화관", "찜질방", "스파", "온천",
		"맛집", "식당", "음식",
	}
)

// Rainy-day suitability by category class.
const (
	rainyOutdoorScore = 0.2
	rainyIndoorScore  = 1.0
	rainyNeutralScore = 0.6
)

// CategoryScorer is the static suitability heuristic.
type CategoryScorer struct{}

// NewCategoryScorer builds the default scorer.
func NewCategoryScorer() *CategoryScorer { return &CategoryScorer{} }

// Suitability returns a score in [0, 1].  Clear weather suits everything;
// rain penalizes outdoor categories and leaves unclassified ones in a
// neutral band so they are kept but rank behind indoor options.
func (s *CategoryScorer) Suitability(_ context.Context, p place.Place, rainy bool) float64 {
	if !rainy {
		return 1.0
	}

	category := p.Category
	for _, fragment := range indoorFragments {
		if strings.Contains(category, fragment) {
			return rainyIndoorScore
		}
	}
	for _, fragment := range outdoorFragments {
		if strings.Contains(category, fragment) {
			return rainyOutdoorScore
		}
	}
	return rainyNeutralScore
}

//Personal.AI order the ending
