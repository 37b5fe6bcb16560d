package discovery

import (
	"sort"
	"strings"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// Reference rerank weights.  Callers normally take them from configuration;
// these are the values the composite score was tuned with.
const (
	DefaultDistanceWeight = 0.4
	DefaultRatingWeight   = 0.6
)

// Exclusion reasons reported by the distance filter.
const (
	ExclusionMissingCoordinates = "missing_coordinates"
	ExclusionOutsideRadius      = "outside_radius"
)

// Exclusion records one place dropped by the distance filter, keeping its
// computed annotation so callers can surface it in diagnostics instead of
// losing it with the discarded place.
type Exclusion struct {
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// GeoFilter applies the region's spatial constraints to a candidate set
// and reranks the survivors by a distance+rating composite.
type GeoFilter struct {
	logger logging.Logger
}

// NewGeoFilter builds a GeoFilter.
func NewGeoFilter(logger logging.Logger) *GeoFilter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GeoFilter{logger: logger.Named("geofilter")}
}

// FilterByDistance keeps the places within region.RadiusKm of the region
// center, sorted ascending by distance.  Every evaluated place with a
// coordinate is annotated with its distance and whether it fell inside the
// requested area; dropped places come back as Exclusions so the annotation
// survives for diagnostics.
func (f *GeoFilter) FilterByDistance(places []place.Place, region place.Region) ([]place.Place, []Exclusion) {
	kept := make([]place.Place, 0, len(places))
	var excluded []Exclusion

	for i := range places {
		p := places[i]
		coord := p.ResolveCoord()
		if coord == nil {
			f.logger.Debug("place excluded for missing coordinates",
				logging.String("name", p.Name),
				logging.String("region", region.Label))
			excluded = append(excluded, Exclusion{
				Name:   p.Name,
				Reason: ExclusionMissingCoordinates,
			})
			continue
		}

		distKm := place.HaversineKm(region.Center, *coord)
		p.DistanceFromCenterKm = distKm
		p.WithinRequestedArea = distKm <= region.RadiusKm
		if !p.WithinRequestedArea {
			f.logger.Debug("place excluded for distance",
				logging.String("name", p.Name),
				logging.Float64("distance_km", distKm),
				logging.Float64("radius_km", region.RadiusKm))
			excluded = append(excluded, Exclusion{
				Name:       p.Name,
				Reason:     ExclusionOutsideRadius,
				DistanceKm: distKm,
			})
			continue
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].DistanceFromCenterKm < kept[j].DistanceFromCenterKm
	})
	return kept, excluded
}

// FilterByAddress is a coarser safety net behind the coordinate filter:
// stale or wrong coordinates can place a listing inside the radius while
// its address says otherwise.  When district or neighborhood constraints
// are given, places whose address text does not contain them are dropped;
// with no constraints it is a pass-through.
func (f *GeoFilter) FilterByAddress(places []place.Place, requiredDistrict, requiredNeighborhood string) []place.Place {
	if requiredDistrict == "" && requiredNeighborhood == "" {
		return places
	}

	kept := make([]place.Place, 0, len(places))
	for i := range places {
		addr := places[i].EffectiveAddress()
		if requiredDistrict != "" && !strings.Contains(addr, requiredDistrict) {
			f.logger.Debug("place excluded by district constraint",
				logging.String("name", places[i].Name),
				logging.String("district", requiredDistrict))
			continue
		}
		if requiredNeighborhood != "" && !strings.Contains(addr, requiredNeighborhood) {
			f.logger.Debug("place excluded by neighborhood constraint",
				logging.String("name", places[i].Name),
				logging.String("neighborhood", requiredNeighborhood))
			continue
		}
		kept = append(kept, places[i])
	}
	return kept
}

// RerankByDistanceAndRating orders places descending by a composite of a
// 0-10 distance score and a 0-10 rating score.  The distance score is
// relative to the farthest place in the current set (`10*(1 - d/maxD)`,
// maxD floored at 1 km); the rating score is `rating/5*10`, 0 when absent.
// Ties keep the incoming order.
func (f *GeoFilter) RerankByDistanceAndRating(places []place.Place, distanceWeight, ratingWeight float64) []place.Place {
	if distanceWeight == 0 && ratingWeight == 0 {
		distanceWeight, ratingWeight = DefaultDistanceWeight, DefaultRatingWeight
	}
	if len(places) == 0 {
		return places
	}

	maxDist := 1.0
	for i := range places {
		if places[i].DistanceFromCenterKm > maxDist {
			maxDist = places[i].DistanceFromCenterKm
		}
	}

	ranked := make([]place.Place, len(places))
	copy(ranked, places)
	for i := range ranked {
		distScore := 10 * (1 - ranked[i].DistanceFromCenterKm/maxDist)
		ratingScore := ranked[i].EffectiveRating() / 5 * 10
		ranked[i].DistanceScore = distScore
		ranked[i].FinalScore = distScore*distanceWeight + ratingScore*ratingWeight
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
	return ranked
}

//Personal.AI order the ending
