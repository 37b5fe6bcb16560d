package route

import (
	"github.com/veritrav/veritrav/internal/domain/district"
	"github.com/veritrav/veritrav/internal/domain/place"
)

// ClusterByDistrict assigns each place to the single district whose center
// is nearest by great-circle distance.  Clustering is "nearest available",
// not radius-gated: a place far from every center is still assigned,
// because radius gating already happened in the geographic filter.  No
// place is split or duplicated across clusters.
//
// The returned clusters appear in the district table's order, empty
// clusters omitted, which keeps downstream ordering deterministic for the
// same input.
func ClusterByDistrict(places []place.Place, districts []district.District) []Cluster {
	if len(districts) == 0 || len(places) == 0 {
		return nil
	}

	members := make(map[string][]place.Place, len(districts))
	for _, p := range places {
		coord := p.ResolveCoord()
		if coord == nil {
			// The geographic filter guarantees coordinates; an unresolved
			// place here is assigned to the first district so it is never
			// silently dropped from the itinerary.
			members[districts[0].Name] = append(members[districts[0].Name], p)
			continue
		}

		nearest := districts[0].Name
		minDist := place.HaversineKm(*coord, districts[0].Center)
		for _, d := range districts[1:] {
			if dist := place.HaversineKm(*coord, d.Center); dist < minDist {
				minDist = dist
				nearest = d.Name
			}
		}
		members[nearest] = append(members[nearest], p)
	}

	clusters := make([]Cluster, 0, len(members))
	for _, d := range districts {
		if placeList, ok := members[d.Name]; ok {
			clusters = append(clusters, Cluster{
				Label:  d.Name,
				Center: d.Center,
				Places: placeList,
			})
		}
	}
	return clusters
}

//Personal.AI order the ending
