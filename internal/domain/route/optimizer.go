package route

import (
	"time"

	"github.com/veritrav/veritrav/internal/domain/place"
)

// NearestNeighborClusterOrder sequences clusters greedily: starting from
// the explicit start coordinate (or the first cluster's center when none is
// supplied), it repeatedly appends the remaining cluster whose center is
// nearest to the current location and advances there.
//
// The heuristic is not globally optimal.  It is deterministic for the same
// input order: distance ties are broken by first-encountered.
func NearestNeighborClusterOrder(clusters []Cluster, start *place.Coordinate) []Cluster {
	if len(clusters) <= 1 {
		return clusters
	}

	current := clusters[0].Center
	if start != nil {
		current = *start
	}

	remaining := make([]Cluster, len(clusters))
	copy(remaining, clusters)

	ordered := make([]Cluster, 0, len(clusters))
	for len(remaining) > 0 {
		nextIdx := 0
		minDist := place.HaversineKm(current, remaining[0].Center)
		for i := 1; i < len(remaining); i++ {
			if dist := place.HaversineKm(current, remaining[i].Center); dist < minDist {
				minDist = dist
				nextIdx = i
			}
		}
		next := remaining[nextIdx]
		ordered = append(ordered, next)
		remaining = append(remaining[:nextIdx], remaining[nextIdx+1:]...)
		current = next.Center
	}
	return ordered
}

// NearestNeighborPlaceOrder sequences the places of one cluster greedily.
// The seed is the place with the lexicographically smallest (latitude,
// longitude) pair — a reproducible tie-break rather than an arbitrary first
// element — and every subsequent step appends the nearest unvisited place.
func NearestNeighborPlaceOrder(places []place.Place) []place.Place {
	if len(places) <= 1 {
		return places
	}

	remaining := make([]place.Place, len(places))
	copy(remaining, places)

	seedIdx := 0
	for i := 1; i < len(remaining); i++ {
		if lexLess(coordOf(remaining[i]), coordOf(remaining[seedIdx])) {
			seedIdx = i
		}
	}

	ordered := make([]place.Place, 0, len(places))
	ordered = append(ordered, remaining[seedIdx])
	current := coordOf(remaining[seedIdx])
	remaining = append(remaining[:seedIdx], remaining[seedIdx+1:]...)

	for len(remaining) > 0 {
		nextIdx := 0
		minDist := place.HaversineKm(current, coordOf(remaining[0]))
		for i := 1; i < len(remaining); i++ {
			if dist := place.HaversineKm(current, coordOf(remaining[i])); dist < minDist {
				minDist = dist
				nextIdx = i
			}
		}
		ordered = append(ordered, remaining[nextIdx])
		current = coordOf(remaining[nextIdx])
		remaining = append(remaining[:nextIdx], remaining[nextIdx+1:]...)
	}
	return ordered
}

// coordOf resolves a place's coordinate for ordering purposes, falling back
// to the zero coordinate so that coordless stragglers sort together
// deterministically instead of panicking.
func coordOf(p place.Place) place.Coordinate {
	if c := p.ResolveCoord(); c != nil {
		return *c
	}
	return place.Coordinate{}
}

func lexLess(a, b place.Coordinate) bool {
	if a.Lat != b.Lat {
		return a.Lat < b.Lat
	}
	return a.Lng < b.Lng
}

// Build concatenates each cluster's internally ordered places in cluster
// visit order and annotates the flat result with per-leg distances and
// estimated durations.
//
// Degenerate inputs follow the pipeline contract: fewer than two places
// yield the input unchanged with zero totals.
func Build(clusters []Cluster, orderClusters ClusterOrderer, orderPlaces PlaceOrderer, estimate TravelTimeEstimator, start *place.Coordinate) Route {
	flat := make([]place.Place, 0)
	for _, c := range orderClusters(clusters, start) {
		flat = append(flat, orderPlaces(c.Places)...)
	}

	r := Route{Places: flat}
	if len(flat) < 2 {
		return r
	}

	for i := 0; i < len(flat)-1; i++ {
		distKm := place.HaversineKm(coordOf(flat[i]), coordOf(flat[i+1]))
		var dur time.Duration
		if estimate != nil {
			dur = estimate(distKm)
		}
		r.Segments = append(r.Segments, Segment{
			From:       flat[i].Name,
			To:         flat[i+1].Name,
			DistanceKm: distKm,
			Duration:   dur,
			Transport:  RecommendTransport(distKm),
		})
		r.TotalDistanceKm += distKm
		r.TotalDuration += dur
	}
	return r
}

//Personal.AI order the ending
