// Package route turns a deduplicated, geographically filtered set of places
// into an efficiently ordered itinerary: places are grouped into district
// clusters, the clusters are sequenced, and each cluster is internally
// ordered, all with greedy nearest-neighbor heuristics.
//
// The ordering heuristics are exposed as named strategy functions so that a
// future exact or near-optimal solver can be substituted behind the same
// contracts without touching callers.
package route

import (
	"time"

	"github.com/veritrav/veritrav/internal/domain/place"
)

// Cluster is a named geographic grouping of places used transiently during
// route construction; it is never persisted.
type Cluster struct {
	Label  string           `json:"label"`
	Center place.Coordinate `json:"center"`
	Places []place.Place    `json:"places"`
}

// Segment describes one leg between consecutive places on a route.
type Segment struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	DistanceKm float64       `json:"distance_km"`
	Duration   time.Duration `json:"duration"`
	Transport  string        `json:"transport"`
}

// Route is an ordered sequence of places with per-leg annotations.  A Route
// is produced fresh per request and never shared across requests.
type Route struct {
	Places          []place.Place `json:"places"`
	Segments        []Segment     `json:"segments,omitempty"`
	TotalDistanceKm float64       `json:"total_distance_km"`
	TotalDuration   time.Duration `json:"total_duration"`
}

// ClusterOrderer sequences clusters for visiting, optionally from an
// explicit start coordinate.
type ClusterOrderer func(clusters []Cluster, start *place.Coordinate) []Cluster

// PlaceOrderer sequences the places inside a single cluster.
type PlaceOrderer func(places []place.Place) []place.Place

// TravelTimeEstimator converts a leg distance into an expected duration.
// The estimation model is an external collaborator concern; the pipeline
// only sums whatever the estimator returns.
type TravelTimeEstimator func(distanceKm float64) time.Duration

//Personal.AI order the ending
