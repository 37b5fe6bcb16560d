package route

import (
	"math"
	"time"
)

// DefaultTravelTime is the built-in distance→duration model: walking pace
// for short hops, and a transit boarding overhead plus per-km time for
// anything longer.
//
//	< 0.5 km  — walk, 12 min/km
//	< 2.0 km  — 5 min overhead + 8 min/km
//	otherwise — 10 min overhead + 6 min/km
func DefaultTravelTime(distanceKm float64) time.Duration {
	var minutes float64
	switch {
	case distanceKm < 0.5:
		minutes = distanceKm * 12
	case distanceKm < 2:
		minutes = 5 + distanceKm*8
	default:
		minutes = 10 + distanceKm*6
	}
	// Whole seconds; the float minute arithmetic would otherwise leak
	// sub-nanosecond noise into durations.
	return time.Duration(math.Round(minutes*60)) * time.Second
}

// RecommendTransport suggests a transport mode for a leg by distance band.
func RecommendTransport(distanceKm float64) string {
	switch {
	case distanceKm < 0.5:
		return "도보"
	case distanceKm < 2:
		return "버스 또는 도보"
	default:
		return "지하철 또는 버스"
	}
}

//Personal.AI order the ending
