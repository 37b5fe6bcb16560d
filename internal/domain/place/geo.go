package place

import "math"

// Earth radii for the two Haversine variants.  Callers must be explicit
// about units: the deduplication engine compares meters, the geographic
// filter compares kilometers.
const (
	earthRadiusMeters = 6371000.0
	earthRadiusKm     = 6371.0
)

// SameLocationThresholdMeters is the default coordinate-proximity bound
// under which two records are judged to be the same physical place.
const SameLocationThresholdMeters = 50.0

// haversine returns the central angle between two coordinates.
func haversine(a, b Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// HaversineMeters returns the great-circle distance between two coordinates
// in meters.
func HaversineMeters(a, b Coordinate) float64 {
	return earthRadiusMeters * haversine(a, b)
}

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers.
func HaversineKm(a, b Coordinate) float64 {
	return earthRadiusKm * haversine(a, b)
}

// SameLocation reports whether two coordinates lie within thresholdMeters
// of each other.  Pass SameLocationThresholdMeters for the pipeline default.
func SameLocation(a, b Coordinate, thresholdMeters float64) bool {
	return HaversineMeters(a, b) <= thresholdMeters
}

//Personal.AI order the ending
