// Package place defines the central Place model of the discovery pipeline
// together with the pure similarity and great-circle utilities used for
// deduplication and geographic filtering.
//
// A Place is created once, when an external provider returns a record, and
// is then annotated in place as each pipeline stage derives new fields.
// There is deliberately no dual-path ("dict or object") field access: all
// required identity fields are set at construction time and optional data
// is carried as nil-able sub-structs.
package place

import "fmt"

// Coordinate is a WGS84 latitude/longitude pair in floating-point degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Specificity tags how precisely a region was resolved from the request.
// Downstream stages may use it to tune thresholds (a point-of-interest
// request tolerates a much smaller radius than a city-level one).
type Specificity string

const (
	SpecificityPOI          Specificity = "point_of_interest"
	SpecificityNeighborhood Specificity = "neighborhood"
	SpecificityDistrict     Specificity = "district"
	SpecificityCity         Specificity = "city"
)

// Region is the geographic scope of a discovery request: a center
// coordinate plus a search radius.  Label is used only for diagnostics and
// log output, never for filtering decisions.
type Region struct {
	Center      Coordinate  `json:"center"`
	RadiusKm    float64     `json:"radius_km"`
	Label       string      `json:"label"`
	Specificity Specificity `json:"specificity"`
}

// Validate reports whether the region can be used for geographic filtering.
func (r Region) Validate() error {
	if r.RadiusKm <= 0 {
		return fmt.Errorf("region %q: radius must be positive, got %v", r.Label, r.RadiusKm)
	}
	if r.Center.Lat < -90 || r.Center.Lat > 90 || r.Center.Lng < -180 || r.Center.Lng > 180 {
		return fmt.Errorf("region %q: center out of range (%v, %v)", r.Label, r.Center.Lat, r.Center.Lng)
	}
	return nil
}

// Detail is the record returned by the secondary mapping provider for a
// place.  Its presence is itself a verification signal.
type Detail struct {
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Coord   *Coordinate `json:"coord,omitempty"`
	Rating  float64     `json:"rating"`
	Phone   string      `json:"phone"`
}

// ReviewSnippet is a third-party review reference for a place.  Snippet
// holds crawled body content when the review crawler managed to fetch it;
// an empty Snippet means only metadata (title/link) is known.
type ReviewSnippet struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// Signals is the set of independent sources that confirmed a place exists.
type Signals struct {
	PrimaryHit   bool `json:"primary_hit"`
	SecondaryHit bool `json:"secondary_hit"`
	HasReview    bool `json:"has_review"`
}

// Count returns the number of positive signals.
func (s Signals) Count() int {
	n := 0
	if s.PrimaryHit {
		n++
	}
	if s.SecondaryHit {
		n++
	}
	if s.HasReview {
		n++
	}
	return n
}

// Place is a candidate location moving through the discovery pipeline.
//
// Identity fields (Name, Address, Coord) are set at construction by the
// provider adapter that produced the record.  Derived fields are written by
// the pipeline stages that compute them and are zero until then.
type Place struct {
	// Identity.
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Coord   *Coordinate `json:"coord,omitempty"`

	// Provider attributes.
	Category      string          `json:"category,omitempty"`
	Rating        float64         `json:"rating,omitempty"` // 0–5; 0 means absent
	Phone         string          `json:"phone,omitempty"`
	PrimarySource bool            `json:"primary_source"` // record came from the primary search provider
	Detail        *Detail         `json:"detail,omitempty"`
	Reviews       []ReviewSnippet `json:"reviews,omitempty"`

	// ReviewContentFetched is true when crawled review body content (not
	// just metadata) was successfully retrieved for this place.
	ReviewContentFetched bool `json:"review_content_fetched,omitempty"`

	// WeatherSuitability is the pre-scored [0,1] annotation supplied by the
	// external weather/category filter.  1 when no scorer is configured.
	WeatherSuitability float64 `json:"weather_suitability,omitempty"`

	// Derived by the quality engine.
	Verified          bool    `json:"verified"`
	NeedsConfirmation bool    `json:"needs_confirmation,omitempty"`
	QualityScore      float64 `json:"quality_score"` // 0–5

	// Derived by the geographic filter.
	DistanceFromCenterKm float64 `json:"distance_from_center_km"`
	WithinRequestedArea  bool    `json:"within_requested_area"`
	DistanceScore        float64 `json:"distance_score"` // 0–10
	FinalScore           float64 `json:"final_score"`    // composite, 0–10
}

// ResolveCoord returns the place's coordinate from whichever source
// populated it first: the direct field, then the secondary provider's
// nested detail record.  Returns nil when no source supplied one — such a
// place cannot pass geographic filtering and is never defaulted to a
// fallback coordinate here (defaulting belongs to the caller, upstream).
func (p *Place) ResolveCoord() *Coordinate {
	if p.Coord != nil {
		return p.Coord
	}
	if p.Detail != nil && p.Detail.Coord != nil {
		return p.Detail.Coord
	}
	return nil
}

// EffectiveAddress returns the direct address, falling back to the
// secondary provider's record.
func (p *Place) EffectiveAddress() string {
	if p.Address != "" {
		return p.Address
	}
	if p.Detail != nil {
		return p.Detail.Address
	}
	return ""
}

// EffectiveRating returns the direct rating, falling back to the secondary
// provider's record.  0 means no rating is known.
func (p *Place) EffectiveRating() float64 {
	if p.Rating > 0 {
		return p.Rating
	}
	if p.Detail != nil {
		return p.Detail.Rating
	}
	return 0
}

// VerificationSignals derives the set of independent confirming sources for
// this place.
func (p *Place) VerificationSignals() Signals {
	return Signals{
		PrimaryHit:   p.PrimarySource && p.Name != "",
		SecondaryHit: p.Detail != nil && p.Detail.Name != "",
		HasReview:    len(p.Reviews) > 0,
	}
}

//Personal.AI order the ending
