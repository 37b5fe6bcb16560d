// Package discovery orchestrates the place-discovery pipeline: candidate
// search, enrichment, deduplication, geographic filtering, verification,
// scoring, and the acceptance policy.
package discovery

import (
	"context"

	"github.com/veritrav/veritrav/internal/domain/place"
)

// SearchProvider returns raw candidate places for a keyword in a region.
// Implementations include the web-search client and the local OpenSearch
// index; candidates carry whatever fields the source exposes and may lack
// coordinates.
type SearchProvider interface {
	// Search returns up to limit candidates.  An empty result is not an
	// error; provider outages are.
	Search(ctx context.Context, region, keyword string, limit int) ([]place.Place, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}

// DetailProvider enriches a candidate with authoritative detail: resolved
// coordinates, canonical address, rating, phone.  A nil Detail with nil
// error means the provider has no record of the place.
type DetailProvider interface {
	Lookup(ctx context.Context, name, region string) (*place.Detail, error)
	Name() string
}

// ReviewProvider fetches review snippets for a place and reports whether
// review page content was actually crawled (as opposed to snippet-only
// metadata).
type ReviewProvider interface {
	Reviews(ctx context.Context, name, region string) ([]place.ReviewSnippet, bool, error)
	Name() string
}

// WeatherScorer rates how suitable a place is for the forecast conditions
// on the travel dates, in [0, 1].  Implementations may be static
// category-based heuristics.
type WeatherScorer interface {
	Suitability(ctx context.Context, p place.Place, rainy bool) float64
}

// VerificationRepository persists verification outcomes so repeated
// discovery runs can audit how a place earned its status.
type VerificationRepository interface {
	SaveResult(ctx context.Context, result VerificationRecord) error
	ResultsByRegion(ctx context.Context, region string, limit int) ([]VerificationRecord, error)
}

// PlaceIndexer persists accepted places into the local search index so
// later runs can serve them as candidates without external provider calls.
// Implementations must be best-effort: indexing failures never fail a
// discovery run.
type PlaceIndexer interface {
	IndexAccepted(ctx context.Context, region string, places []place.Place) int
}

// VerificationRecord is one stored verification outcome.
type VerificationRecord struct {
	PlaceName    string  `json:"place_name"`
	Region       string  `json:"region"`
	Verified     bool    `json:"verified"`
	QualityScore float64 `json:"quality_score"`
	SignalCount  int     `json:"signal_count"`
	RequestID    string  `json:"request_id,omitempty"`
}

//Personal.AI order the ending
