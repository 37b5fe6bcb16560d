package discovery

import (
	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// Acceptance thresholds applied per candidate.
const (
	// HighConfidenceScore accepts a verified place outright.
	HighConfidenceScore = 3.0
	// NeedsConfirmationScore accepts a place behind a manual-review flag
	// when it falls short of high confidence.
	NeedsConfirmationScore = 2.0
	// MinVerificationSignals is the number of independent confirming
	// sources required to call a place verified.
	MinVerificationSignals = 2
)

// usedPlace is one accepted entry in the working set.
type usedPlace struct {
	normName string
	name     string
	address  string
	coord    *place.Coordinate
}

// QualityRegister is the per-run working set of accepted places plus the
// dedup, verification, and scoring rules.  It is not safe for concurrent
// use; the orchestrator runs dedup serially after fan-in, and the register
// never outlives its request.
type QualityRegister struct {
	nameSet map[string]struct{}
	used    []usedPlace
	logger  logging.Logger
}

// NewQualityRegister builds an empty register for one discovery run.
func NewQualityRegister(logger logging.Logger) *QualityRegister {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &QualityRegister{
		nameSet: make(map[string]struct{}),
		logger:  logger.Named("quality"),
	}
}

// IsDuplicate reports whether the candidate matches any previously
// accepted place.  The checks run cheapest-first: exact normalized name,
// fuzzy name, fuzzy address (both sides non-empty), then coordinate
// proximity (both sides present).
func (r *QualityRegister) IsDuplicate(name, address string, coord *place.Coordinate) bool {
	norm := place.NormalizeName(name)
	if _, ok := r.nameSet[norm]; ok {
		return true
	}

	for i := range r.used {
		u := &r.used[i]
		if place.AreSimilar(name, u.name, place.NameSimilarityThreshold) {
			return true
		}
		if address != "" && u.address != "" &&
			place.AreSimilar(address, u.address, place.AddressSimilarityThreshold) {
			return true
		}
		if coord != nil && u.coord != nil &&
			place.SameLocation(*coord, *u.coord, place.SameLocationThresholdMeters) {
			return true
		}
	}
	return false
}

// AddToUsed records an accepted place in the working set.
func (r *QualityRegister) AddToUsed(name, address string, coord *place.Coordinate) {
	r.nameSet[place.NormalizeName(name)] = struct{}{}
	r.used = append(r.used, usedPlace{
		normName: place.NormalizeName(name),
		name:     name,
		address:  address,
		coord:    coord,
	})
}

// QualityScore computes the composite quality score in [0, 5] from the
// enrichment evidence on p:
//
//	secondary rating × 0.40            (0 when absent)
//	4.5 × 0.30                         when any primary record exists
//	min(reviewCount+2, 5) × 0.20       when at least one review exists
//	4.0 × 0.10                         when review content was crawled
func (r *QualityRegister) QualityScore(p place.Place) float64 {
	score := 0.0

	if p.Detail != nil && p.Detail.Rating > 0 {
		score += p.Detail.Rating * 0.40
	}
	if p.PrimarySource {
		score += 4.5 * 0.30
	}
	if n := len(p.Reviews); n > 0 {
		contribution := float64(n) + 2
		if contribution > 5 {
			contribution = 5
		}
		score += contribution * 0.20
	}
	if p.ReviewContentFetched {
		score += 4.0 * 0.10
	}

	if score > 5.0 {
		score = 5.0
	}
	return score
}

// VerifyRealPlace reports whether enough independent sources confirmed the
// place's existence.
func (r *QualityRegister) VerifyRealPlace(p place.Place) bool {
	return p.VerificationSignals().Count() >= MinVerificationSignals
}

// Acceptance is the per-candidate outcome of the acceptance policy.
type Acceptance int

const (
	// Rejected places are dropped.
	Rejected Acceptance = iota
	// AcceptedHighConfidence places passed verification and scoring.
	AcceptedHighConfidence
	// AcceptedNeedsConfirmation places scored acceptably but fell short
	// of high confidence; callers should flag them for manual review.
	AcceptedNeedsConfirmation
)

// Judge applies the acceptance policy to a scored candidate.
func (r *QualityRegister) Judge(verified bool, score float64) Acceptance {
	switch {
	case verified && score >= HighConfidenceScore:
		return AcceptedHighConfidence
	case score >= NeedsConfirmationScore:
		return AcceptedNeedsConfirmation
	default:
		return Rejected
	}
}

//Personal.AI order the ending
