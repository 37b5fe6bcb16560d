package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/veritrav/veritrav/internal/domain/district"
	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/domain/route"
	"github.com/veritrav/veritrav/internal/infrastructure/cache"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// RainySuitabilityThreshold drops weather-unsuitable places on rainy
// dates; below it a place is excluded from the itinerary.
const RainySuitabilityThreshold = 0.5

// knownVerificationLimit bounds how many stored verification records are
// consulted per run.
const knownVerificationLimit = 500

// Request is one discovery run.
type Request struct {
	Prompt string
	Region place.Region
	City   string

	// Optional spatial constraints beyond the radius.
	RequiredDistrict     string
	RequiredNeighborhood string

	// Start anchors the route's cluster ordering when present.
	Start *place.Coordinate

	// Rainy tells the weather annotation that the travel dates have a
	// rain forecast.
	Rainy bool

	RequestID string
}

// Diagnostics carries the observability counts assembled per request.
type Diagnostics struct {
	TotalFound  int         `json:"total_found"`
	GeoFiltered int         `json:"geo_filtered"`
	Accepted    int         `json:"accepted"`
	CacheHits   int         `json:"cache_hits"`
	CacheMisses int         `json:"cache_misses"`
	Keywords    []string    `json:"keywords"`
	Exclusions  []Exclusion `json:"exclusions,omitempty"`
	RequestID   string      `json:"request_id"`
}

// Result is a completed discovery run: the ordered route plus diagnostics.
type Result struct {
	Route       route.Route `json:"route"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Service sequences the discovery pipeline: keyword fan-out search
// (cache-first), geographic filtering, enrichment, weather annotation,
// dedup/verification/scoring, and route construction.
type Service struct {
	searchers []SearchProvider
	details   DetailProvider
	reviews   ReviewProvider
	weather   WeatherScorer
	store     cache.Store
	fallback  cache.Store
	verRepo   VerificationRepository
	indexer   PlaceIndexer
	geo       *GeoFilter
	metrics   *prometheus.AppMetrics
	logger    logging.Logger

	maxPerKeyword  int
	minAccepted    int
	distanceWeight float64
	ratingWeight   float64
}

// Options tunes the service; zero values take the reference defaults.
type Options struct {
	MaxCandidatesPerKeyword int
	MinAcceptedPlaces       int
	DistanceWeight          float64
	RatingWeight            float64
	Metrics                 *prometheus.AppMetrics
	VerificationRepo        VerificationRepository
	PlaceIndexer            PlaceIndexer
}

// NewService wires the pipeline.  fallbackStore may be nil when the
// primary store is already in-process; when present it absorbs primary
// store outages so a cache failure degrades to refetching, never to a
// failed request.
func NewService(
	searchers []SearchProvider,
	details DetailProvider,
	reviews ReviewProvider,
	weather WeatherScorer,
	store cache.Store,
	fallbackStore cache.Store,
	logger logging.Logger,
	opts Options,
) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Service{
		searchers:      searchers,
		details:        details,
		reviews:        reviews,
		weather:        weather,
		store:          store,
		fallback:       fallbackStore,
		verRepo:        opts.VerificationRepo,
		indexer:        opts.PlaceIndexer,
		geo:            NewGeoFilter(logger),
		metrics:        opts.Metrics,
		logger:         logger.Named("discovery"),
		maxPerKeyword:  opts.MaxCandidatesPerKeyword,
		minAccepted:    opts.MinAcceptedPlaces,
		distanceWeight: opts.DistanceWeight,
		ratingWeight:   opts.RatingWeight,
	}
	if s.maxPerKeyword <= 0 {
		s.maxPerKeyword = 20
	}
	if s.minAccepted <= 0 {
		s.minAccepted = MinViableItinerary
	}
	if s.distanceWeight == 0 && s.ratingWeight == 0 {
		s.distanceWeight, s.ratingWeight = DefaultDistanceWeight, DefaultRatingWeight
	}
	return s
}

// Discover runs the full pipeline for one request.
func (s *Service) Discover(ctx context.Context, req Request) (*Result, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	logger := s.logger.With(
		logging.String("request_id", req.RequestID),
		logging.String("region", req.Region.Label))

	if err := req.Region.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeRegionInvalid, "invalid region")
	}

	diag := Diagnostics{
		Keywords:  ExtractKeywords(req.Prompt),
		RequestID: req.RequestID,
	}
	logger.Info("discovery started", logging.Any("keywords", diag.Keywords))

	// Stage 1: keyword fan-out, cache-first.
	candidates := s.collectCandidates(ctx, req, &diag, logger)
	diag.TotalFound = len(candidates)

	// Stage 2: geographic filtering.
	filtered, excluded := s.geo.FilterByDistance(candidates, req.Region)
	diag.Exclusions = excluded
	filtered = s.geo.FilterByAddress(filtered, req.RequiredDistrict, req.RequiredNeighborhood)
	diag.GeoFiltered = len(filtered)
	if len(filtered) == 0 {
		logger.Warn("no places survived geographic filtering",
			logging.Int("total_found", diag.TotalFound))
		if s.metrics != nil {
			prometheus.RecordError(s.metrics, "discovery", string(apperrors.ErrCodeNoMatchingPlaces))
		}
		return nil, apperrors.NoMatchingPlaces(req.Region.Label).
			WithDetail(fmt.Sprintf("found %d candidates, 0 survived geographic filtering", diag.TotalFound))
	}

	// Stage 3: per-candidate enrichment fan-out.  Places verified by
	// earlier runs keep their status and skip the review crawl.
	known := s.knownVerified(ctx, req.Region.Label, logger)
	enriched := s.enrich(ctx, filtered, req, known, logger)

	// Stage 4: weather annotation; rainy dates drop unsuitable places.
	if s.weather != nil {
		kept := enriched[:0]
		for i := range enriched {
			enriched[i].WeatherSuitability = s.weather.Suitability(ctx, enriched[i], req.Rainy)
			if req.Rainy && enriched[i].WeatherSuitability < RainySuitabilityThreshold {
				logger.Debug("place dropped for weather",
					logging.String("name", enriched[i].Name),
					logging.Float64("suitability", enriched[i].WeatherSuitability))
				continue
			}
			kept = append(kept, enriched[i])
		}
		enriched = kept
	}

	// Stage 5: composite rerank, then dedup/verify/score in rank order.
	ranked := s.geo.RerankByDistanceAndRating(enriched, s.distanceWeight, s.ratingWeight)
	accepted := s.accept(ctx, ranked, req, logger)

	// Backfill when the itinerary is too thin to be useful.
	if len(accepted) < s.minAccepted {
		needed := s.minAccepted - len(accepted)
		logger.Info("backfilling from curated fallback list", logging.Int("needed", needed))
		if s.metrics != nil {
			s.metrics.DiscoveryFallbackTotal.WithLabelValues(req.Region.Label).Inc()
		}
		accepted = append(accepted, FallbackPlaces(s.registerFor(ctx, accepted), needed)...)
	}
	diag.Accepted = len(accepted)
	if s.metrics != nil {
		s.metrics.DiscoveryAcceptedCount.WithLabelValues().Observe(float64(diag.Accepted))
	}

	if len(accepted) == 0 {
		return nil, apperrors.NoMatchingPlaces(req.Region.Label).
			WithDetail(fmt.Sprintf("found %d candidates, %d survived geographic filtering, none accepted",
				diag.TotalFound, diag.GeoFiltered))
	}

	if s.indexer != nil {
		indexed := s.indexer.IndexAccepted(ctx, req.Region.Label, accepted)
		logger.Debug("indexed accepted places", logging.Int("indexed", indexed))
	}

	// Stage 6: district clustering and greedy route construction.
	builtRoute := s.buildRoute(req, accepted, logger)

	logger.Info("discovery complete",
		logging.Int("total_found", diag.TotalFound),
		logging.Int("geo_filtered", diag.GeoFiltered),
		logging.Int("accepted", diag.Accepted),
		logging.Int("cache_hits", diag.CacheHits),
		logging.Int("cache_misses", diag.CacheMisses))

	return &Result{Route: builtRoute, Diagnostics: diag}, nil
}

// collectCandidates fans out one cache-first search per keyword and joins
// the results.  A failed provider call yields an empty result for that
// keyword only.
func (s *Service) collectCandidates(ctx context.Context, req Request, diag *Diagnostics, logger logging.Logger) []place.Place {
	results := make([][]place.Place, len(diag.Keywords))
	hits := make([]bool, len(diag.Keywords))

	g, gctx := errgroup.WithContext(ctx)
	for i, keyword := range diag.Keywords {
		i, keyword := i, keyword
		g.Go(func() error {
			key := cache.Key(req.Region.Label, keyword)
			if cached, ok := s.cacheGet(gctx, key, logger); ok {
				results[i] = cached
				hits[i] = true
				return nil
			}

			var found []place.Place
			for _, provider := range s.searchers {
				start := time.Now()
				places, err := provider.Search(gctx, req.Region.Label, keyword, s.maxPerKeyword)
				if s.metrics != nil {
					prometheus.RecordProviderCall(s.metrics, provider.Name(), err, time.Since(start))
				}
				if err != nil {
					// Provider outages never abort the request.
					logger.Warn("search provider failed",
						logging.String("provider", provider.Name()),
						logging.String("keyword", keyword),
						logging.Err(err))
					continue
				}
				found = append(found, places...)
			}
			if s.metrics != nil {
				s.metrics.DiscoveryCandidateCount.WithLabelValues("search").Observe(float64(len(found)))
			}
			if len(found) > 0 {
				s.cacheSet(gctx, key, found, logger)
			}
			results[i] = found
			return nil
		})
	}
	// Workers only return nil; the group exists for the fan-in join and
	// context plumbing.
	_ = g.Wait()

	var all []place.Place
	for i := range results {
		if hits[i] {
			diag.CacheHits++
		} else {
			diag.CacheMisses++
		}
		all = append(all, results[i]...)
	}
	return all
}

// knownVerified loads verification outcomes persisted by earlier runs, by
// normalized name, so an already-verified place in this region keeps its
// status without repeating the review crawl.
func (s *Service) knownVerified(ctx context.Context, region string, logger logging.Logger) map[string]bool {
	if s.verRepo == nil {
		return nil
	}
	records, err := s.verRepo.ResultsByRegion(ctx, region, knownVerificationLimit)
	if err != nil {
		logger.Warn("stored verifications unavailable", logging.Err(err))
		return nil
	}
	known := make(map[string]bool, len(records))
	for _, r := range records {
		if r.Verified {
			known[place.NormalizeName(r.PlaceName)] = true
		}
	}
	return known
}

// enrich fans out detail and review lookups per candidate and annotates in
// place.  Failures are absorbed as absent evidence.
func (s *Service) enrich(ctx context.Context, places []place.Place, req Request, known map[string]bool, logger logging.Logger) []place.Place {
	enriched := make([]place.Place, len(places))
	copy(enriched, places)

	g, gctx := errgroup.WithContext(ctx)
	for i := range enriched {
		i := i
		g.Go(func() error {
			p := &enriched[i]
			if known[place.NormalizeName(p.Name)] {
				p.Verified = true
			}

			if s.details != nil {
				start := time.Now()
				detail, err := s.details.Lookup(gctx, p.Name, req.Region.Label)
				if s.metrics != nil {
					prometheus.RecordProviderCall(s.metrics, s.details.Name(), err, time.Since(start))
				}
				if err != nil {
					logger.Debug("detail lookup failed",
						logging.String("name", p.Name), logging.Err(err))
				} else {
					p.Detail = detail
				}
			}

			if s.reviews != nil && !p.Verified {
				start := time.Now()
				snippets, crawled, err := s.reviews.Reviews(gctx, p.Name, req.Region.Label)
				if s.metrics != nil {
					prometheus.RecordProviderCall(s.metrics, s.reviews.Name(), err, time.Since(start))
				}
				if err != nil {
					logger.Debug("review fetch failed",
						logging.String("name", p.Name), logging.Err(err))
				} else {
					p.Reviews = snippets
					p.ReviewContentFetched = crawled
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return enriched
}

// accept runs dedup, verification, scoring, and the acceptance policy over
// ranked candidates, persisting each verification outcome best-effort.
func (s *Service) accept(ctx context.Context, ranked []place.Place, req Request, logger logging.Logger) []place.Place {
	register := NewQualityRegister(logger)
	accepted := make([]place.Place, 0, len(ranked))

	for i := range ranked {
		p := ranked[i]
		coord := p.ResolveCoord()
		if register.IsDuplicate(p.Name, p.EffectiveAddress(), coord) {
			logger.Debug("duplicate place dropped", logging.String("name", p.Name))
			continue
		}

		p.QualityScore = register.QualityScore(p)
		if !p.Verified {
			p.Verified = register.VerifyRealPlace(p)
		}

		switch register.Judge(p.Verified, p.QualityScore) {
		case AcceptedHighConfidence:
		case AcceptedNeedsConfirmation:
			p.NeedsConfirmation = true
		default:
			logger.Debug("place rejected by acceptance policy",
				logging.String("name", p.Name),
				logging.Float64("score", p.QualityScore),
				logging.Bool("verified", p.Verified))
			continue
		}

		register.AddToUsed(p.Name, p.EffectiveAddress(), coord)
		accepted = append(accepted, p)

		if s.verRepo != nil {
			record := VerificationRecord{
				PlaceName:    p.Name,
				Region:       req.Region.Label,
				Verified:     p.Verified,
				QualityScore: p.QualityScore,
				SignalCount:  p.VerificationSignals().Count(),
				RequestID:    req.RequestID,
			}
			if err := s.verRepo.SaveResult(ctx, record); err != nil {
				logger.Warn("verification record not persisted",
					logging.String("name", p.Name), logging.Err(err))
			}
		}
	}
	return accepted
}

// cacheGet reads from the primary store, degrading loudly to the fallback
// store on error.  A failing primary never fails the request; it only
// costs a refetch.
func (s *Service) cacheGet(ctx context.Context, key string, logger logging.Logger) ([]place.Place, bool) {
	places, ok, err := s.store.Get(ctx, key)
	if err == nil {
		s.recordCacheAccess(ok)
		if ok {
			return places, true
		}
		return nil, false
	}

	logger.Warn("primary cache unavailable, using fallback store",
		logging.String("key", key), logging.Err(err))
	if s.fallback == nil {
		s.recordCacheAccess(false)
		return nil, false
	}
	places, ok, err = s.fallback.Get(ctx, key)
	if err != nil {
		logger.Warn("fallback cache read failed", logging.String("key", key), logging.Err(err))
		ok = false
	}
	s.recordCacheAccess(ok)
	if !ok {
		return nil, false
	}
	return places, true
}

// cacheSet mirrors cacheGet's degradation path on writes.
func (s *Service) cacheSet(ctx context.Context, key string, places []place.Place, logger logging.Logger) {
	err := s.store.Set(ctx, key, places)
	if err == nil {
		return
	}
	logger.Warn("primary cache write failed, using fallback store",
		logging.String("key", key), logging.Err(err))
	if s.fallback == nil {
		return
	}
	if err := s.fallback.Set(ctx, key, places); err != nil {
		logger.Warn("fallback cache write failed", logging.String("key", key), logging.Err(err))
	}
}

func (s *Service) recordCacheAccess(hit bool) {
	if s.metrics != nil {
		prometheus.RecordCacheAccess(s.metrics, "places", hit)
	}
}

// registerFor rebuilds a register seeded with the already accepted places
// so the fallback list dedups against them.
func (s *Service) registerFor(_ context.Context, accepted []place.Place) *QualityRegister {
	register := NewQualityRegister(s.logger)
	for i := range accepted {
		register.AddToUsed(accepted[i].Name, accepted[i].EffectiveAddress(), accepted[i].ResolveCoord())
	}
	return register
}

// buildRoute clusters accepted places by district and orders them with the
// greedy nearest-neighbor strategies.
func (s *Service) buildRoute(req Request, accepted []place.Place, logger logging.Logger) route.Route {
	var timer *prometheus.Timer
	if s.metrics != nil {
		timer = prometheus.NewTimer(s.metrics.RouteBuildDuration.WithLabelValues(req.City))
	}

	clusters := route.ClusterByDistrict(accepted, district.ByCity(req.City))
	if len(clusters) == 0 {
		// City without a district table: treat the whole region as one
		// cluster so route construction still runs.
		clusters = []route.Cluster{{
			Label:  req.Region.Label,
			Center: req.Region.Center,
			Places: accepted,
		}}
	}
	built := route.Build(clusters,
		route.NearestNeighborClusterOrder,
		route.NearestNeighborPlaceOrder,
		route.DefaultTravelTime,
		req.Start)

	if s.metrics != nil {
		s.metrics.RouteClusterCount.WithLabelValues().Observe(float64(len(clusters)))
		timer.ObserveDuration()
	}
	logger.Debug("route built",
		logging.Int("clusters", len(clusters)),
		logging.Float64("total_km", built.TotalDistanceKm))
	return built
}

//Personal.AI order the ending
