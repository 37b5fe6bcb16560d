package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/config"
	"github.com/veritrav/veritrav/internal/infrastructure/cache"
	"github.com/veritrav/veritrav/internal/infrastructure/database/postgres"
	"github.com/veritrav/veritrav/internal/infrastructure/database/postgres/repositories"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/prometheus"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/placedetails"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/reviews"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/websearch"
	"github.com/veritrav/veritrav/internal/infrastructure/providers/weather"
	"github.com/veritrav/veritrav/internal/infrastructure/search/opensearch"
	"github.com/veritrav/veritrav/internal/interfaces/http/handlers"
)

// application bundles every wired component the server needs, with a
// shutdown hook for the ones that hold connections.
type application struct {
	service    *discovery.Service
	store      cache.Store
	collector  prometheus.MetricsCollector
	metrics    *prometheus.AppMetrics
	verRepo    discovery.VerificationRepository
	checkers   []handlers.HealthChecker
	closeFuncs []func()
}

func (a *application) close() {
	for i := len(a.closeFuncs) - 1; i >= 0; i-- {
		a.closeFuncs[i]()
	}
}

// buildApplication wires the full pipeline from configuration.  Optional
// backends (redis, postgres, opensearch) are attached only when
// configured; the pipeline itself runs with any subset.
func buildApplication(cfg *config.Config, logger logging.Logger) (*application, error) {
	app := &application{}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            cfg.Metrics.Namespace,
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return nil, err
	}
	app.collector = collector
	app.metrics = prometheus.NewAppMetrics(collector)

	// Cache: redis primary with optional memory fallback, or memory only.
	var fallbackStore cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		redisStore := cache.NewRedisStore(client, logger, cache.WithRedisTTL(cfg.Cache.TTL))
		app.store = redisStore
		app.closeFuncs = append(app.closeFuncs, func() { client.Close() })
		app.checkers = append(app.checkers, handlers.HealthCheckerFunc{
			ComponentName: "redis",
			CheckFunc:     redisStore.Ping,
		})
		if cfg.Cache.FallbackMemory {
			fallbackStore = cache.NewMemoryStore(logger, cache.WithTTL(cfg.Cache.TTL))
		}
	default:
		app.store = cache.NewMemoryStore(logger, cache.WithTTL(cfg.Cache.TTL))
	}

	// External providers.
	var searchers []discovery.SearchProvider
	if cfg.Providers.WebSearch.Enabled {
		searchers = append(searchers, websearch.NewClient(websearch.Config{
			BaseURL:      cfg.Providers.WebSearch.BaseURL,
			ClientID:     cfg.Providers.WebSearch.APIKey,
			ClientSecret: cfg.Providers.WebSearch.APISecret,
			Timeout:      cfg.Providers.WebSearch.Timeout,
		}, logger))
	}

	var detailProvider discovery.DetailProvider
	if cfg.Providers.PlaceDetails.Enabled {
		detailProvider = placedetails.NewClient(placedetails.Config{
			BaseURL: cfg.Providers.PlaceDetails.BaseURL,
			APIKey:  cfg.Providers.PlaceDetails.APIKey,
			Timeout: cfg.Providers.PlaceDetails.Timeout,
		}, logger)
	}

	var reviewProvider discovery.ReviewProvider
	if cfg.Providers.Reviews.Enabled {
		reviewProvider = reviews.NewClient(reviews.Config{
			BaseURL:      cfg.Providers.Reviews.BaseURL,
			ClientID:     cfg.Providers.Reviews.APIKey,
			ClientSecret: cfg.Providers.Reviews.APISecret,
			Timeout:      cfg.Providers.Reviews.Timeout,
		}, logger)
	}

	// Local place index as an additional search source and a sink for
	// accepted places.
	var indexer discovery.PlaceIndexer
	if len(cfg.OpenSearch.Addresses) > 0 {
		osClient, err := opensearch.NewClient(opensearch.ClientConfig{
			Addresses:          cfg.OpenSearch.Addresses,
			Username:           cfg.OpenSearch.User,
			Password:           cfg.OpenSearch.Password,
			InsecureSkipVerify: cfg.OpenSearch.InsecureSkipVerify,
			IndexPrefix:        cfg.OpenSearch.IndexPrefix,
		}, logger)
		if err != nil {
			logger.Warn("place index unavailable, continuing without it", logging.Err(err))
		} else {
			app.closeFuncs = append(app.closeFuncs, func() { osClient.Close() })
			searchers = append(searchers, opensearch.NewSearcher(osClient, logger))
			idx := opensearch.NewIndexer(osClient, logger)
			if err := idx.EnsureIndex(context.Background()); err != nil {
				logger.Warn("place index mapping not ensured", logging.Err(err))
			}
			indexer = idx
			app.checkers = append(app.checkers, handlers.HealthCheckerFunc{
				ComponentName: "opensearch",
				CheckFunc:     osClient.Ping,
			})
		}
	}

	// Verification persistence.
	if cfg.Database.Host != "" {
		conn, err := postgres.NewConnection(cfg.Database, logger)
		if err != nil {
			logger.Warn("verification store unavailable, results will not be persisted", logging.Err(err))
		} else {
			if err := conn.RunMigrations(cfg.Database.MigrationPath); err != nil {
				logger.Error("migrations failed", logging.Err(err))
			}
			app.verRepo = repositories.NewVerificationRepo(conn, logger)
			app.closeFuncs = append(app.closeFuncs, func() { conn.Close() })
			app.checkers = append(app.checkers, handlers.HealthCheckerFunc{
				ComponentName: "postgres",
				CheckFunc:     conn.HealthCheck,
			})
		}
	}

	app.service = discovery.NewService(
		searchers,
		detailProvider,
		reviewProvider,
		weather.NewCategoryScorer(),
		app.store,
		fallbackStore,
		logger,
		discovery.Options{
			MaxCandidatesPerKeyword: cfg.Discovery.MaxCandidatesPerKeyword,
			MinAcceptedPlaces:       cfg.Discovery.MinAcceptedPlaces,
			DistanceWeight:          cfg.Discovery.DistanceWeight,
			RatingWeight:            cfg.Discovery.RatingWeight,
			Metrics:                 app.metrics,
			VerificationRepo:        app.verRepo,
			PlaceIndexer:            indexer,
		},
	)

	return app, nil
}
//Personal.AI order the ending
