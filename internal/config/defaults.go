package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "veritrav"
	DefaultDBMaxConns = 25

	DefaultRedisAddr = "localhost:6379"

	DefaultOpenSearchAddress = "http://localhost:9200"
	DefaultIndexPrefix       = "veritrav"

	DefaultCacheBackend = "memory"
	DefaultCacheTTL     = 30 * 24 * time.Hour

	DefaultMinAcceptedPlaces = 3
	DefaultDistanceWeight    = 0.4
	DefaultRatingWeight      = 0.6
	DefaultMaxCandidates     = 20
	DefaultRequestTimeout    = 60 * time.Second

	DefaultProviderTimeout = 10 * time.Second

	DefaultWorkerCleanupInterval = time.Hour
	DefaultWorkerConcurrency     = 4

	DefaultMetricsNamespace = "veritrav"
	DefaultMetricsPath      = "/metrics"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service
// default.  Fields already set by the caller are left unchanged so that
// explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 90 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "veritrav"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = "file://migrations"
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}

	// ── OpenSearch ────────────────────────────────────────────────────────────
	if len(cfg.OpenSearch.Addresses) == 0 {
		cfg.OpenSearch.Addresses = []string{DefaultOpenSearchAddress}
	}
	if cfg.OpenSearch.IndexPrefix == "" {
		cfg.OpenSearch.IndexPrefix = DefaultIndexPrefix
	}

	// ── Providers ─────────────────────────────────────────────────────────────
	applyProviderDefaults(&cfg.Providers.WebSearch)
	applyProviderDefaults(&cfg.Providers.PlaceDetails)
	applyProviderDefaults(&cfg.Providers.Reviews)

	// ── Cache ─────────────────────────────────────────────────────────────────
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = DefaultCacheBackend
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}

	// ── Discovery ─────────────────────────────────────────────────────────────
	if cfg.Discovery.MinAcceptedPlaces == 0 {
		cfg.Discovery.MinAcceptedPlaces = DefaultMinAcceptedPlaces
	}
	if cfg.Discovery.MaxCandidatesPerKeyword == 0 {
		cfg.Discovery.MaxCandidatesPerKeyword = DefaultMaxCandidates
	}
	if cfg.Discovery.RequestTimeout == 0 {
		cfg.Discovery.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Discovery.DistanceWeight == 0 && cfg.Discovery.RatingWeight == 0 {
		cfg.Discovery.DistanceWeight = DefaultDistanceWeight
		cfg.Discovery.RatingWeight = DefaultRatingWeight
	}

	// ── Worker ────────────────────────────────────────────────────────────────
	if cfg.Worker.CleanupInterval == 0 {
		cfg.Worker.CleanupInterval = DefaultWorkerCleanupInterval
	}
	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = DefaultWorkerConcurrency
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
	if len(cfg.Log.ErrorOutputPaths) == 0 {
		cfg.Log.ErrorOutputPaths = []string{"stderr"}
	}
}

func applyProviderDefaults(p *ProviderConfig) {
	if p.Timeout == 0 {
		p.Timeout = DefaultProviderTimeout
	}
}

//Personal.AI order the ending
