// Package config defines all configuration structures for the veritrav
// service.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	EnableCORS      bool          `mapstructure:"enable_cors"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the
// verification store.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the place cache.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// OpenSearchConfig holds connection parameters for the local place index.
type OpenSearchConfig struct {
	Addresses          []string `mapstructure:"addresses"`
	User               string   `mapstructure:"user"`
	Password           string   `mapstructure:"password"`
	InsecureSkipVerify bool     `mapstructure:"insecure_skip_verify"`
	IndexPrefix        string   `mapstructure:"index_prefix"`
}

// ProviderConfig holds the settings for one external data provider.
type ProviderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Enabled   bool          `mapstructure:"enabled"`
}

// ProvidersConfig groups every external provider the pipeline talks to.
type ProvidersConfig struct {
	WebSearch    ProviderConfig `mapstructure:"web_search"`
	PlaceDetails ProviderConfig `mapstructure:"place_details"`
	Reviews      ProviderConfig `mapstructure:"reviews"`
}

// CacheConfig selects and tunes the place-cache backend.
type CacheConfig struct {
	Backend        string        `mapstructure:"backend"` // "memory" | "redis"
	TTL            time.Duration `mapstructure:"ttl"`
	FallbackMemory bool          `mapstructure:"fallback_memory"` // degrade to memory when redis is down
}

// DiscoveryConfig holds pipeline tunables.  The similarity and scoring
// thresholds are fixed by the domain layer; only serving-level knobs live
// here.
type DiscoveryConfig struct {
	MaxCandidatesPerKeyword int           `mapstructure:"max_candidates_per_keyword"`
	MinAcceptedPlaces       int           `mapstructure:"min_accepted_places"`
	FallbackEnabled         bool          `mapstructure:"fallback_enabled"`
	RequestTimeout          time.Duration `mapstructure:"request_timeout"`
	DistanceWeight          float64       `mapstructure:"distance_weight"`
	RatingWeight            float64       `mapstructure:"rating_weight"`
}

// WorkerConfig holds background-worker parameters (cache sweeping).
type WorkerConfig struct {
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Concurrency     int           `mapstructure:"concurrency"`
}

// MetricsConfig holds Prometheus exposure settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the whole service.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Redis      RedisConfig       `mapstructure:"redis"`
	OpenSearch OpenSearchConfig  `mapstructure:"opensearch"`
	Providers  ProvidersConfig   `mapstructure:"providers"`
	Cache      CacheConfig       `mapstructure:"cache"`
	Discovery  DiscoveryConfig   `mapstructure:"discovery"`
	Worker     WorkerConfig      `mapstructure:"worker"`
	Metrics    MetricsConfig     `mapstructure:"metrics"`
	Log        logging.LogConfig `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; any error is fatal at startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("config: database.max_conns must be >= 1, got %d", c.Database.MaxConns)
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: cache.backend %q is invalid; expected memory|redis", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when cache.backend is redis")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("config: cache.ttl must not be negative")
	}

	if c.Discovery.MinAcceptedPlaces < 1 {
		return fmt.Errorf("config: discovery.min_accepted_places must be >= 1, got %d", c.Discovery.MinAcceptedPlaces)
	}
	if c.Discovery.DistanceWeight < 0 || c.Discovery.RatingWeight < 0 {
		return fmt.Errorf("config: discovery weights must not be negative")
	}
	if c.Discovery.DistanceWeight+c.Discovery.RatingWeight == 0 {
		return fmt.Errorf("config: discovery weights must not both be zero")
	}

	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be >= 1, got %d", c.Worker.Concurrency)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

// DSN renders the PostgreSQL connection string for pgx.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

//Personal.AI order the ending
