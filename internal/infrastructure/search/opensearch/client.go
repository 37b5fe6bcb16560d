// Package opensearch backs the local place index: previously verified
// places are indexed so discovery can search them without burning external
// provider quota, and the index doubles as a search provider behind the
// same contract as the web-search client.
package opensearch

import (
	"context"
	"crypto/tls"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/opensearch-project/opensearch-go/v3"
	"github.com/opensearch-project/opensearch-go/v3/opensearchapi"

	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// ClientConfig holds the connection settings for the index cluster.
type ClientConfig struct {
	Addresses           []string
	Username            string
	Password            string
	InsecureSkipVerify  bool
	MaxRetries          int
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	IndexPrefix         string
}

// Client manages the cluster connection and its background health check.
type Client struct {
	api     *opensearchapi.Client
	config  ClientConfig
	logger  logging.Logger
	healthy atomic.Bool
	cancel  context.CancelFunc
}

// NewClient connects to the cluster and starts the health check loop.
func NewClient(cfg ClientConfig, logger logging.Logger) (*Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "opensearch addresses are required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.HealthCheckInterval == 0 {
		cfg.HealthCheckInterval = 30 * time.Second
	}
	if cfg.IndexPrefix == "" {
		cfg.IndexPrefix = "veritrav"
	}

	transport := &http.Transport{MaxIdleConnsPerHost: 10}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	api, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses:     cfg.Addresses,
			Username:      cfg.Username,
			Password:      cfg.Password,
			MaxRetries:    cfg.MaxRetries,
			Transport:     transport,
			RetryOnStatus: []int{429, 502, 503, 504},
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create opensearch client")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		api:    api,
		config: cfg,
		logger: logger.Named("opensearch"),
		cancel: cancel,
	}

	if err := c.Ping(ctx); err != nil {
		cancel()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "opensearch cluster unreachable")
	}

	go c.healthCheckLoop(ctx)
	return c, nil
}

// Ping verifies cluster connectivity and updates the health flag.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancelPing := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancelPing()

	_, err := c.api.Ping(ctx, &opensearchapi.PingReq{})
	if err != nil {
		c.healthy.Store(false)
		return err
	}
	c.healthy.Store(true)
	return nil
}

// IsHealthy reports the last observed cluster health.
func (c *Client) IsHealthy() bool { return c.healthy.Load() }

// API exposes the underlying typed client.
func (c *Client) API() *opensearchapi.Client { return c.api }

// IndexName renders the prefixed name for a logical index.
func (c *Client) IndexName(logical string) string {
	return c.config.IndexPrefix + "-" + logical
}

// Close stops the health check loop.
func (c *Client) Close() error {
	c.cancel()
	c.logger.Info("opensearch client closed")
	return nil
}

func (c *Client) healthCheckLoop(ctx context.Context) {
	ticker := time.NewTicker(c.config.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			prev := c.healthy.Load()
			err := c.Ping(ctx)
			curr := c.healthy.Load()
			if prev && !curr {
				c.logger.Error("opensearch cluster became unhealthy", logging.Err(err))
			} else if !prev && curr {
				c.logger.Info("opensearch cluster recovered")
			}
		}
	}
}

//Personal.AI order the ending
