// Package placedetails implements the secondary mapping provider used for
// verification: an authoritative detail lookup keyed by place name and a
// region hint.
package placedetails

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

const (
	detailsPath    = "/v2/place/details"
	defaultTimeout = 10 * time.Second
)

// Client looks place details up from the mapping API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

// Config holds the client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient builds a detail client.
func NewClient(cfg Config, logger logging.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("placedetails"),
	}
}

// Name implements the provider interface.
func (c *Client) Name() string { return "placedetails" }

type detailResponse struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rating  float64 `json:"rating"`
	Phone   string  `json:"phone"`
}

// Lookup fetches the provider's record for a named place.  A 404 means the
// provider has no record, which is a nil Detail, not an error.
func (c *Client) Lookup(ctx context.Context, name, region string) (*place.Detail, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("region", region)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+detailsPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "build details request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "details call failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeProviderUnavailable,
			fmt.Sprintf("details lookup returned %d", resp.StatusCode))
	}

	var parsed detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "decode details response")
	}
	if parsed.Name == "" {
		return nil, nil
	}

	detail := &place.Detail{
		Name:    parsed.Name,
		Address: parsed.Address,
		Rating:  parsed.Rating,
		Phone:   parsed.Phone,
	}
	if parsed.Lat != 0 || parsed.Lng != 0 {
		detail.Coord = &place.Coordinate{Lat: parsed.Lat, Lng: parsed.Lng}
	}

	c.logger.Debug("detail lookup completed",
		logging.String("name", name),
		logging.Bool("found", true))
	return detail, nil
}

//Personal.AI order the ending
