// Package websearch implements the primary place-search provider against a
// Naver-style local search API.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

const (
	localSearchPath = "/v1/search/local.json"
	defaultTimeout  = 10 * time.Second
	// coordScale converts the API's integer coordinate encoding into
	// decimal degrees.
	coordScale = 1e7
)

// markupTags strips the highlight markup the search API embeds in titles.
var markupTags = regexp.MustCompile(`</?b>`)

// Client calls the local search API.  Responses mark every returned place
// as a primary-source hit.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       logging.Logger
}

// Config holds the client settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// NewClient builds a search client.
func NewClient(cfg Config, logger logging.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       logger.Named("websearch"),
	}
}

// Name implements the provider interface.
func (c *Client) Name() string { return "websearch" }

// localItem is one record in the local search response.
type localItem struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
}

type localResponse struct {
	Total int         `json:"total"`
	Items []localItem `json:"items"`
}

// Search queries "<region> <keyword>" and maps the response onto candidate
// places.
func (c *Client) Search(ctx context.Context, region, keyword string, limit int) ([]place.Place, error) {
	if limit <= 0 {
		limit = 10
	}

	query := strings.TrimSpace(region + " " + keyword)
	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(limit))
	params.Set("sort", "random")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+localSearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "build search request")
	}
	req.Header.Set("X-Search-Client-Id", c.clientID)
	req.Header.Set("X-Search-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "local search call failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.New(apperrors.ErrCodeProviderUnavailable,
			fmt.Sprintf("local search returned %d: %s", resp.StatusCode, string(body)))
	}

	var parsed localResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "decode local search response")
	}

	places := make([]place.Place, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		p := place.Place{
			Name:          markupTags.ReplaceAllString(item.Title, ""),
			Address:       firstNonEmpty(item.RoadAddress, item.Address),
			Category:      item.Category,
			PrimarySource: true,
		}
		if coord := parseCoord(item.MapY, item.MapX); coord != nil {
			p.Coord = coord
		}
		places = append(places, p)
	}

	c.logger.Debug("local search completed",
		logging.String("query", query),
		logging.Int("results", len(places)))
	return places, nil
}

// parseCoord converts the scaled-integer coordinate strings; a malformed
// pair yields nil rather than a bogus location.
func parseCoord(latRaw, lngRaw string) *place.Coordinate {
	if latRaw == "" || lngRaw == "" {
		return nil
	}
	latInt, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil
	}
	lngInt, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil
	}
	return &place.Coordinate{Lat: latInt / coordScale, Lng: lngInt / coordScale}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

//Personal.AI order the ending
