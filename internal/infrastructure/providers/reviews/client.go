// Package reviews implements the third-party review provider against a
// blog-search API.  A review hit is independent evidence that a place
// exists; crawled snippet content additionally feeds the quality score.
package reviews

import (
	"context"
	"encoding/json"
	"fmt"
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
	blogSearchPath = "/v1/search/blog.json"
	defaultTimeout = 10 * time.Second
	maxReviews     = 5
)

var markupTags = regexp.MustCompile(`</?b>`)

// Client searches blog posts mentioning a place.
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

// NewClient builds a review client.
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
		logger:       logger.Named("reviews"),
	}
}

// Name implements the provider interface.
func (c *Client) Name() string { return "reviews" }

type blogItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type blogResponse struct {
	Total int        `json:"total"`
	Items []blogItem `json:"items"`
}

// Reviews searches for "<name> <region> 후기" and returns up to maxReviews
// snippets.  The boolean result reports whether snippet content was
// retrieved, as opposed to bare result metadata.
func (c *Client) Reviews(ctx context.Context, name, region string) ([]place.ReviewSnippet, bool, error) {
	query := strings.TrimSpace(name + " " + region + " 후기")
	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(maxReviews))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+blogSearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "build review request")
	}
	req.Header.Set("X-Search-Client-Id", c.clientID)
	req.Header.Set("X-Search-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "blog search call failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, apperrors.New(apperrors.ErrCodeProviderUnavailable,
			fmt.Sprintf("blog search returned %d", resp.StatusCode))
	}

	var parsed blogResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "decode blog search response")
	}

	snippets := make([]place.ReviewSnippet, 0, len(parsed.Items))
	contentFetched := false
	for _, item := range parsed.Items {
		snippet := place.ReviewSnippet{
			Title:   markupTags.ReplaceAllString(item.Title, ""),
			Link:    item.Link,
			Snippet: markupTags.ReplaceAllString(item.Description, ""),
		}
		if snippet.Snippet != "" {
			contentFetched = true
		}
		snippets = append(snippets, snippet)
	}

	c.logger.Debug("review search completed",
		logging.String("query", query),
		logging.Int("results", len(snippets)))
	return snippets, contentFetched, nil
}

//Personal.AI order the ending
