package opensearch

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/opensearch-project/opensearch-go/v3/opensearchapi"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// placesIndex is the logical name of the verified-place index; the
// configured prefix is prepended by Client.IndexName.
const placesIndex = "places"

// placeDoc is the indexed document shape.  Location is stored as a
// geo_point so the search can be extended with geo queries later.
type placeDoc struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Category  string    `json:"category,omitempty"`
	Region    string    `json:"region"`
	Rating    float64   `json:"rating,omitempty"`
	Location  *geoPoint `json:"location,omitempty"`
	Verified  bool      `json:"verified"`
	IndexedAt string    `json:"indexed_at"`
}

type geoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Searcher serves discovery from places already verified and indexed in
// earlier runs.  Hits are not primary-source records: they re-enter the
// pipeline as secondary candidates and are verified again.
type Searcher struct {
	client *Client
	logger logging.Logger
}

// NewSearcher wraps a connected Client as a search provider.
func NewSearcher(client *Client, logger logging.Logger) *Searcher {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Searcher{client: client, logger: logger.Named("place-index")}
}

// Name identifies the provider in diagnostics and logs.
func (s *Searcher) Name() string { return "local-index" }

// Search runs a relevance query for keyword within region.  The region is
// a hard filter: results indexed under a different region label never
// match, matching the behavior of the external providers which are always
// queried with the region in the search string.
func (s *Searcher) Search(ctx context.Context, region, keyword string, limit int) ([]place.Place, error) {
	if limit <= 0 {
		limit = 10
	}

	query := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"multi_match": map[string]interface{}{
							"query":  keyword,
							"fields": []string{"name^2", "category^1.5", "address"},
						},
					},
				},
				"filter": []interface{}{
					map[string]interface{}{
						"term": map[string]interface{}{"region": region},
					},
				},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]interface{}{"order": "desc"}},
			map[string]interface{}{"rating": map[string]interface{}{"order": "desc", "missing": "_last"}},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "marshal place index query")
	}

	resp, err := s.client.API().Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{s.client.IndexName(placesIndex)},
		Body:    bytes.NewReader(body),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProviderUnavailable, "place index search failed")
	}

	places := make([]place.Place, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc placeDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			s.logger.Warn("skipping malformed place document",
				logging.String("id", hit.ID), logging.Err(err))
			continue
		}
		places = append(places, docToPlace(doc))
	}

	s.logger.Debug("place index search",
		logging.String("region", region),
		logging.String("keyword", keyword),
		logging.Int("hits", len(places)))
	return places, nil
}

func docToPlace(doc placeDoc) place.Place {
	p := place.Place{
		Name:     doc.Name,
		Address:  doc.Address,
		Category: doc.Category,
		Rating:   doc.Rating,
	}
	if doc.Location != nil {
		p.Coord = &place.Coordinate{Lat: doc.Location.Lat, Lng: doc.Location.Lon}
	}
	return p
}

//Personal.AI order the ending
