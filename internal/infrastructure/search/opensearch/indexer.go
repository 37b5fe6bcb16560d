package opensearch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v3/opensearchapi"

	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// placesMapping defines the index schema.  name/address/category are
// analyzed text for relevance search, region is an exact-match keyword
// filter, location is a geo_point.
const placesMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "name":       {"type": "text"},
      "address":    {"type": "text"},
      "category":   {"type": "text"},
      "region":     {"type": "keyword"},
      "rating":     {"type": "float"},
      "location":   {"type": "geo_point"},
      "verified":   {"type": "boolean"},
      "indexed_at": {"type": "date"}
    }
  }
}`

// Indexer writes verified places into the local index so later discovery
// runs can serve them without external provider calls.
type Indexer struct {
	client *Client
	logger logging.Logger
	now    func() time.Time
}

// NewIndexer wraps a connected Client for index maintenance and writes.
func NewIndexer(client *Client, logger logging.Logger) *Indexer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Indexer{client: client, logger: logger.Named("place-indexer"), now: time.Now}
}

// EnsureIndex creates the place index if it does not exist yet.  An
// already-existing index is not an error.
func (i *Indexer) EnsureIndex(ctx context.Context) error {
	name := i.client.IndexName(placesIndex)
	_, err := i.client.API().Indices.Create(ctx, opensearchapi.IndicesCreateReq{
		Index: name,
		Body:  strings.NewReader(placesMapping),
	})
	if err != nil {
		if strings.Contains(err.Error(), "resource_already_exists_exception") {
			return nil
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create place index")
	}
	i.logger.Info("place index created", logging.String("index", name))
	return nil
}

// IndexPlace upserts a single verified place.  The document ID is derived
// from the normalized name and region, so re-indexing the same place
// overwrites instead of duplicating.
func (i *Indexer) IndexPlace(ctx context.Context, region string, p place.Place) error {
	doc := placeDoc{
		Name:      p.Name,
		Address:   p.EffectiveAddress(),
		Category:  p.Category,
		Region:    region,
		Rating:    p.Rating,
		Verified:  p.Verified,
		IndexedAt: i.now().UTC().Format(time.RFC3339),
	}
	if coord := p.ResolveCoord(); coord != nil {
		doc.Location = &geoPoint{Lat: coord.Lat, Lon: coord.Lng}
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "marshal place document")
	}

	_, err = i.client.API().Index(ctx, opensearchapi.IndexReq{
		Index:      i.client.IndexName(placesIndex),
		DocumentID: documentID(region, p.Name),
		Body:       bytes.NewReader(body),
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "index place document")
	}
	return nil
}

// IndexAccepted writes every accepted place from a discovery run.  Failures
// are logged and counted, never fatal: indexing is an optimization, not
// part of the response path.
func (i *Indexer) IndexAccepted(ctx context.Context, region string, places []place.Place) int {
	indexed := 0
	for _, p := range places {
		if err := i.IndexPlace(ctx, region, p); err != nil {
			i.logger.Warn("failed to index place",
				logging.String("name", p.Name), logging.Err(err))
			continue
		}
		indexed++
	}
	if indexed > 0 {
		i.logger.Debug("indexed accepted places",
			logging.String("region", region), logging.Int("count", indexed))
	}
	return indexed
}

func documentID(region, name string) string {
	norm := place.NormalizeName(name)
	sum := sha256.Sum256([]byte(region + "|" + norm))
	return hex.EncodeToString(sum[:16])
}

//Personal.AI order the ending
