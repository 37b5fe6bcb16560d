package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/domain/place"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// Discoverer is the application service behind the discovery endpoint.
type Discoverer interface {
	Discover(ctx context.Context, req discovery.Request) (*discovery.Result, error)
}

// DiscoveryHandler serves place discovery requests.
type DiscoveryHandler struct {
	service Discoverer
	logger  logging.Logger
}

// NewDiscoveryHandler builds the handler.
func NewDiscoveryHandler(service Discoverer, logger logging.Logger) *DiscoveryHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DiscoveryHandler{service: service, logger: logger}
}

// DiscoveryRequest is the JSON body of POST /api/v1/discoveries.
type DiscoveryRequest struct {
	Prompt string `json:"prompt"`
	Region struct {
		Label       string           `json:"label"`
		Center      place.Coordinate `json:"center"`
		RadiusKm    float64          `json:"radius_km"`
		Specificity string           `json:"specificity,omitempty"`
	} `json:"region"`
	City                 string            `json:"city,omitempty"`
	RequiredDistrict     string            `json:"district,omitempty"`
	RequiredNeighborhood string            `json:"neighborhood,omitempty"`
	Start                *place.Coordinate `json:"start,omitempty"`
	Rainy                bool              `json:"rainy,omitempty"`
}

// Discover handles POST /api/v1/discoveries.
func (h *DiscoveryHandler) Discover(w http.ResponseWriter, r *http.Request) {
	var body DiscoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAppError(w, apperrors.InvalidParam("request body is not valid JSON"))
		return
	}
	if body.Prompt == "" {
		writeAppError(w, apperrors.InvalidParam("prompt is required"))
		return
	}

	req := discovery.Request{
		Prompt: body.Prompt,
		Region: place.Region{
			Label:       body.Region.Label,
			Center:      body.Region.Center,
			RadiusKm:    body.Region.RadiusKm,
			Specificity: place.Specificity(body.Region.Specificity),
		},
		City:                 body.City,
		RequiredDistrict:     body.RequiredDistrict,
		RequiredNeighborhood: body.RequiredNeighborhood,
		Start:                body.Start,
		Rainy:                body.Rainy,
		RequestID:            chimw.GetReqID(r.Context()),
	}

	result, err := h.service.Discover(r.Context(), req)
	if err != nil {
		if !apperrors.IsUserRequestError(err) {
			h.logger.Error("discovery run failed",
				logging.String("request_id", req.RequestID), logging.Err(err))
		}
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

//Personal.AI order the ending
