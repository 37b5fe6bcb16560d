package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veritrav/veritrav/internal/application/discovery"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
	apperrors "github.com/veritrav/veritrav/pkg/errors"
)

// VerificationHandler exposes the persisted verification history.
type VerificationHandler struct {
	repo   discovery.VerificationRepository
	logger logging.Logger
}

// NewVerificationHandler builds the handler.
func NewVerificationHandler(repo discovery.VerificationRepository, logger logging.Logger) *VerificationHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &VerificationHandler{repo: repo, logger: logger}
}

// VerificationListResponse wraps the records for a region.
type VerificationListResponse struct {
	Region  string                         `json:"region"`
	Results []discovery.VerificationRecord `json:"results"`
}

// ListByRegion handles GET /api/v1/regions/{region}/verifications.
func (h *VerificationHandler) ListByRegion(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	if region == "" {
		writeAppError(w, apperrors.InvalidParam("region is required"))
		return
	}
	limit := queryInt(r, "limit", 50)

	records, err := h.repo.ResultsByRegion(r.Context(), region, limit)
	if err != nil {
		h.logger.Error("failed to load verification history",
			logging.String("region", region), logging.Err(err))
		writeAppError(w, err)
		return
	}

	if records == nil {
		records = []discovery.VerificationRecord{}
	}
	writeJSON(w, http.StatusOK, VerificationListResponse{Region: region, Results: records})
}

//Personal.AI order the ending
