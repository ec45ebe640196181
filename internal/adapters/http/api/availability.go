package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kane/portfolio-api/internal/availability"
	"github.com/kane/portfolio-api/pkg/metrics"
)

// AvailabilityDependencies defines the interface for the availability endpoints.
type AvailabilityDependencies interface {
	FilterAvailability(rangeExpr string) availability.Result
	CreateHold(start, end time.Time, requester string) availability.Hold
}

// AvailabilityHandler serves free windows and mints holds.
type AvailabilityHandler struct {
	deps AvailabilityDependencies
}

// NewAvailabilityHandler creates a new availability handler.
func NewAvailabilityHandler(deps AvailabilityDependencies) *AvailabilityHandler {
	return &AvailabilityHandler{deps: deps}
}

// HandleGetAvailability handles GET /v1/availability?range= requests.
// Malformed range expressions never error; the unfiltered list comes back.
func (h *AvailabilityHandler) HandleGetAvailability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	metrics.RecordAvailabilityQuery()
	writeJSON(w, http.StatusOK, h.deps.FilterAvailability(r.URL.Query().Get("range")))
}

type holdRequest struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Requester string    `json:"requester"`
}

type holdResponse struct {
	HoldID    string    `json:"hold_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HandlePostHold handles POST /v1/availability/hold requests.
func (h *AvailabilityHandler) HandlePostHold(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req holdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid JSON body")
		return
	}
	if req.Start.IsZero() || req.End.IsZero() {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "start and end required")
		return
	}
	if !req.End.After(req.Start) {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "End must be after start.")
		return
	}
	hold := h.deps.CreateHold(req.Start, req.End, req.Requester)
	writeJSON(w, http.StatusOK, holdResponse{HoldID: hold.HoldID, ExpiresAt: hold.ExpiresAt})
}
