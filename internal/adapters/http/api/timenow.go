package api

import (
	"net/http"

	"github.com/kane/portfolio-api/internal/clock"
)

// TimeDependencies defines the interface for the time endpoint.
type TimeDependencies interface {
	CurrentTime() clock.Snapshot
}

// TimeHandler serves the current time in GMT+7.
type TimeHandler struct {
	deps TimeDependencies
}

// NewTimeHandler creates a new time handler.
func NewTimeHandler(deps TimeDependencies) *TimeHandler {
	return &TimeHandler{deps: deps}
}

// HandleNow handles GET /v1/time/now requests.
func (h *TimeHandler) HandleNow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.CurrentTime())
}
