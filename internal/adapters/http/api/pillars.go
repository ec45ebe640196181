package api

import (
	"net/http"

	"github.com/kane/portfolio-api/internal/content"
)

// PillarsDependencies defines the interface for the pillars endpoint.
type PillarsDependencies interface {
	Pillars() []content.Pillar
}

// PillarsHandler serves the capability pillars.
type PillarsHandler struct {
	deps PillarsDependencies
}

// NewPillarsHandler creates a new pillars handler.
func NewPillarsHandler(deps PillarsDependencies) *PillarsHandler {
	return &PillarsHandler{deps: deps}
}

// HandleListPillars handles GET /v1/pillars requests.
func (h *PillarsHandler) HandleListPillars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.deps.Pillars()})
}
