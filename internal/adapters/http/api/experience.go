package api

import (
	"net/http"

	"github.com/kane/portfolio-api/internal/content"
)

// ExperienceDependencies defines the interface for the experience endpoint.
type ExperienceDependencies interface {
	Experience() []content.ExperienceItem
}

// ExperienceHandler serves the career timeline.
type ExperienceHandler struct {
	deps ExperienceDependencies
}

// NewExperienceHandler creates a new experience handler.
func NewExperienceHandler(deps ExperienceDependencies) *ExperienceHandler {
	return &ExperienceHandler{deps: deps}
}

// HandleListExperience handles GET /v1/experience requests.
func (h *ExperienceHandler) HandleListExperience(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.deps.Experience()})
}
