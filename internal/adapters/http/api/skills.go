package api

import (
	"net/http"

	"github.com/kane/portfolio-api/internal/content"
)

// SkillsDependencies defines the interface for the skills endpoint.
type SkillsDependencies interface {
	Skills() []content.SkillGroup
}

// SkillsHandler serves the skill groups.
type SkillsHandler struct {
	deps SkillsDependencies
}

// NewSkillsHandler creates a new skills handler.
func NewSkillsHandler(deps SkillsDependencies) *SkillsHandler {
	return &SkillsHandler{deps: deps}
}

// HandleListSkills handles GET /v1/skills requests.
func (h *SkillsHandler) HandleListSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.deps.Skills()})
}
