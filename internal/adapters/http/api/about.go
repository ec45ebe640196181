package api

import (
	"net/http"

	"github.com/kane/portfolio-api/internal/content"
)

// AboutDependencies defines the interface for the about endpoint.
type AboutDependencies interface {
	About() content.About
}

// AboutHandler serves the profile section.
type AboutHandler struct {
	deps AboutDependencies
}

// NewAboutHandler creates a new about handler.
func NewAboutHandler(deps AboutDependencies) *AboutHandler {
	return &AboutHandler{deps: deps}
}

// HandleGetAbout handles GET /v1/about requests.
func (h *AboutHandler) HandleGetAbout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.About())
}
