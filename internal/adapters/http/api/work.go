package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kane/portfolio-api/internal/content"
)

// WorkDependencies defines the interface for the work endpoints.
type WorkDependencies interface {
	WorkItems(limit int) []content.WorkItem
	WorkItem(slug string) (content.WorkItem, bool)
}

// WorkHandler serves case studies.
type WorkHandler struct {
	deps     WorkDependencies
	maxLimit int
}

// NewWorkHandler creates a new work handler.
func NewWorkHandler(deps WorkDependencies, maxLimit int) *WorkHandler {
	return &WorkHandler{deps: deps, maxLimit: maxLimit}
}

// HandleListWork handles GET /v1/work?limit=N requests.
func (h *WorkHandler) HandleListWork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.maxLimit {
			writeError(w, r, http.StatusBadRequest, CodeBadRequest, "limit must be between 1 and "+strconv.Itoa(h.maxLimit))
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.deps.WorkItems(limit)})
}

// HandleGetWork handles GET /v1/work/{slug} requests.
func (h *WorkHandler) HandleGetWork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, "/v1/work/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid slug")
		return
	}
	item, ok := h.deps.WorkItem(slug)
	if !ok {
		writeError(w, r, http.StatusNotFound, CodeNotFound, "Work item not found.")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
