package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kane/portfolio-api/pkg/metrics"
)

// SystemHandler serves health, metrics, and service metadata.
type SystemHandler struct {
	version     string
	environment string
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(version, environment string) *SystemHandler {
	return &SystemHandler{version: version, environment: environment}
}

// HandleHealth handles GET /healthz requests.
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// HandleMetrics serves the Prometheus registry.
func (h *SystemHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

type metaResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HandleMeta handles GET /v1/meta requests.
func (h *SystemHandler) HandleMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, metaResponse{Version: h.version, Environment: h.environment})
}

type indexResource struct {
	Name        string `json:"name"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type indexResponse struct {
	Resources []indexResource `json:"resources"`
}

// HandleIndex handles GET /v1 requests with the resource directory.
func (h *SystemHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, indexResponse{Resources: []indexResource{
		{Name: "about", Method: "GET", Path: "/v1/about", Description: "Profile and headline"},
		{Name: "pillars", Method: "GET", Path: "/v1/pillars", Description: "Capability pillars"},
		{Name: "work", Method: "GET", Path: "/v1/work", Description: "Case studies"},
		{Name: "experience", Method: "GET", Path: "/v1/experience", Description: "Career timeline"},
		{Name: "skills", Method: "GET", Path: "/v1/skills", Description: "Skill groups"},
		{Name: "certifications", Method: "GET", Path: "/v1/certifications", Description: "Credentials"},
		{Name: "contact", Method: "GET", Path: "/v1/contact", Description: "Contact channels"},
		{Name: "contact_message", Method: "POST", Path: "/v1/contact/message", Description: "Submit contact message"},
		{Name: "availability", Method: "GET", Path: "/v1/availability", Description: "Free/busy windows"},
		{Name: "availability_hold", Method: "POST", Path: "/v1/availability/hold", Description: "Create temporary hold"},
		{Name: "chat", Method: "POST", Path: "/v1/chat/ask", Description: "Ask portfolio assistant"},
		{Name: "time_now", Method: "GET", Path: "/v1/time/now", Description: "Current date/time in GMT+7 (Asia/Bangkok)"},
		{Name: "mcp_execute", Method: "POST", Path: "/v1/mcp/execute", Description: "Forward MCP request or execute locally"},
	}})
}
