package api

import (
	"net/http"

	"github.com/kane/portfolio-api/internal/content"
)

// CertificationsDependencies defines the interface for the certifications endpoint.
type CertificationsDependencies interface {
	Certifications() content.Certifications
}

// CertificationsHandler serves credentials and continuing education.
type CertificationsHandler struct {
	deps CertificationsDependencies
}

// NewCertificationsHandler creates a new certifications handler.
func NewCertificationsHandler(deps CertificationsDependencies) *CertificationsHandler {
	return &CertificationsHandler{deps: deps}
}

// HandleListCertifications handles GET /v1/certifications requests.
func (h *CertificationsHandler) HandleListCertifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Certifications())
}
