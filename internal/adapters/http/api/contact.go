package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kane/portfolio-api/internal/contact"
	"github.com/kane/portfolio-api/internal/content"
)

// ContactDependencies defines the interface for the contact endpoints.
type ContactDependencies interface {
	ContactChannels() content.ContactChannels
	SubmitContact(ctx context.Context, msg contact.Message) string
}

// ContactHandler serves contact channels and accepts messages.
type ContactHandler struct {
	deps ContactDependencies
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(deps ContactDependencies) *ContactHandler {
	return &ContactHandler{deps: deps}
}

// HandleGetContact handles GET /v1/contact requests.
func (h *ContactHandler) HandleGetContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"channels": h.deps.ContactChannels()})
}

// contactMessageRequest mirrors the POST /v1/contact/message schema. The
// honeypot field must stay empty; bots filling it are rejected before the
// notifier runs.
type contactMessageRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
}

type contactMessageResponse struct {
	TicketID    string    `json:"ticket_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// HandlePostMessage handles POST /v1/contact/message requests.
func (h *ContactHandler) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req contactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid JSON body")
		return
	}
	if req.Honeypot != "" {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "Invalid submission.")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "name, email, message required")
		return
	}

	ticketID := h.deps.SubmitContact(r.Context(), contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		IP:      clientAddr(r),
	})
	writeJSON(w, http.StatusOK, contactMessageResponse{
		TicketID:    ticketID,
		SubmittedAt: time.Now().UTC(),
	})
}
