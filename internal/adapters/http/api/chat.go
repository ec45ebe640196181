package api

import (
	"encoding/json"
	"net/http"

	"github.com/kane/portfolio-api/internal/chat"
	"github.com/kane/portfolio-api/pkg/metrics"
)

// ChatDependencies defines the interface for the chat endpoint.
type ChatDependencies interface {
	AnswerQuestion(question, audience string) chat.Response
}

// ChatHandler answers free-text portfolio questions.
type ChatHandler struct {
	deps ChatDependencies
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(deps ChatDependencies) *ChatHandler {
	return &ChatHandler{deps: deps}
}

type chatRequest struct {
	Question string `json:"question"`
	Audience string `json:"audience"`
}

// HandleAsk handles POST /v1/chat/ask requests.
func (h *ChatHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid JSON body")
		return
	}
	if req.Question == "" {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "question required")
		return
	}
	if req.Audience == "" {
		req.Audience = chat.AudienceGeneral
	}
	if !chat.ValidAudience(req.Audience) {
		writeError(w, r, http.StatusBadRequest, CodeBadRequest, "audience must be recruiter, engineer or general")
		return
	}
	metrics.RecordChatQuestion()
	writeJSON(w, http.StatusOK, h.deps.AnswerQuestion(req.Question, req.Audience))
}
