// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kane/portfolio-api/internal/availability"
	"github.com/kane/portfolio-api/internal/chat"
	"github.com/kane/portfolio-api/internal/clock"
	"github.com/kane/portfolio-api/internal/contact"
	"github.com/kane/portfolio-api/internal/content"
	"github.com/kane/portfolio-api/internal/mcp"
	"github.com/kane/portfolio-api/internal/ratelimit"
	"github.com/kane/portfolio-api/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	About() content.About
	Pillars() []content.Pillar
	WorkItems(limit int) []content.WorkItem
	WorkItem(slug string) (content.WorkItem, bool)
	Experience() []content.ExperienceItem
	Skills() []content.SkillGroup
	Certifications() content.Certifications
	ContactChannels() content.ContactChannels
	FilterAvailability(rangeExpr string) availability.Result
	CreateHold(start, end time.Time, requester string) availability.Hold
	CurrentTime() clock.Snapshot
	SubmitContact(ctx context.Context, msg contact.Message) string
	AnswerQuestion(question, audience string) chat.Response

	MCP() *mcp.Adapter
	Limiter() ratelimit.Limiter
}

// Options tunes the HTTP surface.
type Options struct {
	APIKey         string
	Version        string
	Environment    string
	MaxWorkLimit   int
	AllowedOrigins []string
	Logger         logger.Logger
}

// Server wires HTTP routes for the portfolio API.
type Server struct {
	systemHandler       *SystemHandler
	aboutHandler        *AboutHandler
	pillarsHandler      *PillarsHandler
	workHandler         *WorkHandler
	experienceHandler   *ExperienceHandler
	skillsHandler       *SkillsHandler
	certsHandler        *CertificationsHandler
	contactHandler      *ContactHandler
	availabilityHandler *AvailabilityHandler
	chatHandler         *ChatHandler
	timeHandler         *TimeHandler
	mcpHandler          *MCPHandler

	limiter ratelimit.Limiter
	apiKey  string
	origins []string
	log     logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts Options) *Server {
	if opts.MaxWorkLimit < 1 {
		opts.MaxWorkLimit = 20
	}
	return &Server{
		systemHandler:       NewSystemHandler(opts.Version, opts.Environment),
		aboutHandler:        NewAboutHandler(deps),
		pillarsHandler:      NewPillarsHandler(deps),
		workHandler:         NewWorkHandler(deps, opts.MaxWorkLimit),
		experienceHandler:   NewExperienceHandler(deps),
		skillsHandler:       NewSkillsHandler(deps),
		certsHandler:        NewCertificationsHandler(deps),
		contactHandler:      NewContactHandler(deps),
		availabilityHandler: NewAvailabilityHandler(deps),
		chatHandler:         NewChatHandler(deps),
		timeHandler:         NewTimeHandler(deps),
		mcpHandler:          NewMCPHandler(deps),
		limiter:             deps.Limiter(),
		apiKey:              opts.APIKey,
		origins:             opts.AllowedOrigins,
		log:                 opts.Logger,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.systemHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.systemHandler.HandleMetrics)

	mux.HandleFunc("/v1", MetricsMiddleware(s.systemHandler.HandleIndex, "index"))
	mux.HandleFunc("/v1/meta", MetricsMiddleware(s.systemHandler.HandleMeta, "meta"))
	mux.HandleFunc("/v1/about", MetricsMiddleware(s.aboutHandler.HandleGetAbout, "about"))
	mux.HandleFunc("/v1/pillars", MetricsMiddleware(s.pillarsHandler.HandleListPillars, "pillars"))
	mux.HandleFunc("/v1/work", MetricsMiddleware(s.workHandler.HandleListWork, "work"))
	mux.HandleFunc("/v1/work/", MetricsMiddleware(s.workHandler.HandleGetWork, "work_item"))
	mux.HandleFunc("/v1/experience", MetricsMiddleware(s.experienceHandler.HandleListExperience, "experience"))
	mux.HandleFunc("/v1/skills", MetricsMiddleware(s.skillsHandler.HandleListSkills, "skills"))
	mux.HandleFunc("/v1/certifications", MetricsMiddleware(s.certsHandler.HandleListCertifications, "certifications"))
	mux.HandleFunc("/v1/contact", MetricsMiddleware(s.contactHandler.HandleGetContact, "contact"))
	mux.HandleFunc("/v1/contact/message", MetricsMiddleware(s.contactHandler.HandlePostMessage, "contact_message"))
	mux.HandleFunc("/v1/availability", MetricsMiddleware(s.availabilityHandler.HandleGetAvailability, "availability"))
	mux.HandleFunc("/v1/availability/hold", MetricsMiddleware(s.availabilityHandler.HandlePostHold, "availability_hold"))
	mux.HandleFunc("/v1/chat/ask", MetricsMiddleware(s.chatHandler.HandleAsk, "chat_ask"))
	mux.HandleFunc("/v1/time/now", MetricsMiddleware(s.timeHandler.HandleNow, "time_now"))
	mux.HandleFunc("/v1/mcp/execute", MetricsMiddleware(s.mcpHandler.HandleExecute, "mcp_execute"))
}

// Handler wraps mux in the full middleware chain, outermost first:
// panic recovery, correlation id, request logging, rate limiting,
// API-key auth, cross-origin POST restriction.
func (s *Server) Handler(mux *http.ServeMux) http.Handler {
	var h http.Handler = mux
	h = s.postCORSMiddleware(h)
	h = s.authMiddleware(h)
	h = s.rateLimitMiddleware(h)
	h = s.loggingMiddleware(h)
	h = correlationMiddleware(h)
	h = s.recoveryMiddleware(h)
	return h
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the inner error record carried by every error response.
type errorBody struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError renders the uniform error envelope with the request's
// correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:          code,
		Message:       message,
		CorrelationID: CorrelationID(r.Context()),
	}})
}
