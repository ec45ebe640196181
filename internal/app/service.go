// Package app wires the domain components into one service implementing the
// dependencies required by the HTTP API and the MCP dispatch table.
package app

import (
	"context"
	"time"

	"github.com/kane/portfolio-api/internal/availability"
	"github.com/kane/portfolio-api/internal/chat"
	"github.com/kane/portfolio-api/internal/clock"
	"github.com/kane/portfolio-api/internal/config"
	"github.com/kane/portfolio-api/internal/contact"
	"github.com/kane/portfolio-api/internal/content"
	"github.com/kane/portfolio-api/internal/mcp"
	"github.com/kane/portfolio-api/internal/ratelimit"
	"github.com/kane/portfolio-api/pkg/logger"
)

// Service composes the content store with the derived components. All
// state is either immutable after construction or owned by a single
// component, so the service is safe for concurrent handlers.
type Service struct {
	store     *content.Store
	writeups  *content.Writeups
	filter    *availability.Filter
	responder *chat.Responder
	notifier  *contact.Notifier
	clock     *clock.Provider
	adapter   *mcp.Adapter
	limiter   ratelimit.Limiter
	log       logger.Logger
}

// Option applies a configuration option to the Service under construction.
type Option func(*options)

type options struct {
	log  logger.Logger
	seed []byte
}

// WithLogger sets the service logger.
func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSeed overrides the content document with raw JSON. Used by tests to
// run against alternate corpora.
func WithSeed(raw []byte) Option {
	return func(o *options) { o.seed = raw }
}

// New builds the service from configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	storeOpts := []content.Option{}
	if o.seed != nil {
		storeOpts = append(storeOpts, content.WithSeed(o.seed))
	} else if cfg.DataPath != "" {
		storeOpts = append(storeOpts, content.WithSeedPath(cfg.DataPath))
	}
	store, err := content.New(storeOpts...)
	if err != nil {
		return nil, err
	}

	s := &Service{
		store:     store,
		writeups:  content.NewWriteups(cfg.ContentDir),
		filter:    availability.NewFilter(store),
		responder: chat.NewResponder(store),
		notifier: contact.New(
			contact.WithWebhook(cfg.ContactWebhook),
			contact.WithTimeout(time.Duration(cfg.ContactTimeoutSeconds)*time.Second),
			contact.WithLogger(o.log),
		),
		clock:   clock.New(),
		limiter: ratelimit.New(ratelimit.WithLimit(cfg.RateLimitPerMinute)),
		log:     o.log,
	}
	s.adapter = mcp.New(s,
		mcp.WithWebhook(cfg.MCPWebhook),
		mcp.WithTimeout(time.Duration(cfg.MCPTimeoutSeconds)*time.Second),
		mcp.WithManifestPath(cfg.ManifestPath),
		mcp.WithServerInfo(config.AppName+" MCP", config.AppVersion),
		mcp.WithLogger(o.log),
	)
	return s, nil
}

// MCP returns the tool-invocation adapter.
func (s *Service) MCP() *mcp.Adapter { return s.adapter }

// Limiter returns the per-address rate limiter.
func (s *Service) Limiter() ratelimit.Limiter { return s.limiter }

// About returns the profile section.
func (s *Service) About() content.About { return s.store.About() }

// Pillars returns the capability pillars.
func (s *Service) Pillars() []content.Pillar { return s.store.Pillars() }

// WorkItems returns case studies, truncated when limit is positive.
func (s *Service) WorkItems(limit int) []content.WorkItem { return s.store.WorkItems(limit) }

// WorkItem looks up one case study by slug.
func (s *Service) WorkItem(slug string) (content.WorkItem, bool) { return s.store.WorkItem(slug) }

// WorkContent reads the long-form write-up for one case study.
func (s *Service) WorkContent(slug string) (content.WorkContent, error) {
	return s.writeups.Get(slug)
}

// Experience returns the career timeline.
func (s *Service) Experience() []content.ExperienceItem { return s.store.Experience() }

// Skills returns the skill groups.
func (s *Service) Skills() []content.SkillGroup { return s.store.Skills() }

// Certifications returns credentials plus continuing education.
func (s *Service) Certifications() content.Certifications { return s.store.Certifications() }

// ContactChannels returns the public contact points.
func (s *Service) ContactChannels() content.ContactChannels { return s.store.ContactChannels() }

// FilterAvailability returns the free windows overlapping rangeExpr.
func (s *Service) FilterAvailability(rangeExpr string) availability.Result {
	return s.filter.Apply(rangeExpr)
}

// CreateHold mints an ephemeral booking hold.
func (s *Service) CreateHold(start, end time.Time, requester string) availability.Hold {
	return availability.NewHold(start, end, requester)
}

// CurrentTime returns the current time in GMT+7.
func (s *Service) CurrentTime() clock.Snapshot { return s.clock.Now() }

// SubmitContact assigns a ticket id and relays the message.
func (s *Service) SubmitContact(ctx context.Context, msg contact.Message) string {
	return s.notifier.Submit(ctx, msg)
}

// AnswerQuestion answers a free-text question from the chat corpus.
func (s *Service) AnswerQuestion(question, audience string) chat.Response {
	return s.responder.Answer(question, audience)
}
