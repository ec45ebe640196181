package content

import (
	_ "embed"
	"encoding/json"
	"os"
	"time"
)

//go:embed seed.json
var defaultSeed []byte

// Store exposes read-only lookups over the loaded document.
type Store struct {
	doc  Document
	zone *time.Location

	seed     []byte
	seedPath string
}

// Option applies a configuration option to the Store before loading.
type Option func(*Store)

// WithSeed loads the document from the given raw JSON instead of the
// embedded default. Used by tests to run against alternate corpora.
func WithSeed(raw []byte) Option {
	return func(s *Store) {
		if len(raw) > 0 {
			s.seed = raw
		}
	}
}

// WithSeedPath loads the document from a file, overriding the embedded default.
func WithSeedPath(path string) Option {
	return func(s *Store) {
		s.seedPath = path
	}
}

// New loads and validates the content document.
func New(opts ...Option) (*Store, error) {
	s := &Store{seed: defaultSeed}
	for _, opt := range opts {
		opt(s)
	}

	raw := s.seed
	if s.seedPath != "" {
		b, err := os.ReadFile(s.seedPath)
		if err != nil {
			return nil, Wrap("content.load", ErrLoadDocument, err)
		}
		raw = b
	}

	if err := json.Unmarshal(raw, &s.doc); err != nil {
		return nil, Wrap("content.load", ErrLoadDocument, err)
	}

	for _, w := range s.doc.Availability.Free {
		if !w.End.After(w.Start) {
			return nil, NewKind("content.load", ErrLoadDocument, "availability window end must be after start")
		}
	}

	// The availability zone drives naive range parsing; fall back to UTC
	// when the named zone is absent from the zone database.
	zone, err := time.LoadLocation(s.doc.Availability.TimeZone)
	if err != nil {
		zone = time.UTC
	}
	s.zone = zone

	return s, nil
}

// About returns the profile section.
func (s *Store) About() About { return s.doc.About }

// Pillars returns the capability pillars in document order.
func (s *Store) Pillars() []Pillar { return s.doc.Pillars }

// WorkItems returns case studies in document order, truncated to limit
// when limit is positive.
func (s *Store) WorkItems(limit int) []WorkItem {
	items := s.doc.Work
	if limit > 0 && limit < len(items) {
		return items[:limit]
	}
	return items
}

// WorkItem looks up one case study by slug. Absence is a normal outcome.
func (s *Store) WorkItem(slug string) (WorkItem, bool) {
	for _, item := range s.doc.Work {
		if item.Slug == slug {
			return item, true
		}
	}
	return WorkItem{}, false
}

// Experience returns the career timeline in document order.
func (s *Store) Experience() []ExperienceItem { return s.doc.Experience }

// Skills returns the skill groups in document order.
func (s *Store) Skills() []SkillGroup { return s.doc.Skills }

// Certifications returns credentials plus continuing education.
func (s *Store) Certifications() Certifications {
	return Certifications{
		Items:               s.doc.Certifications,
		ContinuingEducation: s.doc.ContinuingEd,
	}
}

// ContactChannels returns the public contact points.
func (s *Store) ContactChannels() ContactChannels { return s.doc.Contact.Channels }

// Availability returns the free/busy section as configured.
func (s *Store) Availability() Availability { return s.doc.Availability }

// FAQ returns the canned question/answer pairs in document order.
func (s *Store) FAQ() []FAQEntry { return s.doc.FAQ }

// Zone returns the location backing the availability time zone.
func (s *Store) Zone() *time.Location { return s.zone }
