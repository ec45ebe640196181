// Package chat answers free-text portfolio questions by naive keyword
// overlap against a corpus derived from the content store.
package chat

import (
	"fmt"
	"strings"

	"github.com/kane/portfolio-api/internal/content"
)

// maxMatches bounds how many corpus entries contribute to one answer.
const maxMatches = 3

// Audience values accepted by Answer.
const (
	AudienceRecruiter = "recruiter"
	AudienceEngineer  = "engineer"
	AudienceGeneral   = "general"
)

// suggestions is constant and independent of the question.
var suggestions = []string{"See availability", "View case studies", "Send a contact message"}

// Entry is one (sourceId, text) pair in the corpus.
type Entry struct {
	SourceID string
	Text     string
}

// Event is the single analytics record emitted per answered question.
type Event struct {
	Type     string   `json:"type"`
	Audience string   `json:"audience"`
	Intent   string   `json:"intent"`
	Sources  []string `json:"sources"`
}

// Response is the answer shape.
type Response struct {
	Answer      string   `json:"answer"`
	Sources     []string `json:"sources"`
	Suggestions []string `json:"suggestions"`
	Events      []Event  `json:"events"`
}

// Responder holds the static corpus. The corpus is built once at startup
// and never mutated, so Answer is safe for concurrent use.
type Responder struct {
	corpus []Entry
}

// NewResponder builds the corpus from every content section in fixed order:
// about, pillars, work, skills, faq.
func NewResponder(store *content.Store) *Responder {
	var corpus []Entry

	about := store.About()
	corpus = append(corpus, Entry{
		SourceID: "about",
		Text:     fmt.Sprintf("Headline: %s\nSummary: %s", about.Headline, about.Summary),
	})
	for _, pillar := range store.Pillars() {
		corpus = append(corpus, Entry{
			SourceID: pillar.ID,
			Text:     fmt.Sprintf("Pillar %s: %s", pillar.Title, strings.Join(pillar.Bullets, "; ")),
		})
	}
	for _, work := range store.WorkItems(0) {
		corpus = append(corpus, Entry{
			SourceID: work.Slug,
			Text:     fmt.Sprintf("%s - %s", work.Title, work.Summary),
		})
	}
	for _, group := range store.Skills() {
		names := make([]string, len(group.Items))
		for i, item := range group.Items {
			names[i] = item.Name
		}
		corpus = append(corpus, Entry{
			SourceID: group.ID,
			Text:     fmt.Sprintf("%s: %s", group.Title, strings.Join(names, ", ")),
		})
	}
	for _, faq := range store.FAQ() {
		corpus = append(corpus, Entry{SourceID: faq.ID, Text: faq.Answer})
	}

	return &Responder{corpus: corpus}
}

// Answer matches question tokens against the corpus and returns the first
// three matches in corpus order. An entry matches when any lowercased
// whitespace token of the question appears as a substring of the entry's
// lowercased text. Zero matches fall back to the first three corpus entries.
func (r *Responder) Answer(question, audience string) Response {
	tokens := strings.Fields(strings.ToLower(question))

	var matches []Entry
	for _, entry := range r.corpus {
		text := strings.ToLower(entry.Text)
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				matches = append(matches, entry)
				break
			}
		}
	}
	if len(matches) == 0 {
		matches = r.corpus
	}
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	parts := make([]string, len(matches))
	sources := make([]string, len(matches))
	for i, entry := range matches {
		parts[i] = entry.Text
		sources[i] = entry.SourceID
	}

	return Response{
		Answer:      strings.Join(parts, "\n\n"),
		Sources:     sources,
		Suggestions: suggestions,
		Events: []Event{{
			Type:     "chat",
			Audience: audience,
			Intent:   "portfolio_query",
			Sources:  sources,
		}},
	}
}

// ValidAudience reports whether audience is one of the accepted values.
func ValidAudience(audience string) bool {
	switch audience {
	case AudienceRecruiter, AudienceEngineer, AudienceGeneral:
		return true
	}
	return false
}

// CorpusSize reports the number of corpus entries.
func (r *Responder) CorpusSize() int { return len(r.corpus) }
