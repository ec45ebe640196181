// Package content loads the static portfolio document and exposes read-only
// lookups over it. The document is loaded once at startup and never mutated,
// so all accessors are safe for unsynchronized concurrent reads.
package content

import "time"

// LinkSet groups the external profile links.
type LinkSet struct {
	Site     string `json:"site,omitempty"`
	Resume   string `json:"resume,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// About is the profile headline section.
type About struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Headline string  `json:"headline"`
	Summary  string  `json:"summary"`
	Location string  `json:"location"`
	Links    LinkSet `json:"links"`
}

// Pillar is one capability pillar.
type Pillar struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// WorkKPI carries the optional outcome metrics of a case study.
type WorkKPI struct {
	LatencyReductionPct        *int `json:"latency_reduction_pct,omitempty"`
	OpsCostReductionPct        *int `json:"ops_cost_reduction_pct,omitempty"`
	Automations                *int `json:"automations,omitempty"`
	TeamsOnboarded             *int `json:"teams_onboarded,omitempty"`
	P95LatencyLT2sPct          *int `json:"p95_latency_lt_2s_pct,omitempty"`
	Sev1Incidents              *int `json:"sev1_incidents,omitempty"`
	BookingTimeReductionPct    *int `json:"booking_time_reduction_pct,omitempty"`
	ManualOpsReductionPct      *int `json:"manual_ops_reduction_pct,omitempty"`
	TimeToLaunchWeeks          *int `json:"time_to_launch_weeks,omitempty"`
	SupportTicketsReductionPct *int `json:"support_tickets_reduction_pct,omitempty"`
	CompletionLiftPct          *int `json:"completion_lift_pct,omitempty"`
}

// WorkExternal is an optional external reference for a case study.
type WorkExternal struct {
	URL string `json:"url,omitempty"`
}

// WorkItem is one case study, keyed by slug.
type WorkItem struct {
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle"`
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Stack       []string      `json:"stack"`
	KPI         WorkKPI       `json:"kpi"`
	External    *WorkExternal `json:"external,omitempty"`
}

// Period bounds a role; End is nil for current positions.
type Period struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// ExperienceItem is one entry in the career timeline.
type ExperienceItem struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Period       Period   `json:"period"`
	Location     string   `json:"location"`
	Highlights   []string `json:"highlights"`
}

// SkillItem is a single named skill with a 1-5 level.
type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Notes string `json:"notes,omitempty"`
}

// SkillGroup groups related skills.
type SkillGroup struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Items       []SkillItem `json:"items"`
}

// Certification is a formal credential.
type Certification struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	IssuedAt      time.Time `json:"issued_at"`
	Notes         string    `json:"notes,omitempty"`
	CredentialURL string    `json:"credential_url,omitempty"`
}

// ContinuingEducationItem is an informal course or program.
type ContinuingEducationItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Period string `json:"period"`
}

// Certifications is the combined credentials section.
type Certifications struct {
	Items               []Certification           `json:"items"`
	ContinuingEducation []ContinuingEducationItem `json:"continuing_education"`
}

// ContactChannels lists the public contact points.
type ContactChannels struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Window is one free availability window. Both bounds are timezone-aware;
// the loader rejects windows with end <= start.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Availability is the free/busy section of the document.
type Availability struct {
	GeneratedAt time.Time `json:"generated_at"`
	TimeZone    string    `json:"time_zone"`
	Free        []Window  `json:"free"`
}

// FAQEntry is one canned question/answer pair.
type FAQEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Document is the root content record with fixed named sections.
type Document struct {
	About          About           `json:"about"`
	Pillars        []Pillar        `json:"pillars"`
	Work           []WorkItem      `json:"work"`
	Experience     []ExperienceItem `json:"experience"`
	Skills         []SkillGroup    `json:"skills"`
	Certifications []Certification `json:"certifications"`
	ContinuingEd   []ContinuingEducationItem `json:"continuing_education"`
	Contact        struct {
		Channels ContactChannels `json:"channels"`
	} `json:"contact"`
	Availability Availability `json:"availability"`
	FAQ          []FAQEntry   `json:"faq"`
}
