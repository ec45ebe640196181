// Package availability filters the configured free windows by an optional
// ISO interval expression and mints ephemeral booking holds.
package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/kane/portfolio-api/internal/content"
)

// holdTTL is the informational lifetime of a hold; expiry is never enforced.
const holdTTL = 30 * time.Minute

// Source provides the configured availability section and its time zone.
type Source interface {
	Availability() content.Availability
	Zone() *time.Location
}

// Result is the availability response shape.
type Result struct {
	GeneratedAt time.Time        `json:"generated_at"`
	TimeZone    string           `json:"time_zone"`
	Free        []content.Window `json:"free"`
}

// Filter answers availability queries against a Source.
type Filter struct {
	src Source
}

// NewFilter creates a Filter over the given source.
func NewFilter(src Source) *Filter {
	return &Filter{src: src}
}

// Apply returns the free windows overlapping rangeExpr, or all windows when
// rangeExpr is empty. A window is kept iff end > rangeStart AND
// start < rangeEnd; windows exactly touching a boundary are excluded.
// Malformed expressions fail soft: the filter is skipped and the unfiltered
// list is returned.
func (f *Filter) Apply(rangeExpr string) Result {
	data := f.src.Availability()
	free := data.Free

	if rangeExpr != "" {
		if start, end, err := parseRange(rangeExpr, f.src.Zone()); err == nil {
			kept := make([]content.Window, 0, len(free))
			for _, w := range free {
				if w.End.After(start) && w.Start.Before(end) {
					kept = append(kept, w)
				}
			}
			free = kept
		}
	}

	return Result{
		GeneratedAt: data.GeneratedAt,
		TimeZone:    data.TimeZone,
		Free:        free,
	}
}

// parseRange splits "<start>/<end>" and parses both sides.
func parseRange(expr string, zone *time.Location) (start, end time.Time, err error) {
	parts := strings.Split(expr, "/")
	if len(parts) != 2 {
		return start, end, fmt.Errorf("range must be <start>/<end>, got %q", expr)
	}
	if start, err = parseComponent(parts[0], zone, false); err != nil {
		return start, end, err
	}
	if end, err = parseComponent(parts[1], zone, true); err != nil {
		return start, end, err
	}
	return start, end, nil
}

// parseComponent parses an ISO-like datetime or bare date. Bare dates expand
// to start-of-day for the range start and end-of-day for the range end.
// Naive datetimes are assigned the store's zone rather than UTC.
func parseComponent(raw string, zone *time.Location, isEnd bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "T") && len(raw) == 10 {
		day, err := time.ParseInLocation("2006-01-02", raw, zone)
		if err != nil {
			return time.Time{}, err
		}
		if isEnd {
			return day.Add(24*time.Hour - time.Microsecond), nil
		}
		return day, nil
	}
	return dateparse.ParseIn(raw, zone)
}

// Hold is an ephemeral booking hold. Holds are returned to the caller but
// never retained or checked against other holds or windows.
type Hold struct {
	HoldID    string    `json:"hold_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Requester string    `json:"requester,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewHold mints a hold with a creation-derived id and a +30m expiry.
func NewHold(start, end time.Time, requester string) Hold {
	now := time.Now().UTC()
	return Hold{
		HoldID:    fmt.Sprintf("hold_%d", now.Unix()),
		Start:     start,
		End:       end,
		Requester: requester,
		ExpiresAt: now.Add(holdTTL),
	}
}
