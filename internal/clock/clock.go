// Package clock reports the current wall-clock time in GMT+7 regardless of
// the deployment's own system time zone.
package clock

import (
	"fmt"
	"time"
)

const zoneName = "Asia/Bangkok"

// Snapshot is the decomposed current time.
type Snapshot struct {
	TimeZone    string    `json:"time_zone"`
	Offset      string    `json:"offset"`
	DatetimeISO time.Time `json:"datetime_iso"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Day         int       `json:"day"`
	Hour        int       `json:"hour"`
	Minute      int       `json:"minute"`
	Second      int       `json:"second"`
	Weekday     string    `json:"weekday"`
	TZAbbr      string    `json:"tz_abbr"`
}

// Provider resolves the fixed civil time zone once.
type Provider struct {
	loc   *time.Location
	label string
	now   func() time.Time
}

// New creates a Provider for Asia/Bangkok, falling back to a fixed UTC+7
// offset when the named zone is missing from the zone database. The
// time_zone label reflects which source was used.
func New() *Provider {
	loc, err := time.LoadLocation(zoneName)
	label := zoneName
	if err != nil {
		loc = time.FixedZone("UTC+7", 7*60*60)
		label = "UTC+7"
	}
	return &Provider{loc: loc, label: label, now: time.Now}
}

// Now returns the current time decomposed into fields.
func (p *Provider) Now() Snapshot {
	now := p.now().In(p.loc)

	_, offsetSec := now.Zone()
	sign := "+"
	if offsetSec < 0 {
		sign = "-"
		offsetSec = -offsetSec
	}
	offset := fmt.Sprintf("%s%02d:%02d", sign, offsetSec/3600, offsetSec%3600/60)

	return Snapshot{
		TimeZone:    p.label,
		Offset:      offset,
		DatetimeISO: now,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		Year:        now.Year(),
		Month:       int(now.Month()),
		Day:         now.Day(),
		Hour:        now.Hour(),
		Minute:      now.Minute(),
		Second:      now.Second(),
		Weekday:     now.Weekday().String(),
		TZAbbr:      now.Format("MST"),
	}
}
