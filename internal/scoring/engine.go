// Package scoring computes per-contact relationship freshness metrics
// from a calendar snapshot and a contact's declared cadence.
package scoring

import (
	"fmt"
	"time"

	"github.com/socialdir/socialdir/internal/calendar"
	"github.com/socialdir/socialdir/internal/contact"
)

// WeeksNeverSeen marks a contact with no qualifying past event. It is
// distinct from a score of zero: zero weeks means "seen this week".
const WeeksNeverSeen = -1

// Engine scores contacts against a fixed event snapshot. All methods
// are pure functions of (snapshot, email, label, now).
type Engine struct {
	index *calendar.Index
}

// NewEngine creates an Engine over a loaded event index.
func NewEngine(index *calendar.Index) *Engine {
	return &Engine{index: index}
}

// AchievementRatio returns the fraction of the contact's yearly meeting
// target actually met within the cadence's lookback window. The ratio
// is not clamped: it exceeds 1.0 when over target and is exactly 0 when
// no events fall in the window.
func (e *Engine) AchievementRatio(email, label string, now time.Time) (float64, error) {
	params, err := contact.ParamsFor(label)
	if err != nil {
		return 0, err
	}

	past := e.index.EventsInWindow(email, params.EarliestRelevant(now), now)
	return float64(len(past)) / float64(params.TargetPerYear), nil
}

// WeeksSinceLastSeen returns the whole number of weeks elapsed since
// the most recent past event with this contact, truncated toward zero.
// Returns WeeksNeverSeen when no past event exists; future events never
// count as "last seen".
func (e *Engine) WeeksSinceLastSeen(email string, now time.Time) int {
	last := e.index.LastEventBefore(email, now)
	if last == nil {
		return WeeksNeverSeen
	}
	return int(now.Sub(last.Start).Hours() / (24 * 7))
}

// LastSeenScore returns weeks-since-last-seen normalized by the
// cadence's max-weeks-apart threshold, so scores are comparable across
// contacts with different cadences: anything above 1.0 is overdue
// relative to that contact's own target. A contact never seen scores 0
// exactly - neutral, not most-urgent.
func (e *Engine) LastSeenScore(email, label string, now time.Time) (float64, error) {
	params, err := contact.ParamsFor(label)
	if err != nil {
		return 0, err
	}

	weeks := e.WeeksSinceLastSeen(email, now)
	if weeks == WeeksNeverSeen {
		return 0, nil
	}
	return float64(weeks) / float64(params.MaxWeeksApart), nil
}

// Scored annotates a contact with the metrics computed for one run.
// Scoring never mutates the input contact.
type Scored struct {
	contact.Contact

	Score     float64 // Last-seen urgency, used for ranking
	Ratio     float64 // Achievement ratio, persisted to the sheet
	Weeks     int     // Weeks since last seen, WeeksNeverSeen when none
	LastSeen  string  // Phrase like "3 months ago", empty when never seen
	Scheduled bool    // A future event with this contact already exists

	LastEvent *calendar.Event // Most recent past event, nil when none
	NextEvent *calendar.Event // Earliest future event, nil when none
}

// Score computes the full annotation for one contact. An unrecognized
// cadence label is fatal for the run, never defaulted.
func (e *Engine) Score(c contact.Contact, now time.Time) (Scored, error) {
	s := Scored{Contact: c, Weeks: WeeksNeverSeen}

	// An empty roster email can never match an attendee; leave the
	// contact unscored rather than feed "" to the normalizer.
	if c.Email == "" {
		return s, nil
	}

	ratio, err := e.AchievementRatio(c.Email, c.TargetFrequency, now)
	if err != nil {
		return Scored{}, fmt.Errorf("scoring %s: %w", c.Name(), err)
	}
	score, err := e.LastSeenScore(c.Email, c.TargetFrequency, now)
	if err != nil {
		return Scored{}, fmt.Errorf("scoring %s: %w", c.Name(), err)
	}

	s.Ratio = ratio
	s.Score = score
	s.Weeks = e.WeeksSinceLastSeen(c.Email, now)
	s.Scheduled = e.index.IsScheduled(c.Email, now)
	s.LastEvent = e.index.LastEventBefore(c.Email, now)
	s.NextEvent = e.index.NextEventAfter(c.Email, now)

	if s.LastEvent != nil {
		s.LastSeen = lastSeenPhrase(s.LastEvent.Start, now)
	}

	return s, nil
}

// lastSeenPhrase formats the elapsed time since an event in whole
// calendar months, matching what gets written back to the sheet.
func lastSeenPhrase(last, now time.Time) string {
	months := (now.Year()-last.Year())*12 + int(now.Month()) - int(last.Month())
	if now.Day() < last.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	if months == 1 {
		return "1 month ago"
	}
	return fmt.Sprintf("%d months ago", months)
}
