package calendar

import "time"

// Event is one calendar entry inside the load window. Events are
// immutable once loaded for the duration of a run.
type Event struct {
	ID        string
	Summary   string
	Start     time.Time // All-day events start at midnight local
	AllDay    bool
	Attendees []string // Attendee email addresses; empty means unmatchable
	HTMLLink  string   // Link back to the event in the calendar UI
}
