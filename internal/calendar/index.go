package calendar

import (
	"time"

	"github.com/socialdir/socialdir/internal/contact"
)

// Index is an in-memory snapshot of calendar events for one run. It is
// loaded once and only queried afterwards; there are no incremental
// updates.
type Index struct {
	events []Event
}

// NewIndex builds an index over a loaded event set. Insertion order is
// preserved and used as the deterministic tie-break for equal start
// instants.
func NewIndex(events []Event) *Index {
	return &Index{events: events}
}

// Len returns the number of events in the snapshot.
func (ix *Index) Len() int {
	return len(ix.events)
}

// hasAttendee reports whether the event lists email as an attendee.
// Events without attendees are never matchable.
func hasAttendee(ev Event, email string) bool {
	for _, a := range ev.Attendees {
		if contact.MatchEmail(a, email) {
			return true
		}
	}
	return false
}

// IsScheduled reports whether at least one event strictly after now has
// a matching attendee.
func (ix *Index) IsScheduled(email string, now time.Time) bool {
	for _, ev := range ix.events {
		if ev.Start.After(now) && hasAttendee(ev, email) {
			return true
		}
	}
	return false
}

// LastEventBefore returns the matching event with the latest start
// strictly before now, or nil when no such event exists. Future events
// never count.
func (ix *Index) LastEventBefore(email string, now time.Time) *Event {
	var last *Event
	for i := range ix.events {
		ev := &ix.events[i]
		if !ev.Start.Before(now) || !hasAttendee(*ev, email) {
			continue
		}
		if last == nil || ev.Start.After(last.Start) {
			last = ev
		}
	}
	return last
}

// NextEventAfter returns the matching event with the earliest start
// strictly after now, or nil when none is scheduled.
func (ix *Index) NextEventAfter(email string, now time.Time) *Event {
	var next *Event
	for i := range ix.events {
		ev := &ix.events[i]
		if !ev.Start.After(now) || !hasAttendee(*ev, email) {
			continue
		}
		if next == nil || ev.Start.Before(next.Start) {
			next = ev
		}
	}
	return next
}

// EventsInWindow returns all matching events with a start strictly
// inside (from, to). Both bounds are exclusive.
func (ix *Index) EventsInWindow(email string, from, to time.Time) []Event {
	var out []Event
	for _, ev := range ix.events {
		if ev.Start.After(from) && ev.Start.Before(to) && hasAttendee(ev, email) {
			out = append(out, ev)
		}
	}
	return out
}
