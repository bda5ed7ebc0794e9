package calendar

import (
	"testing"
	"time"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func event(id string, start time.Time, attendees ...string) Event {
	return Event{ID: id, Start: start, Attendees: attendees}
}

func TestIsScheduled(t *testing.T) {
	farFuture := now.AddDate(500, 0, 0)
	farPast := now.AddDate(-500, 0, 0)

	tests := []struct {
		name     string
		events   []Event
		email    string
		expected bool
	}{
		{
			name:     "matching attendee on future event",
			events:   []Event{event("a", farFuture, "john.doe@gmail.com")},
			email:    "john.doe@gmail.com",
			expected: true,
		},
		{
			name:     "matching attendee only on past event",
			events:   []Event{event("a", farPast, "john.doe@gmail.com")},
			email:    "john.doe@gmail.com",
			expected: false,
		},
		{
			name:     "non-matching attendee on future event",
			events:   []Event{event("a", farFuture, "john.doe@gmail.com")},
			email:    "bob.dole@gmail.com",
			expected: false,
		},
		{
			name:     "matches via normalized email",
			events:   []Event{event("a", farFuture, "John.Doe@gmail.com")},
			email:    "johndoe@gmail.com",
			expected: true,
		},
		{
			name:     "event without attendees never matches",
			events:   []Event{event("a", farFuture)},
			email:    "john.doe@gmail.com",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex(tt.events)
			if got := ix.IsScheduled(tt.email, now); got != tt.expected {
				t.Errorf("IsScheduled(%q) = %v, want %v", tt.email, got, tt.expected)
			}
		})
	}
}

func TestLastEventBefore(t *testing.T) {
	email := "john.doe@gmail.com"

	t.Run("no events", func(t *testing.T) {
		ix := NewIndex(nil)
		if got := ix.LastEventBefore(email, now); got != nil {
			t.Errorf("LastEventBefore() = %v, want nil", got)
		}
	})

	t.Run("future events do not count", func(t *testing.T) {
		ix := NewIndex([]Event{event("a", now.AddDate(0, 0, 14), email)})
		if got := ix.LastEventBefore(email, now); got != nil {
			t.Errorf("LastEventBefore() = %v, want nil", got)
		}
	})

	t.Run("picks the most recent past event", func(t *testing.T) {
		ix := NewIndex([]Event{
			event("older", now.AddDate(0, 0, -28), email),
			event("newer", now.AddDate(0, 0, -14), email),
			event("future", now.AddDate(0, 0, 7), email),
		})
		got := ix.LastEventBefore(email, now)
		if got == nil || got.ID != "newer" {
			t.Errorf("LastEventBefore() = %v, want event %q", got, "newer")
		}
	})

	t.Run("equal starts keep insertion order", func(t *testing.T) {
		start := now.AddDate(0, 0, -7)
		ix := NewIndex([]Event{
			event("first", start, email),
			event("second", start, email),
		})
		got := ix.LastEventBefore(email, now)
		if got == nil || got.ID != "first" {
			t.Errorf("LastEventBefore() = %v, want event %q", got, "first")
		}
	})
}

func TestNextEventAfter(t *testing.T) {
	email := "john.doe@gmail.com"

	t.Run("no future events", func(t *testing.T) {
		ix := NewIndex([]Event{event("a", now.AddDate(0, 0, -7), email)})
		if got := ix.NextEventAfter(email, now); got != nil {
			t.Errorf("NextEventAfter() = %v, want nil", got)
		}
	})

	t.Run("picks the soonest future event", func(t *testing.T) {
		ix := NewIndex([]Event{
			event("later", now.AddDate(0, 2, 0), email),
			event("sooner", now.AddDate(0, 0, 3), email),
			event("past", now.AddDate(0, 0, -3), email),
		})
		got := ix.NextEventAfter(email, now)
		if got == nil || got.ID != "sooner" {
			t.Errorf("NextEventAfter() = %v, want event %q", got, "sooner")
		}
	})
}

func TestEventsInWindow(t *testing.T) {
	email := "john.doe@gmail.com"
	from := now.AddDate(0, -1, 0)

	ix := NewIndex([]Event{
		event("on-from-bound", from, email),
		event("inside", now.AddDate(0, 0, -14), email),
		event("on-to-bound", now, email),
		event("future", now.AddDate(0, 0, 14), email),
		event("other-person", now.AddDate(0, 0, -10), "someone@else.com"),
	})

	got := ix.EventsInWindow(email, from, now)
	if len(got) != 1 || got[0].ID != "inside" {
		t.Errorf("EventsInWindow() returned %d events %v, want only %q (both bounds exclusive)", len(got), got, "inside")
	}
}
