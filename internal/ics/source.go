// Package ics loads calendar events from an ICS subscription feed, as
// an alternative to the Google Calendar API for calendars exposed only
// as an iCalendar URL.
package ics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog"
	"github.com/teambition/rrule-go"

	"github.com/socialdir/socialdir/internal/calendar"
)

// MaxEvents caps one load, mirroring the Calendar API limit.
const MaxEvents = 2500

// Source fetches and parses a single ICS feed.
type Source struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// New creates a Source for the given feed URL.
func New(url string, log zerolog.Logger) *Source {
	return &Source{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// LoadEvents fetches the feed and returns all events starting inside
// [from, to]. Recurring events are expanded to single instances within
// the window; events the parser cannot handle are skipped, not fatal.
func (s *Source) LoadEvents(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ICS feed: %w", err)
	}

	var events []calendar.Event
	for _, ve := range cal.Events() {
		expanded, err := expand(ve, from, to)
		if err != nil {
			s.log.Warn().Err(err).Str("url", s.url).Msg("skipping unparseable event")
			continue
		}
		events = append(events, expanded...)
		if len(events) >= MaxEvents {
			events = events[:MaxEvents]
			break
		}
	}

	s.log.Debug().Int("events", len(events)).Str("url", s.url).Msg("ics feed loaded")
	return events, nil
}

func (s *Source) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ICS feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ICS feed returned %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// expand converts one VEVENT into run-model events, expanding RRULE
// recurrences to the instances that fall inside [from, to].
func expand(ve *ical.VEvent, from, to time.Time) ([]calendar.Event, error) {
	base, err := convertEvent(ve)
	if err != nil {
		return nil, err
	}

	raw := ""
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		raw = p.Value
	}
	if raw == "" {
		if base.Start.After(from) && base.Start.Before(to) {
			return []calendar.Event{base}, nil
		}
		return nil, nil
	}

	rule, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("event %s: bad RRULE %q: %w", base.ID, raw, err)
	}
	rule.DTStart(base.Start)

	var out []calendar.Event
	for i, start := range rule.Between(from, to, false) {
		instance := base
		instance.ID = fmt.Sprintf("%s/%d", base.ID, i)
		instance.Start = start
		out = append(out, instance)
	}
	return out, nil
}

func convertEvent(ve *ical.VEvent) (calendar.Event, error) {
	var ev calendar.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.ID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentProperty(ical.PropertyUrl)); p != nil {
		ev.HTMLLink = p.Value
	}

	start, allDay, err := startOf(ve)
	if err != nil {
		return calendar.Event{}, err
	}
	ev.Start = start
	ev.AllDay = allDay

	for _, attendee := range ve.Attendees() {
		if email := attendee.Email(); email != "" {
			ev.Attendees = append(ev.Attendees, email)
		}
	}

	return ev, nil
}

// startOf extracts the event start, treating date-only DTSTART values
// as midnight local.
func startOf(ve *ical.VEvent) (time.Time, bool, error) {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil || p.Value == "" {
		return time.Time{}, false, fmt.Errorf("event missing DTSTART")
	}

	if isDateOnly(p) {
		start, err := time.ParseInLocation("20060102", p.Value, time.Local)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("bad DTSTART date %q: %w", p.Value, err)
		}
		return start, true, nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("bad DTSTART %q: %w", p.Value, err)
	}
	return start, false, nil
}

func isDateOnly(p *ical.IANAProperty) bool {
	if values, ok := p.ICalParameters["VALUE"]; ok && len(values) > 0 && strings.EqualFold(values[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
