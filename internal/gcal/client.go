// Package gcal loads calendar events from the Google Calendar API.
package gcal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/socialdir/socialdir/internal/calendar"
)

// MaxEvents is the upstream cap on events per load.
const MaxEvents = 2500

// Client wraps the Calendar API for a single calendar.
type Client struct {
	svc        *gcalendar.Service
	calendarID string
}

// New creates a Client using an authenticated HTTP client. calendarID
// is usually "primary".
func New(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := gcalendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{svc: svc, calendarID: calendarID}, nil
}

// LoadEvents fetches all events starting inside [from, to], recurring
// events expanded to single instances, ordered by start time.
func (c *Client) LoadEvents(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	var events []calendar.Event
	pageToken := ""

	for {
		call := c.svc.Events.List(c.calendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(MaxEvents)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}

		for _, item := range resp.Items {
			ev, err := convertEvent(item)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			if len(events) >= MaxEvents {
				return events, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return events, nil
}

// convertEvent maps an API event to the run model. Date-only starts
// (all-day events) become midnight local.
func convertEvent(item *gcalendar.Event) (calendar.Event, error) {
	ev := calendar.Event{
		ID:       item.Id,
		Summary:  item.Summary,
		HTMLLink: item.HtmlLink,
	}

	if item.Start != nil {
		switch {
		case item.Start.DateTime != "":
			start, err := time.Parse(time.RFC3339, item.Start.DateTime)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("event %s: bad start time %q: %w", item.Id, item.Start.DateTime, err)
			}
			ev.Start = start
		case item.Start.Date != "":
			start, err := time.ParseInLocation("2006-01-02", item.Start.Date, time.Local)
			if err != nil {
				return calendar.Event{}, fmt.Errorf("event %s: bad start date %q: %w", item.Id, item.Start.Date, err)
			}
			ev.Start = start
			ev.AllDay = true
		}
	}

	for _, attendee := range item.Attendees {
		if attendee.Email != "" {
			ev.Attendees = append(ev.Attendees, attendee.Email)
		}
	}

	return ev, nil
}
