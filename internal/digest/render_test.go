package digest

import (
	"strings"
	"testing"

	"github.com/socialdir/socialdir/internal/calendar"
	"github.com/socialdir/socialdir/internal/contact"
	"github.com/socialdir/socialdir/internal/scoring"
)

func TestRender(t *testing.T) {
	last := calendar.Event{Summary: "Coffee", HTMLLink: "https://cal/1", Start: now.AddDate(0, -2, 0)}
	next := calendar.Event{Summary: "Lunch", HTMLLink: "https://cal/2", Start: now.AddDate(0, 0, 7)}

	d := Digest{
		Active: []scoring.Scored{{
			Contact:   contact.Contact{First: "Bob", Last: "Baker", Email: "bob@example.com", TargetFrequency: "monthly"},
			Score:     2.5,
			LastSeen:  "2 months ago",
			LastEvent: &last,
		}},
		Scheduled: []scoring.Scored{{
			Contact:   contact.Contact{First: "Ann", Last: "Able", Email: "ann@example.com", TargetFrequency: "weekly"},
			NextEvent: &next,
		}},
		Inactive: []scoring.Scored{{
			Contact: contact.Contact{First: "Cal", Last: "Cooper", Email: "cal@example.com", TargetFrequency: "annually"},
		}},
		RecentlyCount: 1,
		UpcomingCount: 1,
		GeneratedAt:   now,
	}

	html, err := Render(d, "https://docs.google.com/spreadsheets/d/abc")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, want := range []string{
		"You most need to see <b>Bob Baker</b>",
		"bob@example.com",
		"250%",
		"2 months ago",
		`<a href="https://cal/1">Coffee</a>`,
		`<a href="https://cal/2">Lunch</a>`,
		"Cal Cooper",
		`<a href="https://docs.google.com/spreadsheets/d/abc">Full Directory</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered digest missing %q", want)
		}
	}
}

func TestRender_EmptyDigest(t *testing.T) {
	html, err := Render(Digest{GeneratedAt: now}, "")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(html, "You most need to see") {
		t.Error("empty digest should not name a most-urgent contact")
	}
	if strings.Contains(html, "Full Directory") {
		t.Error("empty directory URL should omit the footer link")
	}
}
