package digest

import (
	"testing"
	"time"

	"github.com/socialdir/socialdir/internal/calendar"
	"github.com/socialdir/socialdir/internal/contact"
	"github.com/socialdir/socialdir/internal/scoring"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// scoreAll runs the real engine over a roster so these tests cover the
// scoring-to-ranking flow end to end.
func scoreAll(t *testing.T, roster []contact.Contact, events []calendar.Event) []scoring.Scored {
	t.Helper()

	engine := scoring.NewEngine(calendar.NewIndex(events))
	scored := make([]scoring.Scored, 0, len(roster))
	for _, c := range roster {
		s, err := engine.Score(c, now)
		if err != nil {
			t.Fatalf("Score(%s) error: %v", c.Name(), err)
		}
		scored = append(scored, s)
	}
	return scored
}

func TestBuild_RankingScenario(t *testing.T) {
	roster := []contact.Contact{
		{First: "Ann", Last: "Able", Email: "ann@example.com", TargetFrequency: "weekly"},
		{First: "Bob", Last: "Baker", Email: "bob@example.com", TargetFrequency: "monthly"},
		{First: "Cal", Last: "Cooper", Email: "cal@example.com", TargetFrequency: "annually"},
	}
	// One past event, 10 weeks ago, with Bob only.
	events := []calendar.Event{
		{ID: "ev1", Start: now.AddDate(0, 0, -70), Attendees: []string{"bob@example.com"}},
	}

	d := Build(scoreAll(t, roster, events), now)

	if len(d.Active) != 1 || len(d.Inactive) != 2 || len(d.Scheduled) != 0 {
		t.Fatalf("partition = %d active / %d inactive / %d scheduled, want 1/2/0",
			len(d.Active), len(d.Inactive), len(d.Scheduled))
	}

	// Bob: 10 weeks since last seen, monthly cadence => 10/4 = 2.5.
	if d.Active[0].Email != "bob@example.com" || d.Active[0].Score != 2.5 {
		t.Errorf("top active = %s score %v, want bob@example.com score 2.5",
			d.Active[0].Email, d.Active[0].Score)
	}

	// Never-seen contacts score 0 and land in Inactive, sorted by name.
	if d.Inactive[0].Last != "Able" || d.Inactive[1].Last != "Cooper" {
		t.Errorf("inactive order = %s, %s; want Able, Cooper",
			d.Inactive[0].Last, d.Inactive[1].Last)
	}
	for _, s := range d.Inactive {
		if s.Score != 0 {
			t.Errorf("inactive %s score = %v, want 0", s.Name(), s.Score)
		}
	}
}

func TestBuild_ScheduledPartition(t *testing.T) {
	roster := []contact.Contact{
		{First: "Ann", Last: "Able", Email: "ann@example.com", TargetFrequency: "weekly"},
		{First: "Bob", Last: "Baker", Email: "bob@example.com", TargetFrequency: "weekly"},
	}
	events := []calendar.Event{
		// Ann is overdue but already on a future event.
		{ID: "past", Start: now.AddDate(0, 0, -56), Attendees: []string{"ann@example.com"}},
		{ID: "future", Start: now.AddDate(0, 0, 7), Attendees: []string{"ann@example.com"}},
	}

	d := Build(scoreAll(t, roster, events), now)

	if len(d.Scheduled) != 1 || d.Scheduled[0].Email != "ann@example.com" {
		t.Fatalf("Scheduled = %v, want exactly ann@example.com", d.Scheduled)
	}
	if d.Scheduled[0].NextEvent == nil || d.Scheduled[0].NextEvent.ID != "future" {
		t.Error("scheduled contact missing its next event")
	}
	if d.UpcomingCount != 1 {
		t.Errorf("UpcomingCount = %d, want 1", d.UpcomingCount)
	}
}

func TestBuild_ActiveSortedByUrgency(t *testing.T) {
	roster := []contact.Contact{
		// Same 6-week gap, different cadences: weekly is far more
		// overdue than quarterly despite the identical raw gap.
		{First: "Quinn", Last: "Quarter", Email: "q@example.com", TargetFrequency: "quarterly"},
		{First: "Wendy", Last: "Week", Email: "w@example.com", TargetFrequency: "weekly"},
	}
	events := []calendar.Event{
		{ID: "q", Start: now.AddDate(0, 0, -42), Attendees: []string{"q@example.com"}},
		{ID: "w", Start: now.AddDate(0, 0, -42), Attendees: []string{"w@example.com"}},
	}

	d := Build(scoreAll(t, roster, events), now)

	if len(d.Active) != 2 || d.Active[0].Email != "w@example.com" {
		t.Fatalf("active order = %v, want weekly contact first", d.Active)
	}
}

func TestBuild_TieBreakByName(t *testing.T) {
	roster := []contact.Contact{
		{First: "Zoe", Last: "Zulu", Email: "z@example.com", TargetFrequency: "monthly"},
		{First: "Amy", Last: "Alpha", Email: "a@example.com", TargetFrequency: "monthly"},
	}
	events := []calendar.Event{
		{ID: "z", Start: now.AddDate(0, 0, -28), Attendees: []string{"z@example.com"}},
		{ID: "a", Start: now.AddDate(0, 0, -28), Attendees: []string{"a@example.com"}},
	}

	d := Build(scoreAll(t, roster, events), now)

	if len(d.Active) != 2 || d.Active[0].Last != "Alpha" {
		t.Fatalf("tied scores should order by name, got %v first", d.Active[0].Last)
	}
}

func TestBuild_RecentlyCount(t *testing.T) {
	roster := []contact.Contact{
		{First: "A", Email: "a@example.com", TargetFrequency: "monthly"},
		{First: "B", Email: "b@example.com", TargetFrequency: "monthly"},
		{First: "C", Email: "c@example.com", TargetFrequency: "monthly"},
	}
	events := []calendar.Event{
		{ID: "recent", Start: now.AddDate(0, 0, -10), Attendees: []string{"a@example.com"}},
		{ID: "exactly-30", Start: now.AddDate(0, 0, -30), Attendees: []string{"b@example.com"}},
		{ID: "too-old", Start: now.AddDate(0, 0, -31), Attendees: []string{"c@example.com"}},
	}

	d := Build(scoreAll(t, roster, events), now)

	// 10 and 30 days ago count; 31 does not.
	if d.RecentlyCount != 2 {
		t.Errorf("RecentlyCount = %d, want 2", d.RecentlyCount)
	}
}

func TestTop(t *testing.T) {
	d := Digest{Active: []scoring.Scored{
		{Contact: contact.Contact{First: "A"}},
		{Contact: contact.Contact{First: "B"}},
	}}

	if got := d.Top(10); len(got) != 2 {
		t.Errorf("Top(10) returned %d, want 2", len(got))
	}
	if got := d.Top(1); len(got) != 1 || got[0].First != "A" {
		t.Errorf("Top(1) = %v, want just A", got)
	}
}
