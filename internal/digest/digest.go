// Package digest assembles the ranked views of a scored roster that
// feed the emailed digest and the terminal report.
package digest

import (
	"sort"
	"time"

	"github.com/socialdir/socialdir/internal/scoring"
)

// Digest is the complete contract handed to the renderers: ranked
// partitions of the roster plus the two summary counts.
type Digest struct {
	Active    []scoring.Scored // Seen before, not scheduled; most overdue first
	Inactive  []scoring.Scored // Never seen, not scheduled
	Scheduled []scoring.Scored // On a future event, soonest first

	RecentlyCount int // Contacts seen within the past 30 days
	UpcomingCount int // Contacts with a future event

	GeneratedAt time.Time
}

// Build partitions and ranks a scored roster.
//
// Not-scheduled contacts are ordered by urgency descending; ties break
// on name so the order is stable and meaningful (the frequency label is
// deliberately not a tie-break). Contacts never seen rank below all
// scored ones, in the Inactive section.
func Build(scored []scoring.Scored, now time.Time) Digest {
	d := Digest{GeneratedAt: now}

	for _, s := range scored {
		switch {
		case s.Scheduled:
			d.Scheduled = append(d.Scheduled, s)
		case s.Weeks == scoring.WeeksNeverSeen:
			d.Inactive = append(d.Inactive, s)
		default:
			d.Active = append(d.Active, s)
		}

		if s.LastEvent != nil {
			daysAgo := now.Sub(s.LastEvent.Start).Hours() / 24
			if daysAgo > 0 && daysAgo <= 30 {
				d.RecentlyCount++
			}
		}
	}

	sort.SliceStable(d.Active, func(i, j int) bool {
		if d.Active[i].Score != d.Active[j].Score {
			return d.Active[i].Score > d.Active[j].Score
		}
		return nameLess(d.Active[i], d.Active[j])
	})

	sort.SliceStable(d.Inactive, func(i, j int) bool {
		return nameLess(d.Inactive[i], d.Inactive[j])
	})

	// Soonest upcoming event first.
	sort.SliceStable(d.Scheduled, func(i, j int) bool {
		a, b := d.Scheduled[i].NextEvent, d.Scheduled[j].NextEvent
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return nameLess(d.Scheduled[i], d.Scheduled[j])
	})

	d.UpcomingCount = len(d.Scheduled)
	return d
}

func nameLess(a, b scoring.Scored) bool {
	if a.Last != b.Last {
		return a.Last < b.Last
	}
	return a.First < b.First
}

// Top returns the n most urgent active contacts.
func (d Digest) Top(n int) []scoring.Scored {
	if n > len(d.Active) {
		n = len(d.Active)
	}
	return d.Active[:n]
}
