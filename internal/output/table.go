// Package output renders a digest for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/socialdir/socialdir/internal/calendar"
	"github.com/socialdir/socialdir/internal/digest"
)

// Digest writes the digest as formatted tables to stdout
func Digest(d digest.Digest) error {
	return DigestTo(os.Stdout, d)
}

// DigestTo writes the digest as formatted tables to the given writer
func DigestTo(w io.Writer, d digest.Digest) error {
	fmt.Fprintf(w, "Digest for %s\n", d.GeneratedAt.Format("Jan 02, 2006"))
	fmt.Fprintf(w, "Seen in the past month: %d    Scheduled: %d\n\n", d.RecentlyCount, d.UpcomingCount)

	if len(d.Active) > 0 {
		fmt.Fprintln(w, "Active Rotation")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tEMAIL\tSCORE\tTARGET\tLAST SEEN\tEVENT")
		fmt.Fprintln(tw, "----\t-----\t-----\t------\t---------\t-----")
		for _, s := range d.Active {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
				truncate(s.Name(), 25),
				truncate(s.Email, 30),
				s.Score,
				s.TargetFrequency,
				s.LastSeen,
				eventSummary(s.LastEvent),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if len(d.Scheduled) > 0 {
		fmt.Fprintln(w, "Scheduled")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tEMAIL\tTARGET\tWHEN\tEVENT")
		fmt.Fprintln(tw, "----\t-----\t------\t----\t-----")
		for _, s := range d.Scheduled {
			when := ""
			if s.NextEvent != nil {
				when = s.NextEvent.Start.Format("Jan 02, 2006")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				truncate(s.Name(), 25),
				truncate(s.Email, 30),
				s.TargetFrequency,
				when,
				eventSummary(s.NextEvent),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if len(d.Inactive) > 0 {
		fmt.Fprintln(w, "Inactive")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTARGET\tEMAIL")
		fmt.Fprintln(tw, "----\t------\t-----")
		for _, s := range d.Inactive {
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				truncate(s.Name(), 25),
				s.TargetFrequency,
				truncate(s.Email, 30),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}

func eventSummary(ev *calendar.Event) string {
	if ev == nil {
		return ""
	}
	return truncate(ev.Summary, 30)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
