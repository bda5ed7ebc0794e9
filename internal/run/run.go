// Package run orchestrates one digest run: load roster and calendar,
// score every contact, persist scores, send the digest.
package run

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/socialdir/socialdir/internal/calendar"
	"github.com/socialdir/socialdir/internal/contact"
	"github.com/socialdir/socialdir/internal/digest"
	"github.com/socialdir/socialdir/internal/scoring"
)

// Failure stages, wrapped around the underlying error so callers can
// tell which step aborted the run.
var (
	ErrRosterLoad   = errors.New("roster load failed")
	ErrCalendarLoad = errors.New("calendar load failed")
	ErrScoreWrite   = errors.New("score write failed")
	ErrMailDispatch = errors.New("mail dispatch failed")
)

// RosterSource loads contacts and persists their scores.
type RosterSource interface {
	LoadRoster(ctx context.Context) ([]contact.Contact, error)
	WriteScores(ctx context.Context, rows [][]interface{}) error
}

// EventSource loads calendar events for an inclusive time window.
type EventSource interface {
	LoadEvents(ctx context.Context, from, to time.Time) ([]calendar.Event, error)
}

// Sender dispatches the rendered digest.
type Sender interface {
	Send(ctx context.Context, subject, html string) error
}

// Options tunes a Runner.
type Options struct {
	LookbackMonths  int    // Event window before now (default 12)
	LookaheadMonths int    // Event window after now (default 12)
	SubjectPrefix   string // Prepended to the digest subject line
	DirectoryURL    string // "Full Directory" link in the digest footer
}

// Runner executes digest runs against injected collaborators, so tests
// substitute fakes without any package-level state.
type Runner struct {
	roster RosterSource
	events EventSource
	sender Sender
	log    zerolog.Logger
	opts   Options
}

// New creates a Runner. sender may be nil when mail is disabled.
func New(roster RosterSource, events EventSource, sender Sender, log zerolog.Logger, opts Options) *Runner {
	if opts.LookbackMonths <= 0 {
		opts.LookbackMonths = 12
	}
	if opts.LookaheadMonths <= 0 {
		opts.LookaheadMonths = 12
	}
	if opts.SubjectPrefix == "" {
		opts.SubjectPrefix = "[Social Directory]"
	}
	return &Runner{roster: roster, events: events, sender: sender, log: log, opts: opts}
}

// Result summarizes a completed run.
type Result struct {
	RunID    string
	Digest   digest.Digest
	Contacts int
	Events   int
}

// Run performs a full digest run. Persistence happens only after both
// loads succeed and every contact is scored; mail goes out only after
// persistence succeeds, so the sheet and the emailed ranking never
// diverge. Any failure aborts the run.
func (r *Runner) Run(ctx context.Context, now time.Time) (*Result, error) {
	res, scored, err := r.load(ctx, now)
	if err != nil {
		return nil, err
	}
	log := r.log.With().Str("run_id", res.RunID).Logger()

	if err := r.roster.WriteScores(ctx, scoreRows(scored, now)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoreWrite, err)
	}
	log.Info().Int("rows", len(scored)).Msg("scores persisted")

	if r.sender != nil {
		html, err := digest.Render(res.Digest, r.opts.DirectoryURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMailDispatch, err)
		}

		subject := fmt.Sprintf("%s %s", r.opts.SubjectPrefix, now.Format("Jan 2, 2006"))
		if err := r.sender.Send(ctx, subject, html); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMailDispatch, err)
		}
		log.Info().Str("subject", subject).Msg("digest sent")
	}

	return res, nil
}

// Preview loads and scores without persisting or sending mail.
func (r *Runner) Preview(ctx context.Context, now time.Time) (*Result, error) {
	res, _, err := r.load(ctx, now)
	return res, err
}

func (r *Runner) load(ctx context.Context, now time.Time) (*Result, []scoring.Scored, error) {
	runID := uuid.New().String()
	log := r.log.With().Str("run_id", runID).Logger()

	from := now.AddDate(0, -r.opts.LookbackMonths, 0)
	to := now.AddDate(0, r.opts.LookaheadMonths, 0)

	// Roster and calendar have no interdependency; load them together.
	type rosterResult struct {
		contacts []contact.Contact
		err      error
	}
	type eventsResult struct {
		events []calendar.Event
		err    error
	}

	rosterCh := make(chan rosterResult, 1)
	eventsCh := make(chan eventsResult, 1)

	go func() {
		contacts, err := r.roster.LoadRoster(ctx)
		rosterCh <- rosterResult{contacts, err}
	}()
	go func() {
		events, err := r.events.LoadEvents(ctx, from, to)
		eventsCh <- eventsResult{events, err}
	}()

	rr := <-rosterCh
	er := <-eventsCh

	if rr.err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrRosterLoad, rr.err)
	}
	if er.err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCalendarLoad, er.err)
	}
	log.Info().Int("contacts", len(rr.contacts)).Int("events", len(er.events)).Msg("loaded")

	engine := scoring.NewEngine(calendar.NewIndex(er.events))
	scored := make([]scoring.Scored, 0, len(rr.contacts))

	for _, c := range rr.contacts {
		if c.Email == "" {
			log.Warn().Str("name", c.Name()).Msg("contact has no email, left unscored")
		}
		s, err := engine.Score(c, now)
		if err != nil {
			return nil, nil, err
		}
		scored = append(scored, s)
	}

	res := &Result{
		RunID:    runID,
		Digest:   digest.Build(scored, now),
		Contacts: len(rr.contacts),
		Events:   len(er.events),
	}
	return res, scored, nil
}

// scoreRows builds the write-back rows, aligned by position with the
// roster: [score, lastSeenPhrase, runTimestamp] per contact.
func scoreRows(scored []scoring.Scored, now time.Time) [][]interface{} {
	timestamp := now.Format("2006-01-02")

	rows := make([][]interface{}, 0, len(scored))
	for _, s := range scored {
		rows = append(rows, []interface{}{s.Ratio, s.LastSeen, timestamp})
	}
	return rows
}
