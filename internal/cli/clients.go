package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/socialdir/socialdir/internal/config"
	"github.com/socialdir/socialdir/internal/gcal"
	"github.com/socialdir/socialdir/internal/googleauth"
	"github.com/socialdir/socialdir/internal/ics"
	"github.com/socialdir/socialdir/internal/mail"
	"github.com/socialdir/socialdir/internal/run"
	"github.com/socialdir/socialdir/internal/sheets"
)

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// newRunner wires a Runner from config: authenticated Google clients
// for roster and mail, plus the configured event source. withSender
// false builds a runner that never dispatches mail (previews).
func newRunner(ctx context.Context, cfg *config.Config, log zerolog.Logger, withSender bool) (*run.Runner, error) {
	httpClient, err := googleauth.NewClient(ctx, cfg.Google.CredentialsPath, cfg.Google.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	roster, err := sheets.New(ctx, httpClient, sheets.Options{
		SheetID:     cfg.Sheets.ID,
		RosterRange: cfg.Sheets.RosterRange,
		ScoreRange:  cfg.Sheets.ScoreRange,
		Columns:     cfg.Sheets.Columns,
	})
	if err != nil {
		return nil, err
	}

	var events run.EventSource
	switch cfg.Calendar.Provider {
	case "ics":
		events = ics.New(cfg.Calendar.ICSURL, log)
	default:
		events, err = gcal.New(ctx, httpClient, cfg.Calendar.ID)
		if err != nil {
			return nil, err
		}
	}

	var sender run.Sender
	if withSender && cfg.Mail.Enabled {
		sender, err = mail.New(ctx, httpClient, cfg.Mail.From, cfg.Mail.To)
		if err != nil {
			return nil, err
		}
	}

	return run.New(roster, events, sender, log, run.Options{
		LookbackMonths:  cfg.Calendar.LookbackMonths,
		LookaheadMonths: cfg.Calendar.LookaheadMonths,
		SubjectPrefix:   cfg.Mail.SubjectPrefix,
		DirectoryURL:    cfg.Digest.DirectoryURL,
	}), nil
}
