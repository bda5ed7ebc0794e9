// Package sheets reads the contact roster from a Google Sheet and
// writes computed scores back.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/socialdir/socialdir/internal/contact"
)

// DefaultColumns is the ordered column list of the roster range.
var DefaultColumns = []string{"first", "last", "source", "email", "targetFrequency"}

// Client wraps the Sheets API for one spreadsheet.
type Client struct {
	svc         *sheets.Service
	sheetID     string
	rosterRange string
	scoreRange  string
	columns     []string
}

// Options configures which spreadsheet and ranges a Client reads and
// writes. Columns defaults to DefaultColumns when empty.
type Options struct {
	SheetID     string
	RosterRange string // e.g. "Directory!A2:E"
	ScoreRange  string // e.g. "Directory!F2:H", aligned row-for-row with the roster
	Columns     []string
}

// New creates a Client using an authenticated HTTP client.
func New(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	return &Client{
		svc:         svc,
		sheetID:     opts.SheetID,
		rosterRange: opts.RosterRange,
		scoreRange:  opts.ScoreRange,
		columns:     columns,
	}, nil
}

// LoadRoster reads the roster range and maps each row to a Contact via
// the ordered column list.
func (c *Client) LoadRoster(ctx context.Context) ([]contact.Contact, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, c.rosterRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster range %s: %w", c.rosterRange, err)
	}

	roster := make([]contact.Contact, 0, len(resp.Values))
	for _, row := range resp.Values {
		roster = append(roster, c.toContact(row))
	}
	return roster, nil
}

// WriteScores bulk-writes one row per roster entry into the score
// range, aligned by row position. This is a single update: a failure
// leaves the sheet either fully updated or fully unchanged.
func (c *Client) WriteScores(ctx context.Context, rows [][]interface{}) error {
	body := &sheets.ValueRange{Values: rows}

	_, err := c.svc.Spreadsheets.Values.Update(c.sheetID, c.scoreRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update score range %s: %w", c.scoreRange, err)
	}
	return nil
}

func (c *Client) toContact(row []interface{}) contact.Contact {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		s, _ := row[i].(string)
		return strings.TrimSpace(s)
	}

	var out contact.Contact
	for i, column := range c.columns {
		switch column {
		case "first":
			out.First = cell(i)
		case "last":
			out.Last = cell(i)
		case "source":
			out.Source = cell(i)
		case "email":
			out.Email = cell(i)
		case "targetFrequency":
			out.TargetFrequency = cell(i)
		}
	}
	return out
}
