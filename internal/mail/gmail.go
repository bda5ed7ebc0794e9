// Package mail sends the digest email through the Gmail API.
package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Sender sends HTML mail from and to a fixed configured identity. No
// attachments, no fan-out.
type Sender struct {
	svc  *gmail.Service
	from string
	to   string
}

// New creates a Sender using an authenticated HTTP client.
func New(ctx context.Context, httpClient *http.Client, from, to string) (*Sender, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return &Sender{svc: svc, from: from, to: to}, nil
}

// Send transmits a single HTML message with the given subject.
func (s *Sender) Send(ctx context.Context, subject, html string) error {
	raw := base64.RawURLEncoding.EncodeToString([]byte(buildMessage(s.from, s.to, subject, html)))

	_, err := s.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildMessage assembles the raw RFC 2822 message. The subject is
// base64-encoded per RFC 2047 so non-ASCII survives transport.
func buildMessage(from, to, subject, html string) string {
	encodedSubject := "=?utf-8?B?" + base64.StdEncoding.EncodeToString([]byte(subject)) + "?="

	headers := []string{
		"From: " + from,
		"To: " + to,
		"Message-ID: <" + uuid.New().String() + "@socialdir>",
		"Content-Type: text/html; charset=utf-8",
		"MIME-Version: 1.0",
		"Subject: " + encodedSubject,
		"",
		html,
	}
	return strings.Join(headers, "\r\n")
}
