package digest

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/socialdir/socialdir/internal/scoring"
)

// bodyTemplate mirrors the layout of the weekly digest email: a short
// summary followed by Active Rotation, Scheduled, and Inactive tables.
const bodyTemplate = `<h1>Summary</h1>
<ol>
  {{with mostUrgent .Digest}}<li>You most need to see <b>{{.Name}}</b></li>{{end}}
  <li>In the past month you've seen <b>{{.Digest.RecentlyCount}} people</b></li>
  <li>In the next year you have <b>{{.Digest.UpcomingCount}} people</b> scheduled</li>
</ol>
<h1>Active Rotation</h1>
<table>
  <tr>
    <th width="250" align="left">Name</th>
    <th width="250" align="left">Email</th>
    <th width="80" align="left">Score</th>
    <th width="120" align="left">Target</th>
    <th width="120" align="left">Last Seen</th>
    <th width="250" align="left">Event</th>
  </tr>
{{range .Digest.Active}}  <tr>
    <td width="250">{{.Name}}</td>
    <td width="250">{{.Email}}</td>
    <td width="80">{{percent .Score}}</td>
    <td width="120">{{.TargetFrequency}}</td>
    <td width="120">{{.LastSeen}}</td>
    <td width="250">{{with .LastEvent}}<a href="{{.HTMLLink}}">{{.Summary}}</a>{{end}}</td>
  </tr>
{{end}}</table>
<h1>Scheduled</h1>
<table>
  <tr>
    <th width="250" align="left">Name</th>
    <th width="250" align="left">Email</th>
    <th width="80" align="left">Score</th>
    <th width="120" align="left">Target</th>
    <th width="120" align="left">Scheduled</th>
    <th width="250" align="left">Event</th>
  </tr>
{{range .Digest.Scheduled}}  <tr>
    <td width="250">{{.Name}}</td>
    <td width="250">{{.Email}}</td>
    <td width="80">{{percent .Score}}</td>
    <td width="120">{{.TargetFrequency}}</td>
    <td width="120">{{with .NextEvent}}{{date .Start}}{{end}}</td>
    <td width="250">{{with .NextEvent}}<a href="{{.HTMLLink}}">{{.Summary}}</a>{{end}}</td>
  </tr>
{{end}}</table>
<h1>Inactive</h1>
<table>
  <tr>
    <th width="250" align="left">Name</th>
    <th width="120" align="left">Target</th>
    <th width="250" align="left">Email</th>
  </tr>
{{range .Digest.Inactive}}  <tr>
    <td width="250">{{.Name}}</td>
    <td width="120">{{.TargetFrequency}}</td>
    <td width="250">{{.Email}}</td>
  </tr>
{{end}}</table>
{{if .DirectoryURL}}<a href="{{.DirectoryURL}}">Full Directory</a>{{end}}
`

var body = template.Must(template.New("digest").Funcs(template.FuncMap{
	"percent":    formatPercent,
	"date":       func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"mostUrgent": mostUrgent,
}).Parse(bodyTemplate))

// Render produces the HTML body of the digest email.
func Render(d Digest, directoryURL string) (string, error) {
	var sb strings.Builder
	data := struct {
		Digest       Digest
		DirectoryURL string
	}{d, directoryURL}

	if err := body.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}
	return sb.String(), nil
}

// mostUrgent returns the top-ranked active contact, or nil when the
// active rotation is empty.
func mostUrgent(d Digest) *scoring.Scored {
	if len(d.Active) == 0 {
		return nil
	}
	return &d.Active[0]
}

func formatPercent(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}
