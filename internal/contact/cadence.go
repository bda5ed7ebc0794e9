package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnrecognizedCadence indicates a target frequency label outside the
// fixed set. A wrong default would corrupt both the ranking and the
// persisted scores, so callers must abort the run rather than recover.
var ErrUnrecognizedCadence = errors.New("unrecognized target frequency")

// Cadence is a contact's declared target meeting frequency
type Cadence string

const (
	CadenceWeekly     Cadence = "weekly"
	CadenceMonthly    Cadence = "monthly"
	CadenceQuarterly  Cadence = "quarterly"
	CadenceBiannually Cadence = "biannually"
	CadenceAnnually   Cadence = "annually"
)

// CadenceParams holds the scoring parameters derived from a cadence label.
type CadenceParams struct {
	LookbackMonths int // How far back events count toward the achievement ratio
	TargetPerYear  int // Target number of meetings per year
	MaxWeeksApart  int // Weeks between meetings before a contact is overdue
}

// EarliestRelevant returns the start of the achievement-ratio window.
func (p CadenceParams) EarliestRelevant(now time.Time) time.Time {
	return now.AddDate(0, -p.LookbackMonths, 0)
}

// ParamsFor resolves a cadence label (case-insensitive) to its scoring
// parameters. The table is deliberately non-linear (monthly targets 6/yr,
// not 12) - these constants are domain tuning, not round numbers.
func ParamsFor(label string) (CadenceParams, error) {
	switch Cadence(strings.ToLower(label)) {
	case CadenceWeekly:
		return CadenceParams{LookbackMonths: 1, TargetPerYear: 4, MaxWeeksApart: 1}, nil
	case CadenceMonthly:
		return CadenceParams{LookbackMonths: 6, TargetPerYear: 6, MaxWeeksApart: 4}, nil
	case CadenceQuarterly:
		return CadenceParams{LookbackMonths: 9, TargetPerYear: 3, MaxWeeksApart: 12}, nil
	case CadenceBiannually:
		return CadenceParams{LookbackMonths: 12, TargetPerYear: 2, MaxWeeksApart: 26}, nil
	case CadenceAnnually:
		return CadenceParams{LookbackMonths: 12, TargetPerYear: 1, MaxWeeksApart: 52}, nil
	default:
		return CadenceParams{}, fmt.Errorf("%w: %q", ErrUnrecognizedCadence, label)
	}
}
