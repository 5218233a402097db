package calc

import (
	"fmt"
	"strings"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
)

// creditedStatus is the exact status text of a credited salary event.
const creditedStatus = "Credited"

// MatchMode selects how a salary event date is compared with the reporting period.
type MatchMode int

const (
	// MatchSubstring credits when the date text contains the MM-YYYY tag.
	MatchSubstring MatchMode = iota
	// MatchPeriod credits when the parsed date falls in the reporting month.
	MatchPeriod
)

func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchPeriod:
		return "period"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode parses "substring" or "period", case-insensitively.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "substring":
		return MatchSubstring, nil
	case "period":
		return MatchPeriod, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown salary match mode %q", s)
	}
}

// SalaryStatus reports whether empID has a Credited event for period.
// Events of other employees are ignored, so the full event list may be passed.
func SalaryStatus(events []domain.SalaryEvent, empID int, period domain.Period, mode MatchMode) domain.SalaryStatus {
	tag := period.Tag()
	for _, e := range events {
		if e.EmployeeID != empID || e.Status != creditedStatus {
			continue
		}
		if matches(e, period, tag, mode) {
			return domain.SalaryCredited
		}
	}
	return domain.SalaryNotCredited
}

func matches(e domain.SalaryEvent, period domain.Period, tag string, mode MatchMode) bool {
	switch mode {
	case MatchPeriod:
		return e.Period != nil && e.Period.Equal(period)
	default:
		return strings.Contains(e.Date, tag)
	}
}
