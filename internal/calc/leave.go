package calc

import (
	"time"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// LeaveDays sums the inclusive length of every leave interval of empID.
// Overlapping intervals are counted twice and nothing is clipped to a month.
func LeaveDays(events []domain.LeaveEvent, empID int) int {
	total := 0
	for _, e := range events {
		if e.EmployeeID != empID {
			continue
		}
		total += InclusiveDays(e.From, e.To)
	}
	return total
}

// InclusiveDays counts the calendar days from start to end, both included.
// It returns 0 when end is before start. Both ends are reduced to UTC midnight
// and compared in Unix seconds, which has no range limit for parsed dates.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int((e.Unix()-s.Unix())/secondsPerDay) + 1
}
