package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a calendar month used as the reporting window
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PeriodOf returns the period containing t
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Tag renders the period as a zero-padded MM-YYYY fragment, e.g. "06-2024"
func (p Period) Tag() string {
	return fmt.Sprintf("%02d-%d", int(p.Month), p.Year)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Equal reports whether both periods denote the same month of the same year
func (p Period) Equal(other Period) bool {
	return p.Year == other.Year && p.Month == other.Month
}

// ParsePeriod accepts YYYY-MM (as rendered by String) and MM-YYYY (as rendered by Tag).
func ParsePeriod(value string) (Period, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", value)
	}

	yearPart, monthPart := parts[0], parts[1]
	if len(parts[1]) == 4 && len(parts[0]) <= 2 {
		yearPart, monthPart = parts[1], parts[0]
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil || len(yearPart) != 4 {
		return Period{}, fmt.Errorf("invalid period %q: bad year", value)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid period %q: bad month", value)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}
