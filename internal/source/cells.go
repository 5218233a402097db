package source

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/pkg/simpleexcel"
)

// leaveDateLayout accepts DD-MM-YYYY with one or two digit day and month.
const leaveDateLayout = "2-1-2006"

// salaryDateLayouts are tried in order to derive a Period from salary date text.
var salaryDateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"1-2006",
	"2006-1-2",
	"2006-1",
}

// numericID decodes a numeric cell, truncating any fraction toward zero.
func numericID(source string, row simpleexcel.Row, col int) (int, error) {
	v, ok := row.Cell(col)
	if !ok {
		return 0, malformedRow(source, row.Number, col, "missing numeric value")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, malformedRow(source, row.Number, col, "not a number: %q", v)
	}
	return int(f), nil
}

// text decodes a non-empty text cell.
func text(source string, row simpleexcel.Row, col int) (string, error) {
	v, ok := row.Cell(col)
	if !ok {
		return "", malformedRow(source, row.Number, col, "missing text value")
	}
	return v, nil
}

// calendarDate decodes a DD-MM-YYYY text cell or a native spreadsheet date cell.
func calendarDate(source string, row simpleexcel.Row, col int) (time.Time, error) {
	v, ok := row.Cell(col)
	if !ok {
		return time.Time{}, malformedRow(source, row.Number, col, "missing date")
	}
	if t, err := time.Parse(leaveDateLayout, strings.TrimSpace(v)); err == nil {
		return t, nil
	}
	if t, err := row.SerialDate(col); err == nil {
		return t, nil
	}
	return time.Time{}, malformedRow(source, row.Number, col, "invalid date %q, expected DD-MM-YYYY", v)
}

// salaryDate returns the salary date text and, when it can be read as a date,
// the month it falls in. Native date cells are rendered as DD-MM-YYYY so the
// credit tag can still be found in the text.
func salaryDate(row simpleexcel.Row, col int) (string, *domain.Period, error) {
	v, err := text(SourceSalary, row, col)
	if err != nil {
		return "", nil, err
	}

	trimmed := strings.TrimSpace(v)
	for _, layout := range salaryDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			p := domain.PeriodOf(t)
			return v, &p, nil
		}
	}
	if t, err := row.SerialDate(col); err == nil {
		p := domain.PeriodOf(t)
		return t.Format(simpleexcel.DateLayout), &p, nil
	}
	return v, nil, nil
}
