package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
)

// Delimiter separates the fields of a report line.
const Delimiter = "~#~"

// Encoder writes report lines. With quoting disabled (the legacy format) fields
// are emitted verbatim even when they contain the delimiter.
type Encoder struct {
	w           *bufio.Writer
	quoteFields bool
}

func NewEncoder(w io.Writer, quoteFields bool) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), quoteFields: quoteFields}
}

// WriteHeader writes the column names line.
func (e *Encoder) WriteHeader() error {
	return e.writeLine(domain.ReportHeader)
}

// WriteRow writes one employee line.
func (e *Encoder) WriteRow(row domain.OutputRow) error {
	return e.writeLine(row.Fields())
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

func (e *Encoder) writeLine(fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := e.w.WriteString(Delimiter); err != nil {
				return err
			}
		}
		if e.quoteFields {
			f = quote(f)
		}
		if _, err := e.w.WriteString(f); err != nil {
			return err
		}
	}
	return e.w.WriteByte('\n')
}

// quote wraps a field in double quotes, doubling embedded quotes, when it
// contains the delimiter, a quote or a line break.
func quote(field string) string {
	if !strings.Contains(field, Delimiter) && !strings.ContainsAny(field, "\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Encode writes the header followed by every row and flushes.
func Encode(w io.Writer, rows []domain.OutputRow, quoteFields bool) error {
	enc := NewEncoder(w, quoteFields)
	if err := enc.WriteHeader(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := enc.WriteRow(row); err != nil {
			return err
		}
	}
	return enc.Flush()
}
