package source

import (
	"errors"
	"fmt"
	"strings"
)

// Source names used in diagnostics.
const (
	SourceRoster     = "roster"
	SourceDepartment = "department"
	SourceSalary     = "salary"
	SourceLeave      = "leave"
)

// Error kinds. Match them with errors.Is.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedRow      = errors.New("malformed row")
	ErrMalformedLine     = errors.New("malformed line")
)

// Error describes a failure tied to one source and, when known, one row and column.
type Error struct {
	Kind   error
	Source string
	// Row is the 1-based line or sheet row; 0 when the failure is not row specific.
	Row int
	// Column is the zero-based column; -1 when not applicable.
	Column int
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Row > 0 {
		if e.Kind == ErrMalformedLine {
			fmt.Fprintf(&b, " line %d", e.Row)
		} else {
			fmt.Fprintf(&b, " row %d", e.Row)
		}
	}
	if e.Column >= 0 {
		fmt.Fprintf(&b, " column %d", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func unavailable(source string, err error) *Error {
	return &Error{Kind: ErrSourceUnavailable, Source: source, Column: -1, Err: err}
}

func malformedRow(source string, row, col int, format string, args ...interface{}) *Error {
	return &Error{Kind: ErrMalformedRow, Source: source, Row: row, Column: col, Err: fmt.Errorf(format, args...)}
}

func malformedLine(source string, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: ErrMalformedLine, Source: source, Row: line, Column: -1, Err: fmt.Errorf(format, args...)}
}
