package source

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
)

const (
	rosterDelimiter  = "|"
	rosterFieldCount = 5
)

type rosterLine struct {
	number int
	text   string
}

// ParseRoster reads the pipe-delimited employee roster. The first line is a
// header and is discarded; the remaining lines keep their source order.
func ParseRoster(ctx context.Context, r io.Reader, policy ParsePolicy) ([]domain.Employee, []string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, unavailable(SourceRoster, err)
	}

	items := make([]interface{}, 0, len(lines))
	for i, text := range lines {
		if i == 0 {
			continue
		}
		items = append(items, rosterLine{number: i + 1, text: text})
	}

	records, warnings, err := decodeAll(ctx, SourceRoster, policy, items, decodeEmployee)
	if err != nil {
		return nil, nil, err
	}

	employees := make([]domain.Employee, len(records))
	for i, rec := range records {
		employees[i] = rec.(domain.Employee)
	}
	return employees, warnings, nil
}

func decodeEmployee(msg interface{}) (interface{}, error) {
	line := msg.(rosterLine)

	if !utf8.ValidString(line.text) {
		return nil, malformedLine(SourceRoster, line.number, "invalid UTF-8")
	}

	parts := strings.Split(line.text, rosterDelimiter)
	if len(parts) != rosterFieldCount {
		return nil, malformedLine(SourceRoster, line.number, "expected %d fields, got %d", rosterFieldCount, len(parts))
	}

	id, err := rosterID(parts[0])
	if err != nil {
		return nil, malformedLine(SourceRoster, line.number, "invalid employee id %q", parts[0])
	}
	deptID, err := rosterID(parts[2])
	if err != nil {
		return nil, malformedLine(SourceRoster, line.number, "invalid department id %q", parts[2])
	}

	return domain.Employee{
		ID:           id,
		Name:         parts[1],
		DepartmentID: deptID,
		Mobile:       parts[3],
		Email:        parts[4],
	}, nil
}

// rosterID parses a 32-bit id, the same range accepted for spreadsheet ids.
func rosterID(field string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// readLines splits r into lines without the trailing "\n" or "\r\n".
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
