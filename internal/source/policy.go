package source

import (
	"fmt"
	"strings"
)

// ParsePolicy decides what happens to a record that cannot be decoded.
type ParsePolicy int

const (
	// Strict aborts the load on the first malformed record.
	Strict ParsePolicy = iota
	// Lenient drops malformed records, logging and collecting a warning for each.
	Lenient
)

func (p ParsePolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("ParsePolicy(%d)", int(p))
	}
}

// ParsePolicyFromString parses "strict" or "lenient", case-insensitively.
func ParsePolicyFromString(s string) (ParsePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fmt.Errorf("unknown parse policy %q", s)
	}
}

// Policies holds the parse policy of each source.
type Policies struct {
	Roster     ParsePolicy
	Department ParsePolicy
	Salary     ParsePolicy
	Leave      ParsePolicy
}

// DefaultPolicies keeps the roster lenient and the spreadsheets strict.
func DefaultPolicies() Policies {
	return Policies{
		Roster:     Lenient,
		Department: Strict,
		Salary:     Strict,
		Leave:      Strict,
	}
}

// ParsePolicies builds Policies from their textual names, in roster,
// department, salary, leave order.
func ParsePolicies(roster, department, salary, leave string) (Policies, error) {
	var p Policies
	var err error
	if p.Roster, err = ParsePolicyFromString(roster); err != nil {
		return p, fmt.Errorf("roster: %w", err)
	}
	if p.Department, err = ParsePolicyFromString(department); err != nil {
		return p, fmt.Errorf("department: %w", err)
	}
	if p.Salary, err = ParsePolicyFromString(salary); err != nil {
		return p, fmt.Errorf("salary: %w", err)
	}
	if p.Leave, err = ParsePolicyFromString(leave); err != nil {
		return p, fmt.Errorf("leave: %w", err)
	}
	return p, nil
}
