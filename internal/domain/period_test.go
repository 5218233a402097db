package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_Tag(t *testing.T) {
	assert.Equal(t, "06-2024", Period{Year: 2024, Month: time.June}.Tag())
	assert.Equal(t, "12-1999", Period{Year: 1999, Month: time.December}.Tag())
	assert.Equal(t, "2024-06", Period{Year: 2024, Month: time.June}.String())
}

func TestParsePeriod(t *testing.T) {
	testCases := map[string]struct {
		input   string
		want    Period
		wantErr bool
	}{
		"year first":         {input: "2024-06", want: Period{Year: 2024, Month: time.June}},
		"month first":        {input: "06-2024", want: Period{Year: 2024, Month: time.June}},
		"single digit month": {input: "2024-6", want: Period{Year: 2024, Month: time.June}},
		"surrounding spaces": {input: " 2023-11 ", want: Period{Year: 2023, Month: time.November}},
		"month out of range": {input: "2024-13", wantErr: true},
		"short year":         {input: "24-06", wantErr: true},
		"no separator":       {input: "202406", wantErr: true},
		"empty":              {input: "", wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParsePeriod(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v", got)
		})
	}
}

func TestOutputRow_Fields(t *testing.T) {
	row := OutputRow{
		EmployeeID:      7,
		Name:            "Jane Doe",
		DepartmentTitle: "Engineering",
		Mobile:          "555-0100",
		Email:           "jane@x.com",
		SalaryStatus:    SalaryCredited,
		LeaveDays:       3,
	}
	assert.Equal(t, []string{"7", "Jane Doe", "Engineering", "555-0100", "jane@x.com", "Credited", "3"}, row.Fields())
	assert.Len(t, ReportHeader, len(row.Fields()))
}
