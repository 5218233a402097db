package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

type fixture struct {
	emp, dept, salary, leave string
	dir                      string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	fx := fixture{
		dir:    dir,
		emp:    filepath.Join(dir, "emp.txt"),
		dept:   filepath.Join(dir, "dept.xlsx"),
		salary: filepath.Join(dir, "salary.xlsx"),
		leave:  filepath.Join(dir, "leave.xlsx"),
	}
	roster := "id|name|dept|mobile|email\n7|Jane Doe|2|555-0100|jane@x.com\nbroken line\n8|Bob|9|555-0101|bob@x.com\n"
	require.NoError(t, os.WriteFile(fx.emp, []byte(roster), 0o644))
	writeWorkbook(t, fx.dept, [][]interface{}{{"Dept ID", "Title"}, {2, "Engineering"}})
	writeWorkbook(t, fx.salary, [][]interface{}{
		{"Emp ID", "Name", "Date", "Amount", "Status"},
		{7, "Jane Doe", "15-06-2024", 1000, "Credited"},
	})
	writeWorkbook(t, fx.leave, [][]interface{}{
		{"Emp ID", "Name", "From", "To"},
		{7, "Jane Doe", "01-06-2024", "03-06-2024"},
	})
	return fx
}

func fixedNow() time.Time {
	return time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC)
}

func TestRun_WritesReport(t *testing.T) {
	fx := newFixture(t)
	out := filepath.Join(fx.dir, "out", "report.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))

	var stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-e", fx.emp,
		"--dept-data-file-path", fx.dept,
		"-s", fx.salary,
		"--leave-data-file-path", fx.leave,
		"-o", out,
	}, &stderr, fixedNow)
	require.Equal(t, exitOK, code, stderr.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "Emp ID~#~Emp Name~#~Dept Title~#~Mobile No~#~Email~#~Salary Status~#~On Leave\n" +
		"7~#~Jane Doe~#~Engineering~#~555-0100~#~jane@x.com~#~Credited~#~3\n" +
		"8~#~Bob~#~N/A~#~555-0101~#~bob@x.com~#~Not Credited~#~0\n"
	assert.Equal(t, want, string(got))
}

func TestRun_ReportMonthOverridesClock(t *testing.T) {
	fx := newFixture(t)
	out := filepath.Join(fx.dir, "report.txt")

	var stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-e", fx.emp, "-d", fx.dept, "-s", fx.salary, "-l", fx.leave, "-o", out,
		"--report-month", "2024-07",
	}, &stderr, fixedNow)
	require.Equal(t, exitOK, code, stderr.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "7~#~Jane Doe~#~Engineering~#~555-0100~#~jane@x.com~#~Not Credited~#~3\n")
}

func TestRun_MissingSourceLeavesNoOutput(t *testing.T) {
	fx := newFixture(t)
	out := filepath.Join(fx.dir, "report.txt")

	var stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-e", fx.emp, "-d", filepath.Join(fx.dir, "missing.xlsx"), "-s", fx.salary, "-l", fx.leave, "-o", out,
	}, &stderr, fixedNow)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "department")
	assert.NoFileExists(t, out)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		check    func(t *testing.T, opts options)
	}{
		{
			name:     "short and long aliases",
			args:     []string{"-o", "out.txt", "--emp-data-file-path", "e.txt", "-d", "d.xlsx", "-s", "s.xlsx", "-l", "l.xlsx"},
			wantCode: exitOK,
			check: func(t *testing.T, opts options) {
				assert.Equal(t, "e.txt", opts.empPath)
				assert.Equal(t, "d.xlsx", opts.deptPath)
				assert.Equal(t, "out.txt", opts.outputPath)
				assert.False(t, opts.quoteSet)
			},
		},
		{
			name:     "quote fields flag",
			args:     []string{"-e", "e", "-d", "d", "-s", "s", "-l", "l", "-o", "o", "--quote-fields"},
			wantCode: exitOK,
			check: func(t *testing.T, opts options) {
				assert.True(t, opts.quoteSet)
				assert.True(t, opts.quoteFields)
			},
		},
		{
			name:     "missing output",
			args:     []string{"-e", "e", "-d", "d", "-s", "s", "-l", "l"},
			wantCode: exitUsage,
		},
		{
			name:     "unknown flag",
			args:     []string{"--bogus"},
			wantCode: exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			opts, code := parseFlags(tt.args, &stderr)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == exitUsage {
				assert.Contains(t, stderr.String(), "Usage")
			}
			if tt.check != nil {
				tt.check(t, opts)
			}
		})
	}
}
