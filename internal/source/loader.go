package source

import (
	"context"
	"io"
	"os"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/internal/logger"
)

// Options tunes how the sources are decoded.
type Options struct {
	// SheetName selects the worksheet of the tabular sources; empty means the first sheet.
	SheetName string
	Policies  Policies
}

// Paths locates the four sources on disk.
type Paths struct {
	Roster      string
	Departments string
	Salaries    string
	Leaves      string
}

// Readers supplies the four sources as streams.
type Readers struct {
	Roster      io.Reader
	Departments io.Reader
	Salaries    io.Reader
	Leaves      io.Reader
}

// FileLoader loads a Dataset from files.
type FileLoader struct {
	paths Paths
	opts  Options
}

func NewFileLoader(paths Paths, opts Options) *FileLoader {
	return &FileLoader{paths: paths, opts: opts}
}

// Load opens every source before decoding any of them, so a missing file is
// reported without doing partial work.
func (l *FileLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	named := []struct {
		source string
		path   string
	}{
		{SourceRoster, l.paths.Roster},
		{SourceDepartment, l.paths.Departments},
		{SourceSalary, l.paths.Salaries},
		{SourceLeave, l.paths.Leaves},
	}

	files := make([]*os.File, 0, len(named))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, n := range named {
		f, err := os.Open(n.path)
		if err != nil {
			return nil, unavailable(n.source, err)
		}
		files = append(files, f)
	}

	return LoadReaders(ctx, Readers{
		Roster:      files[0],
		Departments: files[1],
		Salaries:    files[2],
		Leaves:      files[3],
	}, l.opts)
}

// ReaderLoader loads a Dataset from already opened streams.
type ReaderLoader struct {
	readers Readers
	opts    Options
}

func NewReaderLoader(readers Readers, opts Options) *ReaderLoader {
	return &ReaderLoader{readers: readers, opts: opts}
}

func (l *ReaderLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	return LoadReaders(ctx, l.readers, l.opts)
}

// LoadReaders decodes the four sources in roster, department, salary, leave order.
func LoadReaders(ctx context.Context, readers Readers, opts Options) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	employees, warnings, err := ParseRoster(ctx, readers.Roster, opts.Policies.Roster)
	if err != nil {
		return nil, err
	}
	ds.Employees = employees
	ds.Warnings = append(ds.Warnings, warnings...)

	departments, warnings, err := ParseDepartments(ctx, readers.Departments, opts.SheetName, opts.Policies.Department)
	if err != nil {
		return nil, err
	}
	ds.Departments = departments
	ds.Warnings = append(ds.Warnings, warnings...)

	salaries, warnings, err := ParseSalaryEvents(ctx, readers.Salaries, opts.SheetName, opts.Policies.Salary)
	if err != nil {
		return nil, err
	}
	ds.SalaryEvents = salaries
	ds.Warnings = append(ds.Warnings, warnings...)

	leaves, warnings, err := ParseLeaveEvents(ctx, readers.Leaves, opts.SheetName, opts.Policies.Leave)
	if err != nil {
		return nil, err
	}
	ds.LeaveEvents = leaves
	ds.Warnings = append(ds.Warnings, warnings...)

	logger.InfoLog(ctx, "loaded %d employees, %d departments, %d salary events, %d leave events (%d skipped)",
		len(ds.Employees), len(ds.Departments), len(ds.SalaryEvents), len(ds.LeaveEvents), len(ds.Warnings))
	return ds, nil
}
