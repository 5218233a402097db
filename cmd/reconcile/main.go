package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/locvowork/payroll_reconciliation/internal/bootstrap"
	"github.com/locvowork/payroll_reconciliation/internal/config"
	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/internal/logger"
	"github.com/locvowork/payroll_reconciliation/internal/source"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	empPath     string
	deptPath    string
	salaryPath  string
	leavePath   string
	outputPath  string
	xlsxPath    string
	reportMonth string
	quoteFields bool
	quoteSet    bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, time.Now))
}

func run(ctx context.Context, args []string, stderr io.Writer, now func() time.Time) int {
	opts, code := parseFlags(args, stderr)
	if code != exitOK {
		return code
	}

	if err := config.LoadEnvConfig(); err != nil {
		fmt.Fprintf(stderr, "failed to load env config: %v\n", err)
		return exitError
	}
	logger.InitLogging(logger.Options{
		Console:  stderr,
		FilePath: config.DefaultEnvConfig.LOG_FILE_PATH,
		Level:    config.DefaultEnvConfig.LOG_LEVEL,
		Format:   config.DefaultEnvConfig.LOG_FORMAT,
	})

	period := domain.PeriodOf(now().UTC())
	if opts.reportMonth != "" {
		p, err := domain.ParsePeriod(opts.reportMonth)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --report-month: %v\n", err)
			return exitUsage
		}
		period = p
	}

	quote := config.DefaultEnvConfig.OUTPUT_QUOTE_FIELDS
	if opts.quoteSet {
		quote = opts.quoteFields
	}

	srcOpts, err := bootstrap.SourceOptions()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	svc, err := bootstrap.NewService(quote)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	loader := source.NewFileLoader(source.Paths{
		Roster:      opts.empPath,
		Departments: opts.deptPath,
		Salaries:    opts.salaryPath,
		Leaves:      opts.leavePath,
	}, srcOpts)

	res, err := svc.Run(ctx, loader, period, opts.outputPath, opts.xlsxPath)
	if err != nil {
		logger.ErrorLog(ctx, "Failed to build report", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	logger.InfoLog(ctx, "Report for %s completed: %d rows, %d warnings", period, len(res.Rows), len(res.Warnings))
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, int) {
	var opts options
	fs := flag.NewFlagSet("reconcile", flag.ContinueOnError)
	fs.SetOutput(stderr)

	pathFlag := func(dst *string, long, short, usage string) {
		fs.StringVar(dst, long, "", usage)
		fs.StringVar(dst, short, "", "shorthand for --"+long)
	}
	pathFlag(&opts.empPath, "emp-data-file-path", "e", "Path to the employee roster file")
	pathFlag(&opts.deptPath, "dept-data-file-path", "d", "Path to the department workbook")
	pathFlag(&opts.salaryPath, "salary-data-file-path", "s", "Path to the salary workbook")
	pathFlag(&opts.leavePath, "leave-data-file-path", "l", "Path to the leave workbook")
	pathFlag(&opts.outputPath, "output-file-path", "o", "Path of the report to write")
	fs.StringVar(&opts.xlsxPath, "xlsx-output-file-path", "", "Optional path of an xlsx copy of the report")
	fs.StringVar(&opts.reportMonth, "report-month", "", "Reporting month as YYYY-MM (defaults to the current month)")
	fs.BoolVar(&opts.quoteFields, "quote-fields", false, "Quote fields containing the delimiter, quotes or line breaks")

	if err := fs.Parse(args); err != nil {
		return opts, exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "quote-fields" {
			opts.quoteSet = true
		}
	})

	var missing []string
	for _, req := range []struct {
		name string
		val  string
	}{
		{"emp-data-file-path", opts.empPath},
		{"dept-data-file-path", opts.deptPath},
		{"salary-data-file-path", opts.salaryPath},
		{"leave-data-file-path", opts.leavePath},
		{"output-file-path", opts.outputPath},
	} {
		if req.val == "" {
			missing = append(missing, "--"+req.name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(stderr, "missing required option(s): %s\n", strings.Join(missing, ", "))
		fs.Usage()
		return opts, exitUsage
	}
	return opts, exitOK
}
