package service

import (
	"context"
	"fmt"
	"io"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/internal/logger"
	"github.com/locvowork/payroll_reconciliation/internal/report"
)

// Result is an assembled report together with the warnings raised while loading.
type Result struct {
	Period   domain.Period
	Rows     []domain.OutputRow
	Warnings []string
}

// ReconcileService loads the sources, assembles the report and encodes it.
type ReconcileService struct {
	assembler   *report.Assembler
	xlsx        *report.XLSXRenderer
	quoteFields bool
}

func NewReconcileService(assembler *report.Assembler, xlsx *report.XLSXRenderer, quoteFields bool) *ReconcileService {
	return &ReconcileService{
		assembler:   assembler,
		xlsx:        xlsx,
		quoteFields: quoteFields,
	}
}

// Build loads every source through loader and assembles the rows for period.
// Nothing is assembled unless all sources loaded.
func (s *ReconcileService) Build(ctx context.Context, loader domain.DatasetLoader, period domain.Period) (*Result, error) {
	ctx = logger.WithLogger(ctx, map[string]interface{}{"period": period.String()})

	ds, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows := s.assembler.Assemble(ds, period)
	logger.InfoLog(ctx, "assembled %d report rows", len(rows))
	return &Result{Period: period, Rows: rows, Warnings: ds.Warnings}, nil
}

// WriteText encodes the result in the delimited text format.
func (s *ReconcileService) WriteText(w io.Writer, res *Result) error {
	return report.Encode(w, res.Rows, s.quoteFields)
}

// WriteXLSX encodes the result as a workbook.
func (s *ReconcileService) WriteXLSX(w io.Writer, res *Result) error {
	if s.xlsx == nil {
		return fmt.Errorf("xlsx output is not configured")
	}
	return s.xlsx.Render(w, res.Rows, res.Period)
}

// Run builds the report and writes it to outputPath, and to xlsxPath when set.
// Every output is staged before any is moved into place, so a failure at any
// step leaves none of them behind.
func (s *ReconcileService) Run(ctx context.Context, loader domain.DatasetLoader, period domain.Period, outputPath, xlsxPath string) (*Result, error) {
	res, err := s.Build(ctx, loader, period)
	if err != nil {
		return nil, err
	}

	text, err := report.StageFile(outputPath, func(w io.Writer) error {
		return s.WriteText(w, res)
	})
	if err != nil {
		return nil, err
	}
	staged := []*report.StagedFile{text}

	if xlsxPath != "" {
		sheet, err := report.StageFile(xlsxPath, func(w io.Writer) error {
			return s.WriteXLSX(w, res)
		})
		if err != nil {
			text.Discard()
			return nil, err
		}
		staged = append(staged, sheet)
	}

	if err := report.CommitAll(staged...); err != nil {
		return nil, err
	}
	for _, f := range staged {
		logger.InfoLog(ctx, "report written to %s", f.Path())
	}
	return res, nil
}
