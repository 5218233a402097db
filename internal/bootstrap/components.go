package bootstrap

import (
	"fmt"

	"github.com/locvowork/payroll_reconciliation/internal/calc"
	"github.com/locvowork/payroll_reconciliation/internal/config"
	"github.com/locvowork/payroll_reconciliation/internal/report"
	"github.com/locvowork/payroll_reconciliation/internal/service"
	"github.com/locvowork/payroll_reconciliation/internal/source"
)

// SourceOptions builds the source decoding options from DefaultEnvConfig.
func SourceOptions() (source.Options, error) {
	cfg := config.DefaultEnvConfig
	policies, err := source.ParsePolicies(
		cfg.ROSTER_PARSE_POLICY,
		cfg.DEPARTMENT_PARSE_POLICY,
		cfg.SALARY_PARSE_POLICY,
		cfg.LEAVE_PARSE_POLICY,
	)
	if err != nil {
		return source.Options{}, fmt.Errorf("invalid parse policy: %w", err)
	}
	return source.Options{SheetName: cfg.SOURCE_SHEET_NAME, Policies: policies}, nil
}

// NewService wires the assembler and renderers from DefaultEnvConfig.
func NewService(quoteFields bool) (*service.ReconcileService, error) {
	cfg := config.DefaultEnvConfig
	mode, err := calc.ParseMatchMode(cfg.SALARY_MATCH_MODE)
	if err != nil {
		return nil, fmt.Errorf("invalid salary match mode: %w", err)
	}
	xlsx, err := report.NewXLSXRenderer(cfg.XLSX_LAYOUT_FILE)
	if err != nil {
		return nil, fmt.Errorf("failed to load xlsx layout: %w", err)
	}
	return service.NewReconcileService(report.NewAssembler(mode), xlsx, quoteFields), nil
}
