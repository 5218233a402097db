package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/pkg/simpleexcel"
)

//go:embed layout.yaml
var defaultLayout []byte

// rowsSectionID is the layout section that receives the report rows.
const rowsSectionID = "rows"

// periodPlaceholder in a section title is replaced with the reporting period.
const periodPlaceholder = "{period}"

// XLSXRenderer renders report rows as a spreadsheet laid out by a YAML template.
// The template is parsed once and never mutated, so Render is safe for
// concurrent use.
type XLSXRenderer struct {
	layout *simpleexcel.ReportTemplate
}

// NewXLSXRenderer loads the layout at layoutPath, or the built-in one when the
// path is empty. The layout is validated up front.
func NewXLSXRenderer(layoutPath string) (*XLSXRenderer, error) {
	var (
		layout *simpleexcel.ReportTemplate
		err    error
	)
	if layoutPath != "" {
		layout, err = simpleexcel.LoadTemplateFile(layoutPath)
	} else {
		layout, err = simpleexcel.LoadTemplate(bytes.NewReader(defaultLayout))
	}
	if err != nil {
		return nil, fmt.Errorf("xlsx layout: %w", err)
	}
	return &XLSXRenderer{layout: layout}, nil
}

// Render writes the workbook for rows to w.
func (r *XLSXRenderer) Render(w io.Writer, rows []domain.OutputRow, period domain.Period) error {
	tmpl := &simpleexcel.ReportTemplate{Sheets: make([]simpleexcel.SheetTemplate, len(r.layout.Sheets))}
	for i, sheet := range r.layout.Sheets {
		sections := make([]simpleexcel.SectionConfig, len(sheet.Sections))
		copy(sections, sheet.Sections)
		for j := range sections {
			sections[j].Title = strings.ReplaceAll(sections[j].Title, periodPlaceholder, period.String())
		}
		sheet.Sections = sections
		tmpl.Sheets[i] = sheet
	}

	exporter := simpleexcel.NewDataExporterFromTemplate(tmpl)
	exporter.BindSectionData(rowsSectionID, rows)
	return exporter.ToWriter(w)
}
