package simpleexcel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DataExporter is the main entry point for exporting data.
type DataExporter struct {
	sheets []*SheetBuilder
}

// SheetBuilder collects the sections rendered on one sheet, top to bottom.
type SheetBuilder struct {
	exporter *DataExporter
	name     string
	sections []*SectionConfig
}

func NewDataExporter() *DataExporter {
	return &DataExporter{sheets: []*SheetBuilder{}}
}

// NewDataExporterFromTemplate creates an exporter whose sheets and sections
// come from a decoded YAML template. Section data is bound with BindSectionData.
func NewDataExporterFromTemplate(tmpl *ReportTemplate) *DataExporter {
	e := NewDataExporter()
	for i := range tmpl.Sheets {
		sheetTmpl := tmpl.Sheets[i]
		sb := e.AddSheet(sheetTmpl.Name)
		for j := range sheetTmpl.Sections {
			sec := sheetTmpl.Sections[j]
			sb.AddSection(&sec)
		}
	}
	return e
}

// AddSheet starts a new sheet builder.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{
		exporter: e,
		name:     name,
		sections: []*SectionConfig{},
	}
	e.sheets = append(e.sheets, sb)
	return sb
}

// AddSection appends a section to the sheet.
func (sb *SheetBuilder) AddSection(sec *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, sec)
	return sb
}

// BindSectionData binds data to every section with the given ID.
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	for _, sb := range e.sheets {
		for _, sec := range sb.sections {
			if sec.ID == id {
				sec.Data = data
			}
		}
	}
	return e
}

// BuildExcel renders every sheet through a stream writer and returns the file.
// The caller owns the returned file and must close it.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	if len(e.sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	for i, sb := range e.sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sb.name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sb.name); err != nil {
			f.Close()
			return nil, err
		}

		if err := e.renderSheet(f, sb); err != nil {
			f.Close()
			return nil, fmt.Errorf("render sheet %q: %w", sb.name, err)
		}
	}
	return f, nil
}

// ToWriter writes the workbook to w.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func (e *DataExporter) renderSheet(f *excelize.File, sb *SheetBuilder) error {
	sw, err := f.NewStreamWriter(sb.name)
	if err != nil {
		return err
	}

	// Column widths must be set before the first row is streamed.
	var widths []float64
	for _, sec := range sb.sections {
		for i, col := range sec.Columns {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if widths[i] == 0 && col.Width > 0 {
				widths[i] = col.Width
			}
		}
	}
	for i, width := range widths {
		if width == 0 {
			continue
		}
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return err
		}
	}

	rowNum := 1
	for _, sec := range sb.sections {
		next, err := e.renderSection(f, sw, sec, rowNum)
		if err != nil {
			return fmt.Errorf("section %q: %w", sec.ID, err)
		}
		rowNum = next
	}

	return sw.Flush()
}

// renderSection writes title, header and data rows starting at rowNum and
// returns the next free row.
func (e *DataExporter) renderSection(f *excelize.File, sw *excelize.StreamWriter, sec *SectionConfig, rowNum int) (int, error) {
	if sec.Title != "" {
		sid, err := createStyle(f, sec.TitleStyle, &StyleTemplate{Font: &FontTemplate{Bold: true}})
		if err != nil {
			return rowNum, err
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := sw.SetRow(cell, []interface{}{excelize.Cell{Value: sec.Title, StyleID: sid}}); err != nil {
			return rowNum, err
		}
		rowNum++
	}

	if sec.ShowHeader {
		sid, err := createStyle(f, sec.HeaderStyle, &StyleTemplate{Font: &FontTemplate{Bold: true}})
		if err != nil {
			return rowNum, err
		}
		headers := make([]interface{}, len(sec.Columns))
		for i, col := range sec.Columns {
			header := col.Header
			if header == "" {
				header = col.FieldName
			}
			headers[i] = excelize.Cell{Value: header, StyleID: sid}
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := sw.SetRow(cell, headers); err != nil {
			return rowNum, err
		}
		rowNum++
	}

	if sec.Data == nil {
		return rowNum, nil
	}

	items, err := ToRecords(sec.Data)
	if err != nil {
		return rowNum, fmt.Errorf("section %q: %w", sec.ID, err)
	}

	for _, item := range items {
		values := make([]interface{}, len(sec.Columns))
		for i, col := range sec.Columns {
			values[i] = item[col.FieldName]
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := sw.SetRow(cell, values); err != nil {
			return rowNum, err
		}
		rowNum++
	}
	return rowNum, nil
}

func createStyle(f *excelize.File, tmpl, fallback *StyleTemplate) (int, error) {
	if tmpl == nil {
		tmpl = fallback
	}

	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{Bold: tmpl.Font.Bold, Color: tmpl.Font.Color}
	}
	if tmpl.Fill != nil && tmpl.Fill.Color != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{tmpl.Fill.Color}}
	}
	return f.NewStyle(style)
}
