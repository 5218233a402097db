package simpleexcel

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view over a spreadsheet file.
type Workbook struct {
	file *excelize.File
}

// Row is one worksheet row. Number is the 1-based row number in the sheet.
type Row struct {
	Number int
	Cells  []string

	date1904 bool
	// numericText marks columns holding number-like text typed as a string cell.
	numericText map[int]bool
}

// Cell returns the raw value of the zero-based column and whether the cell is
// present and non-empty.
func (r Row) Cell(col int) (string, bool) {
	if col < 0 || col >= len(r.Cells) {
		return "", false
	}
	v := r.Cells[col]
	return v, v != ""
}

// OpenFile opens a workbook from disk.
func OpenFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{file: f}, nil
}

// OpenReader opens a workbook from an in-memory stream.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{file: f}, nil
}

// Close releases the workbook resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// ResolveSheet returns name when it exists in the workbook, or the first sheet
// when name is empty.
func (w *Workbook) ResolveSheet(name string) (string, error) {
	sheets := w.file.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("no sheets found")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found", name)
}

// Rows reads every row of the sheet with raw (unformatted) cell values, so
// numbers come back as plain decimals and date cells as Excel serial numbers.
// The first skip rows are dropped.
func (w *Workbook) Rows(sheet string, skip int) ([]Row, error) {
	raw, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	date1904 := false
	if props, err := w.file.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	rows := make([]Row, 0, len(raw))
	for i, cells := range raw {
		if i < skip {
			continue
		}
		numericText, err := w.numericTextColumns(sheet, i+1, cells)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Number: i + 1, Cells: cells, date1904: date1904, numericText: numericText})
	}
	return rows, nil
}

// numericTextColumns finds the cells of a row that look like numbers but are
// stored as strings. Only number-like cells are inspected.
func (w *Workbook) numericTextColumns(sheet string, rowNum int, cells []string) (map[int]bool, error) {
	var cols map[int]bool
	for col, v := range cells {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			continue
		}
		name, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return nil, err
		}
		typ, err := w.file.GetCellType(sheet, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get cell type of %s: %w", name, err)
		}
		switch typ {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			if cols == nil {
				cols = make(map[int]bool)
			}
			cols[col] = true
		}
	}
	return cols, nil
}

// SerialDate interprets a numeric cell as an Excel serial date number and
// returns the calendar date it denotes. Text cells are rejected even when
// their content is a number.
func (r Row) SerialDate(col int) (time.Time, error) {
	v, ok := r.Cell(col)
	if !ok {
		return time.Time{}, fmt.Errorf("column %d is empty", col)
	}
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil || r.numericText[col] {
		return time.Time{}, fmt.Errorf("column %d is not a serial date: %q", col, v)
	}
	t, err := excelize.ExcelDateToTime(serial, r.date1904)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
