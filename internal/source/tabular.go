package source

import (
	"context"
	"io"

	"github.com/locvowork/payroll_reconciliation/internal/domain"
	"github.com/locvowork/payroll_reconciliation/pkg/simpleexcel"
)

// Column positions of the tabular sources, zero-based.
const (
	deptIDCol    = 0
	deptTitleCol = 1

	salaryEmpCol    = 0
	salaryDateCol   = 2
	salaryStatusCol = 4

	leaveEmpCol  = 0
	leaveFromCol = 2
	leaveToCol   = 3
)

// sheetRows opens the workbook in r and returns the data rows of the selected
// sheet (the first one when sheetName is empty), header excluded.
func sheetRows(source string, r io.Reader, sheetName string) ([]interface{}, error) {
	wb, err := simpleexcel.OpenReader(r)
	if err != nil {
		return nil, unavailable(source, err)
	}
	defer wb.Close()

	sheet, err := wb.ResolveSheet(sheetName)
	if err != nil {
		return nil, unavailable(source, err)
	}

	rows, err := wb.Rows(sheet, 1)
	if err != nil {
		return nil, unavailable(source, err)
	}

	items := make([]interface{}, len(rows))
	for i, row := range rows {
		items[i] = row
	}
	return items, nil
}

// ParseDepartments reads the department directory: column 0 is the numeric id,
// column 1 the title. A repeated id keeps the last title.
func ParseDepartments(ctx context.Context, r io.Reader, sheetName string, policy ParsePolicy) (map[int]domain.Department, []string, error) {
	items, err := sheetRows(SourceDepartment, r, sheetName)
	if err != nil {
		return nil, nil, err
	}

	records, warnings, err := decodeAll(ctx, SourceDepartment, policy, items, decodeDepartment)
	if err != nil {
		return nil, nil, err
	}

	departments := make(map[int]domain.Department, len(records))
	for _, rec := range records {
		d := rec.(domain.Department)
		departments[d.ID] = d
	}
	return departments, warnings, nil
}

func decodeDepartment(msg interface{}) (interface{}, error) {
	row := msg.(simpleexcel.Row)

	id, err := numericID(SourceDepartment, row, deptIDCol)
	if err != nil {
		return nil, err
	}
	title, err := text(SourceDepartment, row, deptTitleCol)
	if err != nil {
		return nil, err
	}
	return domain.Department{ID: id, Title: title}, nil
}

// ParseSalaryEvents reads the salary credit log: column 0 employee id,
// column 2 date text, column 4 status.
func ParseSalaryEvents(ctx context.Context, r io.Reader, sheetName string, policy ParsePolicy) ([]domain.SalaryEvent, []string, error) {
	items, err := sheetRows(SourceSalary, r, sheetName)
	if err != nil {
		return nil, nil, err
	}

	records, warnings, err := decodeAll(ctx, SourceSalary, policy, items, decodeSalaryEvent)
	if err != nil {
		return nil, nil, err
	}

	events := make([]domain.SalaryEvent, len(records))
	for i, rec := range records {
		events[i] = rec.(domain.SalaryEvent)
	}
	return events, warnings, nil
}

func decodeSalaryEvent(msg interface{}) (interface{}, error) {
	row := msg.(simpleexcel.Row)

	empID, err := numericID(SourceSalary, row, salaryEmpCol)
	if err != nil {
		return nil, err
	}
	date, period, err := salaryDate(row, salaryDateCol)
	if err != nil {
		return nil, err
	}
	status, err := text(SourceSalary, row, salaryStatusCol)
	if err != nil {
		return nil, err
	}
	return domain.SalaryEvent{EmployeeID: empID, Date: date, Status: status, Period: period}, nil
}

// ParseLeaveEvents reads the leave log: column 0 employee id, columns 2 and 3
// the inclusive start and end dates.
func ParseLeaveEvents(ctx context.Context, r io.Reader, sheetName string, policy ParsePolicy) ([]domain.LeaveEvent, []string, error) {
	items, err := sheetRows(SourceLeave, r, sheetName)
	if err != nil {
		return nil, nil, err
	}

	records, warnings, err := decodeAll(ctx, SourceLeave, policy, items, decodeLeaveEvent)
	if err != nil {
		return nil, nil, err
	}

	events := make([]domain.LeaveEvent, len(records))
	for i, rec := range records {
		events[i] = rec.(domain.LeaveEvent)
	}
	return events, warnings, nil
}

func decodeLeaveEvent(msg interface{}) (interface{}, error) {
	row := msg.(simpleexcel.Row)

	empID, err := numericID(SourceLeave, row, leaveEmpCol)
	if err != nil {
		return nil, err
	}
	from, err := calendarDate(SourceLeave, row, leaveFromCol)
	if err != nil {
		return nil, err
	}
	to, err := calendarDate(SourceLeave, row, leaveToCol)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, malformedRow(SourceLeave, row.Number, leaveToCol, "end date %s before start date %s",
			to.Format("02-01-2006"), from.Format("02-01-2006"))
	}
	return domain.LeaveEvent{EmployeeID: empID, From: from, To: to}, nil
}
