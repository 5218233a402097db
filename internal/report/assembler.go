package report

import (
	"github.com/locvowork/payroll_reconciliation/internal/calc"
	"github.com/locvowork/payroll_reconciliation/internal/domain"
)

// Assembler joins the loaded sources into report rows.
type Assembler struct {
	matchMode calc.MatchMode
}

func NewAssembler(matchMode calc.MatchMode) *Assembler {
	return &Assembler{matchMode: matchMode}
}

// Assemble returns one row per employee, in roster order, for the given period.
func (a *Assembler) Assemble(ds *domain.Dataset, period domain.Period) []domain.OutputRow {
	departments := calc.NewDepartmentIndex(ds.Departments)
	events := calc.NewEventIndex(ds.SalaryEvents, ds.LeaveEvents)

	rows := make([]domain.OutputRow, 0, len(ds.Employees))
	for _, emp := range ds.Employees {
		rows = append(rows, domain.OutputRow{
			EmployeeID:      emp.ID,
			Name:            emp.Name,
			DepartmentTitle: departments.Title(emp.DepartmentID),
			Mobile:          emp.Mobile,
			Email:           emp.Email,
			SalaryStatus:    calc.SalaryStatus(events.SalaryEvents(emp.ID), emp.ID, period, a.matchMode),
			LeaveDays:       calc.LeaveDays(events.LeaveEvents(emp.ID), emp.ID),
		})
	}
	return rows
}
