package calc

import "github.com/locvowork/payroll_reconciliation/internal/domain"

// DepartmentIndex resolves department titles by id.
type DepartmentIndex map[int]string

func NewDepartmentIndex(departments map[int]domain.Department) DepartmentIndex {
	idx := make(DepartmentIndex, len(departments))
	for id, d := range departments {
		idx[id] = d.Title
	}
	return idx
}

// Title returns the department title, or domain.UnknownDepartment when id is not indexed.
func (idx DepartmentIndex) Title(id int) string {
	if title, ok := idx[id]; ok {
		return title
	}
	return domain.UnknownDepartment
}

// EventIndex groups salary and leave events by employee id, keeping source order
// within each group.
type EventIndex struct {
	salaries map[int][]domain.SalaryEvent
	leaves   map[int][]domain.LeaveEvent
}

func NewEventIndex(salaries []domain.SalaryEvent, leaves []domain.LeaveEvent) *EventIndex {
	idx := &EventIndex{
		salaries: make(map[int][]domain.SalaryEvent),
		leaves:   make(map[int][]domain.LeaveEvent),
	}
	for _, e := range salaries {
		idx.salaries[e.EmployeeID] = append(idx.salaries[e.EmployeeID], e)
	}
	for _, e := range leaves {
		idx.leaves[e.EmployeeID] = append(idx.leaves[e.EmployeeID], e)
	}
	return idx
}

func (idx *EventIndex) SalaryEvents(empID int) []domain.SalaryEvent {
	return idx.salaries[empID]
}

func (idx *EventIndex) LeaveEvents(empID int) []domain.LeaveEvent {
	return idx.leaves[empID]
}
