package domain

import (
	"fmt"
	"time"
)

// ==================== SOURCE RECORDS ====================

// Employee represents one roster entry
type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
}

// Department represents one row of the department directory
type Department struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// SalaryEvent represents one row of the salary credit log.
// Date is kept verbatim; Period is only set when Date could be parsed.
type SalaryEvent struct {
	EmployeeID int     `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Period     *Period `json:"period,omitempty"`
}

// LeaveEvent represents one leave interval, both ends inclusive
type LeaveEvent struct {
	EmployeeID int       `json:"employee_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
}

// Dataset holds every source fully loaded in memory
type Dataset struct {
	Employees    []Employee
	Departments  map[int]Department
	SalaryEvents []SalaryEvent
	LeaveEvents  []LeaveEvent
	// Warnings lists the records skipped by lenient parsing
	Warnings []string
}

// ==================== REPORT ====================

// SalaryStatus is the outcome of the salary credit check
type SalaryStatus string

const (
	SalaryCredited    SalaryStatus = "Credited"
	SalaryNotCredited SalaryStatus = "Not Credited"
)

// UnknownDepartment is the title emitted when the department id is not in the directory
const UnknownDepartment = "N/A"

// OutputRow is a single line of the reconciliation report
type OutputRow struct {
	EmployeeID      int          `json:"employee_id"`
	Name            string       `json:"name"`
	DepartmentTitle string       `json:"department_title"`
	Mobile          string       `json:"mobile"`
	Email           string       `json:"email"`
	SalaryStatus    SalaryStatus `json:"salary_status"`
	LeaveDays       int          `json:"leave_days"`
}

// ReportHeader holds the column names of the report, in output order
var ReportHeader = []string{
	"Emp ID",
	"Emp Name",
	"Dept Title",
	"Mobile No",
	"Email",
	"Salary Status",
	"On Leave",
}

// Fields returns the row values in ReportHeader order
func (r OutputRow) Fields() []string {
	return []string{
		fmt.Sprintf("%d", r.EmployeeID),
		r.Name,
		r.DepartmentTitle,
		r.Mobile,
		r.Email,
		string(r.SalaryStatus),
		fmt.Sprintf("%d", r.LeaveDays),
	}
}
