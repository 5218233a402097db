package handler

// ErrorResponse is the JSON body of a failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse is the JSON body of a successful non-report request
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ReportJSONResponse is returned when format=json
type ReportJSONResponse struct {
	Period   string         `json:"period"`
	Rows     []ReportRowDTO `json:"rows"`
	Warnings []string       `json:"warnings"`
}

// ReportRowDTO mirrors one report line
type ReportRowDTO struct {
	EmployeeID      int    `json:"employee_id"`
	Name            string `json:"name"`
	DepartmentTitle string `json:"department_title"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
	SalaryStatus    string `json:"salary_status"`
	LeaveDays       int    `json:"leave_days"`
}
