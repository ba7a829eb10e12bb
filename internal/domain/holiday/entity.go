package holiday

import "time"

type Status string

const (
	// Requests are auto-approved; there is no pending state.
	StatusApproved Status = "approved"
)

const TypeAnnual = "annual"

type Holiday struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Type       string
	Notes      string
	Status     Status
	CreatedAt  time.Time

	// Joined for list views
	EmployeeName *string
}

// Summary is an employee's leave balance for one year.
type Summary struct {
	EmployeeID int64 `json:"employee_id"`
	Year       int   `json:"year"`
	Allowance  int   `json:"allowance"`
	Used       int   `json:"used"`
	Remaining  int   `json:"remaining"`
}
