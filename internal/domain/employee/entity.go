package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

const DefaultHolidayAllowance = 25

type Employee struct {
	ID                    int64
	EmployeeNumber        *string
	Name                  string
	Email                 string
	DepartmentID          *int64
	JobTitle              string
	StartDate             *time.Time
	Salary                float64
	HolidayAllowance      int
	Phone                 string
	Address               string
	EmergencyContactName  string
	EmergencyContactPhone string
	Status                Status
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined for list views
	DepartmentName *string
}
