package department

import "time"

type Department struct {
	ID        int64
	Name      string
	ManagerID *int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for list views
	ManagerName   *string
	EmployeeCount int64
}
