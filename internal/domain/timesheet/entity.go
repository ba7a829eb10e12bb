package timesheet

import "time"

type TimeEntry struct {
	ID            int64
	EmployeeID    int64
	Date          time.Time
	ClockIn       string // HH:MM local time
	ClockOut      *string
	BreakMinutes  int
	TotalHours    *float64
	OvertimeHours *float64
	Notes         string
	CreatedAt     time.Time

	// Joined for list views
	EmployeeName *string
}

// Open reports whether the entry is still waiting for a clock-out.
func (e TimeEntry) Open() bool {
	return e.ClockOut == nil
}
