package timesheet

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Notes string `json:"notes"`
}

type ClockOutRequest struct {
	BreakMinutes int    `json:"break_minutes"`
	Notes        string `json:"notes"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateEntryRequest is the privileged manual-entry payload.
type CreateEntryRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	BreakMinutes int     `json:"break_minutes"`
	Notes        string  `json:"notes"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be HH:MM",
		})
	}

	if r.ClockOut != nil && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be HH:MM",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows timesheet lists.
type ListFilter struct {
	EmployeeID *int64
	Date       *time.Time
}

type TimeEntryResponse struct {
	ID            int64    `json:"id"`
	EmployeeID    int64    `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	ClockIn       string   `json:"clock_in"`
	ClockOut      *string  `json:"clock_out,omitempty"`
	BreakMinutes  int      `json:"break_minutes"`
	TotalHours    *float64 `json:"total_hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		Date:          e.Date.Format(time.DateOnly),
		ClockIn:       e.ClockIn,
		ClockOut:      e.ClockOut,
		BreakMinutes:  e.BreakMinutes,
		TotalHours:    e.TotalHours,
		OvertimeHours: e.OvertimeHours,
		Notes:         e.Notes,
	}
}
