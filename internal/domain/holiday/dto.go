package holiday

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Type      *string `json:"type"`
	Notes     *string `json:"notes"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows holiday lists. EmployeeID is applied by the
// repository; Year and Month are matched in the service against the
// request's derived calendar fields.
type ListFilter struct {
	EmployeeID *int64
	Year       string
	Month      string
}

type HolidayResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Type         string  `json:"type"`
	Notes        string  `json:"notes,omitempty"`
	Status       Status  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:           h.ID,
		EmployeeID:   h.EmployeeID,
		EmployeeName: h.EmployeeName,
		StartDate:    h.StartDate.Format(time.DateOnly),
		EndDate:      h.EndDate.Format(time.DateOnly),
		Days:         h.Days,
		Type:         h.Type,
		Notes:        h.Notes,
		Status:       h.Status,
		CreatedAt:    h.CreatedAt.Format(time.RFC3339),
	}
}
