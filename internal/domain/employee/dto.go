package employee

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber        *string `json:"employee_number"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	DepartmentID          *int64  `json:"department_id"`
	JobTitle              string  `json:"job_title"`
	StartDate             string  `json:"start_date"`
	Salary                float64 `json:"salary"`
	HolidayAllowance      *int    `json:"holiday_allowance"`
	Phone                 string  `json:"phone"`
	Address               string  `json:"address"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`
	Status                string  `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}

	if r.Status != "" && r.Status != string(StatusActive) && r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeNumber        *string  `json:"employee_number"`
	Name                  *string  `json:"name"`
	Email                 *string  `json:"email"`
	DepartmentID          *int64   `json:"department_id"`
	JobTitle              *string  `json:"job_title"`
	StartDate             *string  `json:"start_date"`
	Salary                *float64 `json:"salary"`
	HolidayAllowance      *int     `json:"holiday_allowance"`
	Phone                 *string  `json:"phone"`
	Address               *string  `json:"address"`
	EmergencyContactName  *string  `json:"emergency_contact_name"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone"`
	Status                *string  `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}

	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    int64   `json:"id"`
	EmployeeNumber        *string `json:"employee_number,omitempty"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	DepartmentID          *int64  `json:"department_id,omitempty"`
	DepartmentName        *string `json:"department_name,omitempty"`
	JobTitle              string  `json:"job_title"`
	StartDate             *string `json:"start_date,omitempty"`
	Salary                float64 `json:"salary"`
	HolidayAllowance      int     `json:"holiday_allowance"`
	Phone                 string  `json:"phone,omitempty"`
	Address               string  `json:"address,omitempty"`
	EmergencyContactName  string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string  `json:"emergency_contact_phone,omitempty"`
	Status                Status  `json:"status"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                    e.ID,
		EmployeeNumber:        e.EmployeeNumber,
		Name:                  e.Name,
		Email:                 e.Email,
		DepartmentID:          e.DepartmentID,
		DepartmentName:        e.DepartmentName,
		JobTitle:              e.JobTitle,
		Salary:                e.Salary,
		HolidayAllowance:      e.HolidayAllowance,
		Phone:                 e.Phone,
		Address:               e.Address,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		Status:                e.Status,
	}
	if e.StartDate != nil {
		formatted := e.StartDate.Format(time.DateOnly)
		resp.StartDate = &formatted
	}
	return resp
}
