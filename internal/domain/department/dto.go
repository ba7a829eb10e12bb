package department

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name      string `json:"name"`
	ManagerID *int64 `json:"manager_id"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	Name      *string `json:"name"`
	ManagerID *int64  `json:"manager_id"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ManagerID     *int64  `json:"manager_id,omitempty"`
	ManagerName   *string `json:"manager_name,omitempty"`
	EmployeeCount int64   `json:"employee_count"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		EmployeeCount: d.EmployeeCount,
	}
}
