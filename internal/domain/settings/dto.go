package settings

import "github.com/staffhub/staffhub-backend-go/internal/pkg/validator"

type UpdateSettingsRequest struct {
	CompanyName        *string `json:"company_name"`
	WorkingHoursPerDay *int    `json:"working_hours_per_day"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkingHoursPerDay != nil && (*r.WorkingHoursPerDay < 1 || *r.WorkingHoursPerDay > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours_per_day",
			Message: "working_hours_per_day must be between 1 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	CompanyName        string `json:"company_name"`
	WorkingHoursPerDay int    `json:"working_hours_per_day"`
}

func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:        s.CompanyName,
		WorkingHoursPerDay: s.WorkingHoursPerDay,
	}
}
