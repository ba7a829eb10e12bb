package publicholiday

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type AddEntryRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *AddEntryRequest) Validate() error {
	var errs validator.ValidationErrors

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

type RefreshRequest struct {
	Years []int `json:"years"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, year := range r.Years {
		if year < 1900 || year > 2200 {
			errs = append(errs, validator.ValidationError{
				Field:   "years",
				Message: "years must be plausible calendar years",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListResponse struct {
	Country     string  `json:"country"`
	Entries     Entries `json:"entries"`
	RefreshedAt *string `json:"refreshed_at,omitempty"`
}

func ToResponse(l List) ListResponse {
	resp := ListResponse{
		Country: l.Country,
		Entries: l.Entries,
	}
	if resp.Entries == nil {
		resp.Entries = Entries{}
	}
	if l.RefreshedAt != nil {
		formatted := l.RefreshedAt.Format(time.RFC3339)
		resp.RefreshedAt = &formatted
	}
	return resp
}
