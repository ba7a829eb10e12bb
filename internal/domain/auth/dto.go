package auth

import (
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
	User      user.UserResponse `json:"user"`
}

// Identity is the caller identity decoded from JWT claims.
type Identity struct {
	UserID     int64
	Email      string
	Role       user.Role
	EmployeeID *int64
	TokenID    string
}

// Privileged reports whether the caller may act on other employees' records.
func (i Identity) Privileged() bool {
	return i.Role.Privileged()
}
