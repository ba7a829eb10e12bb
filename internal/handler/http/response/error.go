package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already registered")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already in use")
	case errors.Is(err, employee.ErrNoLinkedEmployee):
		BadRequest(w, "User account has no linked employee profile", nil)

	// Leave domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, holiday.ErrNotOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		Conflict(w, "An open time entry already exists for today")
	case errors.Is(err, timesheet.ErrNotClockedIn):
		Conflict(w, "No open time entry exists for today")
	case errors.Is(err, timesheet.ErrNoLinkedEmployee):
		BadRequest(w, "User account has no linked employee profile", nil)
	case errors.Is(err, timesheet.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be HH:MM", nil)

	// The holiday refresh is the one failure whose underlying message is
	// surfaced to the caller.
	case errors.Is(err, publicholiday.ErrRefreshFailed):
		InternalServerError(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
