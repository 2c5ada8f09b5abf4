package response

import (
	"errors"
	"net/http"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/auth"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/employee"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/holiday"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/justification"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/user"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, attendance.ErrInvalidKind):
		BadRequest(w, "Invalid punch kind", nil)
	case errors.Is(err, attendance.ErrInvalidEstado):
		BadRequest(w, "Invalid punch estado", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRutExists):
		Conflict(w, "RUT already registered")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for that date")

	// Parameter domain errors
	case errors.Is(err, parameter.ErrParameterNotFound):
		NotFound(w, "System parameter not found")
	case errors.Is(err, parameter.ErrParameterNotNumeric):
		BadRequest(w, "System parameter value must be numeric", nil)

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrPermitTypeNotFound):
		NotFound(w, "Permit type not found")
	case errors.Is(err, justification.ErrOverlappingJustification):
		Conflict(w, err.Error())
	case errors.Is(err, justification.ErrAttachmentRequired):
		BadRequest(w, "Permit type requires a supporting document", nil)
	case errors.Is(err, justification.ErrAlreadyResolved):
		Conflict(w, "Justification already resolved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
