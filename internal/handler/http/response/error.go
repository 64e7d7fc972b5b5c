package response

import (
	"errors"
	"net/http"

	"github.com/scanpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/scanpoint/attendance-backend-go/internal/domain/auth"
	"github.com/scanpoint/attendance-backend-go/internal/domain/sysmode"
	"github.com/scanpoint/attendance-backend-go/internal/domain/teacher"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
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
	// Mode gate errors
	case errors.Is(err, sysmode.ErrModeConflict):
		Forbidden(w, err.Error())
	case errors.Is(err, sysmode.ErrInvalidMode):
		BadRequest(w, err.Error(), nil)

	// Teacher domain errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Fingerprint ID not registered")
	case errors.Is(err, teacher.ErrFingerprintAlreadyRegistered):
		Conflict(w, "Fingerprint ID already registered")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid admin password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidState):
		InternalServerError(w, "Invalid attendance state")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
