package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ptcpms/personnel-backend-go/internal/domain/archive"
	"github.com/ptcpms/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcpms/personnel-backend-go/internal/domain/auth"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/domain/user"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors carry a per-field map
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google sign-in is not configured", nil)
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Personnel domain errors
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")
	case errors.Is(err, personnel.ErrPNOExists):
		Conflict(w, "PNO already registered")
	case errors.Is(err, personnel.ErrInvalidPersonnelType):
		BadRequest(w, "Personnel type must be staff or trainee", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrLeaveRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrInvalidRecordType):
		BadRequest(w, "Record type must be absence or leave", nil)

	// Archive domain errors
	case errors.Is(err, archive.ErrArchivedRecordNotFound):
		NotFound(w, "Archived record not found")
	case errors.Is(err, archive.ErrFolderNotFound):
		NotFound(w, "Archive folder not found")
	case errors.Is(err, archive.ErrNoPersonnelMatched):
		NotFound(w, "No personnel matched the given ids")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
