package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Upstream payloads that failed ingestion also carry validation errors,
	// so they are checked first.
	var shapeErr *validator.ShapeError
	if errors.As(err, &shapeErr) {
		BadGateway(w, "UNEXPECTED_DATA_SHAPE", "HR backend returned data in an unexpected shape", shapeErr.Errs.ToMap())
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session and access
	case errors.Is(err, access.ErrSessionMissing), errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing session")
	case errors.Is(err, access.ErrAccessDenied):
		Forbidden(w, "You do not have access to this feature")

	// Approval
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, approval.ErrRecordNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, approval.ErrIllegalTransition):
		Conflict(w, "This action is not allowed for the record's current status")
	case errors.Is(err, approval.ErrTransitionRejected):
		Conflict(w, "The HR backend rejected this action, refresh and try again")
	case errors.Is(err, approval.ErrUnknownAction):
		BadRequest(w, "Unknown approval action", nil)

	// Payroll
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// HR backend
	case errors.Is(err, backend.ErrUnavailable):
		ServiceUnavailable(w, "HR backend is unavailable, try again later")
	case errors.Is(err, backend.ErrNoToken):
		Unauthorized(w, "Missing credential for the HR backend")
	case backend.IsStatus(err, http.StatusUnauthorized):
		Unauthorized(w, "HR backend refused the credential")
	case backend.IsStatus(err, http.StatusForbidden):
		Forbidden(w, "HR backend refused access")
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			BadGateway(w, "BACKEND_ERROR", "HR backend request failed", nil)
			return
		}
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
