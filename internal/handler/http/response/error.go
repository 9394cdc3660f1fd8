package response

import (
	"errors"
	"net/http"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountDeactivated):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOrgNotFound):
		NotFound(w, "Org not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrOrgIDRequired):
		BadRequest(w, "x-org-id header is required", nil)
	case errors.Is(err, user.ErrUnknownLeaveKind):
		BadRequest(w, "Unknown leave kind", nil)

	// Org domain errors
	case errors.Is(err, org.ErrOrgNotFound):
		NotFound(w, "Org not found")
	case errors.Is(err, org.ErrSlugExists):
		Conflict(w, "Org slug already taken")
	case errors.Is(err, org.ErrOrgInactive):
		Forbidden(w, "Org is deactivated")
	case errors.Is(err, org.ErrNotOrgMember):
		Forbidden(w, "Not a member of this org")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance record")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Only the requester can cancel this request")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrTicketNotFound):
		NotFound(w, "Ticket not found")
	case errors.Is(err, project.ErrTicketWrongProject):
		BadRequest(w, "Ticket does not belong to this project", nil)
	case errors.Is(err, project.ErrInvalidTicketStatus):
		BadRequest(w, "Invalid ticket status", nil)

	// Daily log domain errors
	case errors.Is(err, dailylog.ErrLogNotFound):
		NotFound(w, "Daily log not found")
	case errors.Is(err, dailylog.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this daily log")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrRequestNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrRequestAlreadyProcessed):
		Conflict(w, "Adjustment request already processed")
	case errors.Is(err, adjustment.ErrNotRequestOwner):
		Forbidden(w, "Only the requester can cancel this request")
	case errors.Is(err, adjustment.ErrNothingToAdjust):
		BadRequest(w, "At least one of requestedCheckIn or requestedCheckOut is required", nil)

	// Badge domain errors
	case errors.Is(err, badge.ErrBadgeNotFound):
		NotFound(w, "Badge not found")

	// Injected fixture faults surface as plain server errors
	case errors.Is(err, faults.ErrInjected):
		InternalServerError(w, "Transient store failure")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
