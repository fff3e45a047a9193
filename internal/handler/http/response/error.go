package response

import (
	"errors"
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/lookup"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/payroll"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/timesheet"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/token"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
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
	case errors.Is(err, token.ErrIdentityMissing):
		Unauthorized(w, "Authentication required")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrStaffUnavailable):
		Conflict(w, "Staff member is on leave or absent on that date")
	case errors.Is(err, shift.ErrCalendarStateUnknown):
		InternalServerError(w, "Calendar state may be inconsistent, reload required")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrInvalidTransition):
		Conflict(w, "Timesheet status does not allow this action")
	case errors.Is(err, timesheet.ErrNotEditable):
		Conflict(w, "Timesheet can no longer be edited")
	case errors.Is(err, timesheet.ErrNotOwner):
		Forbidden(w, "Only the owning staff member may do this")
	case errors.Is(err, timesheet.ErrManagerRequired):
		Forbidden(w, "Manager role required to act on behalf of other staff")

	// Leave domain errors
	case errors.Is(err, leave.ErrHolidayRequestNotFound):
		NotFound(w, "Holiday request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Holiday request already processed")
	case errors.Is(err, leave.ErrCancelNotAllowed):
		Conflict(w, "Holiday request can no longer be cancelled")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Only the requesting staff member may do this")
	case errors.Is(err, leave.ErrSickLeaveNotFound):
		NotFound(w, "Sick leave record not found")
	case errors.Is(err, leave.ErrSickLeaveAlreadyClosed):
		Conflict(w, "Sick leave record is already closed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
		NotFound(w, "Payroll adjustment not found")

	// Lookup domain errors
	case errors.Is(err, lookup.ErrUnknownKind):
		NotFound(w, "Unknown lookup kind")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
