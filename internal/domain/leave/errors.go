package leave

import "errors"

var (
	ErrHolidayRequestNotFound = errors.New("holiday request not found")
	ErrAlreadyProcessed       = errors.New("holiday request already processed")
	ErrNotOwner               = errors.New("only the owning staff member may cancel this request")
	ErrCancelNotAllowed       = errors.New("holiday request can only be cancelled while pending or approved")
	ErrSickLeaveNotFound      = errors.New("sick leave record not found")
	ErrSickLeaveAlreadyClosed = errors.New("sick leave record already has a return date")
)
