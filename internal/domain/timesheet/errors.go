package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrInvalidTransition = errors.New("timesheet status transition not permitted")
	ErrNotOwner          = errors.New("only the owning staff member may perform this action")
	ErrNotEditable       = errors.New("timesheet is locked from edits in its current status")
	ErrManagerRequired   = errors.New("manager role required for this action")
)
