package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")

	// ErrStaffUnavailable rejects a toggle against a cell covered by an
	// approved holiday or open absence. Never silently ignored.
	ErrStaffUnavailable = errors.New("staff member is unavailable on this date")

	// ErrCalendarStateUnknown signals a storage failure partway through the
	// merge/split sequence: the calendar may be inconsistent and callers must
	// reload before further edits.
	ErrCalendarStateUnknown = errors.New("calendar state may be inconsistent, reload required")
)
