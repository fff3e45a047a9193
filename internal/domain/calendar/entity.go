package calendar

import (
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
)

// DayStatus is the single display status for one (staff, date) cell. Strict
// precedence: approved holiday > open or date-matching absence > assigned
// shift > empty. Every consumer of the calendar must go through this package
// so precedence never diverges between views.
type DayStatus string

const (
	DayStatusOnHoliday DayStatus = "on_holiday"
	DayStatusAbsent    DayStatus = "absent"
	DayStatusShift     DayStatus = "shift"
	DayStatusEmpty     DayStatus = "empty"
)

// DayEntry is the reconciled view of one staff member's calendar date.
type DayEntry struct {
	StaffID string                         `json:"staff_id"`
	Date    string                         `json:"date"`
	Status  DayStatus                      `json:"status"`
	Shifts  []shift.ShiftResponse          `json:"shifts,omitempty"`
	Holiday *leave.HolidayRequestResponse  `json:"holiday,omitempty"`
	Absence *leave.SickLeaveResponse       `json:"absence,omitempty"`
}

// Assignable reports whether a shift toggle may proceed on this cell. Cells
// under a holiday or absence overlay are non-interactive.
func (e DayEntry) Assignable() bool {
	return e.Status == DayStatusShift || e.Status == DayStatusEmpty
}
