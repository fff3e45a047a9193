package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type HolidayRequestStatus string

const (
	HolidayStatusPending   HolidayRequestStatus = "pending"
	HolidayStatusApproved  HolidayRequestStatus = "approved"
	HolidayStatusRejected  HolidayRequestStatus = "rejected"
	HolidayStatusCancelled HolidayRequestStatus = "cancelled"
)

// HolidayRequest is a request for planned leave over an inclusive date range.
// DaysRequested is a free-floating fractional value: it supports half-day
// requests and is deliberately not cross-validated against the date span.
type HolidayRequest struct {
	ID            string
	StaffID       string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested decimal.Decimal
	LeaveType     string
	Reason        string
	Status        HolidayRequestStatus

	ApprovalNotes *string
	ApprovedBy    *string
	ApprovedAt    *time.Time

	// Set when an owner cancels a request that had already been approved, so
	// calendar and leave displays can flag the cancellation for audit.
	CancelledAfterApproval bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoversDate reports whether an approved holiday occupies the given calendar
// date. Ranges are inclusive at both ends.
func (h HolidayRequest) CoversDate(date time.Time) bool {
	return !date.Before(h.StartDate) && !date.After(h.EndDate)
}

// IntersectsYear reports whether the request's range touches the given year.
func (h HolidayRequest) IntersectsYear(year int) bool {
	return h.StartDate.Year() <= year && h.EndDate.Year() >= year
}

// SickLeaveRecord is a manager-logged unplanned absence. There is no status
// machine: the record is open while ActualReturn is nil and closed once set.
type SickLeaveRecord struct {
	ID             string
	StaffID        string
	Date           time.Time
	Reason         string
	ReportedTime   *time.Time
	ExpectedReturn *time.Time
	ActualReturn   *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Open reports whether the staff member has not yet returned.
func (s SickLeaveRecord) Open() bool {
	return s.ActualReturn == nil
}

// CoversDate reports whether the absence occupies the given calendar date.
// A record covers its own start date always; later dates only while no return
// is recorded and the expected return has not passed. Records with neither
// expected nor actual return cover only their start date.
func (s SickLeaveRecord) CoversDate(date time.Time) bool {
	if sameDate(s.Date, date) {
		return true
	}
	if !s.Date.Before(date) {
		return false
	}
	if s.ActualReturn != nil {
		return false
	}
	return s.ExpectedReturn != nil && !s.ExpectedReturn.Before(date)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// LeaveSummary is the derived yearly leave balance for one staff member. It is
// recomputed on demand, never stored. Entitlement and Remaining are nil for
// staff types without a fixed allowance; Remaining may go negative when
// taken + pending exceed entitlement, which must stay representable.
type LeaveSummary struct {
	StaffID                string
	Year                   int
	Entitlement            *decimal.Decimal
	Taken                  decimal.Decimal
	Pending                decimal.Decimal
	Remaining              *decimal.Decimal
	UnplannedAbsencesCount int
}
