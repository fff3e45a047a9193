package timesheet

import (
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/timecalc"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// transitions is the explicit status transition table. Any move not listed
// here is rejected, never inferred.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	StatusRejected:  {StatusDraft, StatusSubmitted},
	StatusApproved:  {},
}

// CanTransition reports whether the status machine permits from → to.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Timesheet records actually worked hours for one staff member on one date.
// LoggedBy differs from StaffID when a manager created the entry on behalf of
// the owner.
type Timesheet struct {
	ID              string
	StaffID         string
	Date            time.Time
	ClockIn         time.Time
	ClockOut        *time.Time
	LunchStart      *time.Time
	LunchEnd        *time.Time
	BreakMinutes    int
	WorkType        string
	Notes           *string
	Status          Status
	RejectionReason *string
	LoggedBy        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Editable reports whether the owner may still change the entry.
func (t Timesheet) Editable() bool {
	return t.Status == StatusDraft || t.Status == StatusRejected
}

// WorkedHours computes the entry's worked-hour total. The second return is
// false while the day is still open (no clock-out recorded).
func (t Timesheet) WorkedHours() (decimal.Decimal, bool) {
	return timecalc.WorkedHours(t.ClockIn, t.ClockOut, t.LunchStart, t.LunchEnd, t.BreakMinutes)
}
