package shift

import "time"

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodFullDay   Period = "full_day"
)

// TogglePeriodValues are the periods a calendar cell click can carry. Full-day
// shifts are never toggled directly; they only arise through merge.
var TogglePeriodValues = []string{
	string(PeriodMorning),
	string(PeriodAfternoon),
}

// Opposite returns the other half of the day. Only meaningful for morning and
// afternoon.
func (p Period) Opposite() Period {
	if p == PeriodMorning {
		return PeriodAfternoon
	}
	return PeriodMorning
}

// Shift is one staff member's scheduled working period on one calendar date.
// Shifts are never updated in place; every change is a delete plus recreate.
type Shift struct {
	ID        string
	StaffID   string
	Date      time.Time
	Period    Period
	Role      string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether this shift occupies the given half of the day.
func (s Shift) Covers(p Period) bool {
	return s.Period == PeriodFullDay || s.Period == p
}
