package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type StaffType string

const (
	StaffTypePermanent StaffType = "permanent"
	StaffTypeCasual    StaffType = "casual"
	StaffTypeOnCall    StaffType = "on_call"
)

var StaffTypeValues = []string{
	string(StaffTypePermanent),
	string(StaffTypeCasual),
	string(StaffTypeOnCall),
}

// Staff is the directory record for one member of yard staff. Hourly rate and
// entitlement are nullable: casual and on-call staff carry neither a fixed
// leave allowance nor, in some cases, a standing rate.
type Staff struct {
	ID                     string
	FullName               string
	StaffType              StaffType
	HourlyRate             *decimal.Decimal
	AnnualLeaveEntitlement *decimal.Decimal
	HasYardAccess          bool
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// HasEntitlement reports whether this staff member has a fixed yearly leave
// allowance. Staff types without one get an unavailable remaining balance,
// never zero.
func (s Staff) HasEntitlement() bool {
	return s.AnnualLeaveEntitlement != nil
}
