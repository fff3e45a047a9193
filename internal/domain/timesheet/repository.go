package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository - interface for the timesheets table
type TimesheetRepository interface {
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	Update(ctx context.Context, ts Timesheet) error
	ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]Timesheet, error)
	ListByStatus(ctx context.Context, status Status) ([]Timesheet, error)
	ListApprovedInRange(ctx context.Context, from, to time.Time) ([]Timesheet, error)
}
