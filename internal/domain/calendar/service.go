package calendar

import (
	"context"
	"time"
)

type CalendarService interface {
	// DayStatus reconciles one (staff, date) cell.
	DayStatus(ctx context.Context, staffID string, date time.Time) (DayEntry, error)
	// Range reconciles every date in [from, to] for one staff member, or for
	// all assignable staff when staffID is nil.
	Range(ctx context.Context, staffID *string, from, to time.Time) ([]DayEntry, error)
}
