package shift

import (
	"context"
	"time"
)

// ShiftRepository - interface for the shifts table
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) ([]Shift, error)
	ListRange(ctx context.Context, staffID *string, from, to time.Time) ([]Shift, error)
	Delete(ctx context.Context, id string) error
}
