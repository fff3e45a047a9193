package payroll

import (
	"context"
	"time"
)

// AdjustmentRepository - interface for the payroll_adjustments table
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment PayrollAdjustment) (PayrollAdjustment, error)
	GetByID(ctx context.Context, id string) (PayrollAdjustment, error)
	ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]PayrollAdjustment, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]PayrollAdjustment, error)
}
