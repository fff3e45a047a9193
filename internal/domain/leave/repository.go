package leave

import (
	"context"
	"time"
)

// HolidayRequestRepository - interface for the holiday_requests table
type HolidayRequestRepository interface {
	Create(ctx context.Context, request HolidayRequest) (HolidayRequest, error)
	GetByID(ctx context.Context, id string) (HolidayRequest, error)
	Update(ctx context.Context, request HolidayRequest) error
	ListByStaff(ctx context.Context, staffID string, year *int) ([]HolidayRequest, error)
	ListByStatus(ctx context.Context, status HolidayRequestStatus) ([]HolidayRequest, error)
	ListApprovedInRange(ctx context.Context, staffID *string, from, to time.Time) ([]HolidayRequest, error)
	ListIntersectingYear(ctx context.Context, staffID string, year int) ([]HolidayRequest, error)
}

// SickLeaveRepository - interface for the sick_leave_records table
type SickLeaveRepository interface {
	Create(ctx context.Context, record SickLeaveRecord) (SickLeaveRecord, error)
	GetByID(ctx context.Context, id string) (SickLeaveRecord, error)
	Update(ctx context.Context, record SickLeaveRecord) error
	ListByStaff(ctx context.Context, staffID string, year *int) ([]SickLeaveRecord, error)
	ListCovering(ctx context.Context, staffID *string, from, to time.Time) ([]SickLeaveRecord, error)
	CountByStaffYear(ctx context.Context, staffID string, year int) (int, error)
}
