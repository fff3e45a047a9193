package leave

import "context"

type LeaveService interface {
	// Holiday requests
	CreateHolidayRequest(ctx context.Context, req CreateHolidayRequestRequest) (HolidayRequestResponse, error)
	ApproveHolidayRequest(ctx context.Context, id, actorID string) (HolidayRequestResponse, error)
	RejectHolidayRequest(ctx context.Context, req RejectHolidayRequestRequest) (HolidayRequestResponse, error)
	CancelHolidayRequest(ctx context.Context, req CancelHolidayRequestRequest) (HolidayRequestResponse, error)
	ListHolidayRequests(ctx context.Context, staffID string, year *int) ([]HolidayRequestResponse, error)
	ListPendingHolidayRequests(ctx context.Context) ([]HolidayRequestResponse, error)

	// Unplanned absences
	RecordSickLeave(ctx context.Context, req RecordSickLeaveRequest) (SickLeaveResponse, error)
	CloseSickLeave(ctx context.Context, req CloseSickLeaveRequest) (SickLeaveResponse, error)
	ListSickLeave(ctx context.Context, staffID string, year *int) ([]SickLeaveResponse, error)

	// Derived balance
	ComputeLeaveSummary(ctx context.Context, staffID string, year int) (LeaveSummaryResponse, error)
}
