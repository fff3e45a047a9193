package timesheet

import "context"

type TimesheetService interface {
	Create(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error)
	Update(ctx context.Context, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Submit(ctx context.Context, id, actorID string) (TimesheetResponse, error)
	Approve(ctx context.Context, id, actorID string) (TimesheetResponse, error)
	Reject(ctx context.Context, req RejectTimesheetRequest) (TimesheetResponse, error)
	GetByID(ctx context.Context, id string) (TimesheetResponse, error)
	ListByStaff(ctx context.Context, filter ListTimesheetsFilter) ([]TimesheetResponse, error)
	ListPending(ctx context.Context) ([]TimesheetResponse, error)
}
