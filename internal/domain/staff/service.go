package staff

import "context"

type StaffService interface {
	Create(ctx context.Context, req CreateStaffRequest) (Staff, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, includeInactive bool) ([]StaffResponse, error)
	ListAssignable(ctx context.Context) ([]StaffResponse, error)
}
