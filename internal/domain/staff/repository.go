package staff

import "context"

// StaffRepository - interface for the staff directory table
type StaffRepository interface {
	Create(ctx context.Context, member Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	Update(ctx context.Context, member Staff) error
	List(ctx context.Context, includeInactive bool) ([]Staff, error)
	ListAssignable(ctx context.Context) ([]Staff, error)
}
