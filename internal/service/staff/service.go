package staff

import (
	"context"
	"fmt"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
)

type staffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &staffServiceImpl{staffRepo: staffRepo}
}

// Create implements staff.StaffService.
func (s *staffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Staff, error) {
	if err := req.Validate(); err != nil {
		return staff.Staff{}, err
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		FullName:               req.FullName,
		StaffType:              staff.StaffType(req.StaffType),
		HourlyRate:             req.HourlyRate,
		AnnualLeaveEntitlement: req.AnnualLeaveEntitlement,
		HasYardAccess:          req.HasYardAccess,
		IsActive:               true,
	})
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return created, nil
}

// Update implements staff.StaffService.
func (s *staffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	member, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.StaffType != nil {
		member.StaffType = staff.StaffType(*req.StaffType)
	}
	if req.HourlyRate != nil {
		member.HourlyRate = req.HourlyRate
	}
	if req.AnnualLeaveEntitlement != nil {
		member.AnnualLeaveEntitlement = req.AnnualLeaveEntitlement
	}
	if req.HasYardAccess != nil {
		member.HasYardAccess = *req.HasYardAccess
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}

	return nil
}

// GetByID implements staff.StaffService.
func (s *staffServiceImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// List implements staff.StaffService.
func (s *staffServiceImpl) List(ctx context.Context, includeInactive bool) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return toResponses(members), nil
}

// ListAssignable implements staff.StaffService: active staff with yard access,
// the pool eligible for shift assignment.
func (s *staffServiceImpl) ListAssignable(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.ListAssignable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable staff: %w", err)
	}
	return toResponses(members), nil
}

func toResponses(members []staff.Staff) []staff.StaffResponse {
	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, staff.ToResponse(m))
	}
	return responses
}
