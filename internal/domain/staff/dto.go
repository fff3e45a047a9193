package staff

import (
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	FullName               string           `json:"full_name"`
	StaffType              string           `json:"staff_type"`
	HourlyRate             *decimal.Decimal `json:"hourly_rate,omitempty"`
	AnnualLeaveEntitlement *decimal.Decimal `json:"annual_leave_entitlement,omitempty"`
	HasYardAccess          bool             `json:"has_yard_access"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.StaffType, StaffTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_type",
			Message: "staff_type must be one of: permanent, casual, on_call",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if r.AnnualLeaveEntitlement != nil && r.AnnualLeaveEntitlement.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leave_entitlement",
			Message: "annual_leave_entitlement must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID                     string           `json:"-"`
	FullName               *string          `json:"full_name,omitempty"`
	StaffType              *string          `json:"staff_type,omitempty"`
	HourlyRate             *decimal.Decimal `json:"hourly_rate,omitempty"`
	AnnualLeaveEntitlement *decimal.Decimal `json:"annual_leave_entitlement,omitempty"`
	HasYardAccess          *bool            `json:"has_yard_access,omitempty"`
	IsActive               *bool            `json:"is_active,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.StaffType != nil && !validator.IsInSlice(*r.StaffType, StaffTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_type",
			Message: "staff_type must be one of: permanent, casual, on_call",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffResponse struct {
	ID                     string           `json:"id"`
	FullName               string           `json:"full_name"`
	StaffType              string           `json:"staff_type"`
	HourlyRate             *decimal.Decimal `json:"hourly_rate,omitempty"`
	AnnualLeaveEntitlement *decimal.Decimal `json:"annual_leave_entitlement,omitempty"`
	HasYardAccess          bool             `json:"has_yard_access"`
	IsActive               bool             `json:"is_active"`
}

func ToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:                     s.ID,
		FullName:               s.FullName,
		StaffType:              string(s.StaffType),
		HourlyRate:             s.HourlyRate,
		AnnualLeaveEntitlement: s.AnnualLeaveEntitlement,
		HasYardAccess:          s.HasYardAccess,
		IsActive:               s.IsActive,
	}
}
