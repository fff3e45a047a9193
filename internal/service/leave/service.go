package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/google/uuid"
)

type leaveServiceImpl struct {
	holidayRepo leave.HolidayRequestRepository
	sickRepo    leave.SickLeaveRepository
	staffRepo   staff.StaffRepository
}

func NewLeaveService(
	holidayRepo leave.HolidayRequestRepository,
	sickRepo leave.SickLeaveRepository,
	staffRepo staff.StaffRepository,
) leave.LeaveService {
	return &leaveServiceImpl{
		holidayRepo: holidayRepo,
		sickRepo:    sickRepo,
		staffRepo:   staffRepo,
	}
}

// CreateHolidayRequest implements leave.LeaveService. The ledger accepts any
// positive days_requested; deriving it from the date span is a presentation
// concern, so half-day values smaller than the span are fine.
func (s *leaveServiceImpl) CreateHolidayRequest(ctx context.Context, req leave.CreateHolidayRequestRequest) (leave.HolidayRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.HolidayRequestResponse{}, err
	}

	ownerID := req.ActorID
	if req.StaffID != "" && req.StaffID != req.ActorID && req.ActorIsManager {
		ownerID = req.StaffID
	}

	if _, err := s.staffRepo.GetByID(ctx, ownerID); err != nil {
		return leave.HolidayRequestResponse{}, err
	}

	start, end := req.ParsedDates()

	created, err := s.holidayRepo.Create(ctx, leave.HolidayRequest{
		StaffID:       ownerID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: req.DaysRequested,
		LeaveType:     req.LeaveType,
		Reason:        req.Reason,
		Status:        leave.HolidayStatusPending,
	})
	if err != nil {
		return leave.HolidayRequestResponse{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	return leave.ToHolidayResponse(created), nil
}

// ApproveHolidayRequest implements leave.LeaveService.
func (s *leaveServiceImpl) ApproveHolidayRequest(ctx context.Context, id, actorID string) (leave.HolidayRequestResponse, error) {
	request, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return leave.HolidayRequestResponse{}, err
	}

	if request.Status != leave.HolidayStatusPending {
		return leave.HolidayRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.HolidayStatusApproved
	request.ApprovedBy = &actorID
	request.ApprovedAt = &now

	if err := s.holidayRepo.Update(ctx, request); err != nil {
		return leave.HolidayRequestResponse{}, fmt.Errorf("failed to approve holiday request: %w", err)
	}

	return leave.ToHolidayResponse(request), nil
}

// RejectHolidayRequest implements leave.LeaveService.
func (s *leaveServiceImpl) RejectHolidayRequest(ctx context.Context, req leave.RejectHolidayRequestRequest) (leave.HolidayRequestResponse, error) {
	request, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.HolidayRequestResponse{}, err
	}

	if request.Status != leave.HolidayStatusPending {
		return leave.HolidayRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.HolidayStatusRejected
	request.ApprovalNotes = req.Notes
	request.ApprovedBy = &req.ActorID
	request.ApprovedAt = &now

	if err := s.holidayRepo.Update(ctx, request); err != nil {
		return leave.HolidayRequestResponse{}, fmt.Errorf("failed to reject holiday request: %w", err)
	}

	return leave.ToHolidayResponse(request), nil
}

// CancelHolidayRequest implements leave.LeaveService. Owner-only, and only
// while pending or approved. Cancelling an already-approved holiday is
// allowed but flagged for audit.
func (s *leaveServiceImpl) CancelHolidayRequest(ctx context.Context, req leave.CancelHolidayRequestRequest) (leave.HolidayRequestResponse, error) {
	request, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.HolidayRequestResponse{}, err
	}

	if request.StaffID != req.ActorID {
		return leave.HolidayRequestResponse{}, leave.ErrNotOwner
	}

	if request.Status != leave.HolidayStatusPending && request.Status != leave.HolidayStatusApproved {
		return leave.HolidayRequestResponse{}, leave.ErrCancelNotAllowed
	}

	request.CancelledAfterApproval = request.Status == leave.HolidayStatusApproved
	request.Status = leave.HolidayStatusCancelled

	if err := s.holidayRepo.Update(ctx, request); err != nil {
		return leave.HolidayRequestResponse{}, fmt.Errorf("failed to cancel holiday request: %w", err)
	}

	return leave.ToHolidayResponse(request), nil
}

// ListHolidayRequests implements leave.LeaveService.
func (s *leaveServiceImpl) ListHolidayRequests(ctx context.Context, staffID string, year *int) ([]leave.HolidayRequestResponse, error) {
	requests, err := s.holidayRepo.ListByStaff(ctx, staffID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	return leave.ToHolidayResponses(requests), nil
}

// ListPendingHolidayRequests implements leave.LeaveService.
func (s *leaveServiceImpl) ListPendingHolidayRequests(ctx context.Context) ([]leave.HolidayRequestResponse, error) {
	requests, err := s.holidayRepo.ListByStatus(ctx, leave.HolidayStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending holiday requests: %w", err)
	}
	return leave.ToHolidayResponses(requests), nil
}

// RecordSickLeave implements leave.LeaveService. Manager-only creation with no
// approval step; the route enforces the role.
func (s *leaveServiceImpl) RecordSickLeave(ctx context.Context, req leave.RecordSickLeaveRequest) (leave.SickLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.SickLeaveResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return leave.SickLeaveResponse{}, err
	}

	date, reportedTime, expectedReturn := req.Parsed()

	created, err := s.sickRepo.Create(ctx, leave.SickLeaveRecord{
		ID:             uuid.NewString(),
		StaffID:        req.StaffID,
		Date:           date,
		Reason:         req.Reason,
		ReportedTime:   reportedTime,
		ExpectedReturn: expectedReturn,
		Notes:          req.Notes,
	})
	if err != nil {
		return leave.SickLeaveResponse{}, fmt.Errorf("failed to record sick leave: %w", err)
	}

	return leave.ToSickLeaveResponse(created), nil
}

// CloseSickLeave implements leave.LeaveService: records the actual return
// date, closing the absence.
func (s *leaveServiceImpl) CloseSickLeave(ctx context.Context, req leave.CloseSickLeaveRequest) (leave.SickLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.SickLeaveResponse{}, err
	}

	record, err := s.sickRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.SickLeaveResponse{}, err
	}

	if !record.Open() {
		return leave.SickLeaveResponse{}, leave.ErrSickLeaveAlreadyClosed
	}

	actualReturn := req.ParsedActualReturn()
	record.ActualReturn = &actualReturn

	if err := s.sickRepo.Update(ctx, record); err != nil {
		return leave.SickLeaveResponse{}, fmt.Errorf("failed to close sick leave: %w", err)
	}

	return leave.ToSickLeaveResponse(record), nil
}

// ListSickLeave implements leave.LeaveService.
func (s *leaveServiceImpl) ListSickLeave(ctx context.Context, staffID string, year *int) ([]leave.SickLeaveResponse, error) {
	records, err := s.sickRepo.ListByStaff(ctx, staffID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list sick leave records: %w", err)
	}
	return leave.ToSickLeaveResponses(records), nil
}

// ComputeLeaveSummary implements leave.LeaveService. Taken and pending sum
// days_requested over requests whose range intersects the year. Remaining may
// go negative; over-allocation is representable, never clamped.
func (s *leaveServiceImpl) ComputeLeaveSummary(ctx context.Context, staffID string, year int) (leave.LeaveSummaryResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return leave.LeaveSummaryResponse{}, err
	}

	requests, err := s.holidayRepo.ListIntersectingYear(ctx, staffID, year)
	if err != nil {
		return leave.LeaveSummaryResponse{}, fmt.Errorf("failed to list holiday requests for year: %w", err)
	}

	summary := leave.LeaveSummary{
		StaffID: staffID,
		Year:    year,
	}

	for _, request := range requests {
		switch request.Status {
		case leave.HolidayStatusApproved:
			summary.Taken = summary.Taken.Add(request.DaysRequested)
		case leave.HolidayStatusPending:
			summary.Pending = summary.Pending.Add(request.DaysRequested)
		}
	}

	// Entitlement is absent for staff types without a fixed allowance; the
	// remaining balance is then unavailable, not zero.
	if member.HasEntitlement() {
		entitlement := *member.AnnualLeaveEntitlement
		remaining := entitlement.Sub(summary.Taken).Sub(summary.Pending)
		summary.Entitlement = &entitlement
		summary.Remaining = &remaining
	}

	absences, err := s.sickRepo.CountByStaffYear(ctx, staffID, year)
	if err != nil {
		return leave.LeaveSummaryResponse{}, fmt.Errorf("failed to count unplanned absences: %w", err)
	}
	summary.UnplannedAbsencesCount = absences

	return leave.ToSummaryResponse(summary), nil
}
