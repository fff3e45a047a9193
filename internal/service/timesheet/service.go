package timesheet

import (
	"context"
	"fmt"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/timesheet"
)

type timesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
}

func NewTimesheetService(timesheetRepo timesheet.TimesheetRepository) timesheet.TimesheetService {
	return &timesheetServiceImpl{timesheetRepo: timesheetRepo}
}

// Create implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) Create(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	// A manager may create on behalf of another staff member; everyone else
	// only for themselves. LoggedBy always records the acting user.
	ownerID := req.ActorID
	if req.StaffID != "" && req.StaffID != req.ActorID {
		if !req.ActorIsManager {
			return timesheet.TimesheetResponse{}, timesheet.ErrManagerRequired
		}
		ownerID = req.StaffID
	}

	date, clockIn, clockOut, lunchStart, lunchEnd := req.Parsed()

	created, err := s.timesheetRepo.Create(ctx, timesheet.Timesheet{
		StaffID:      ownerID,
		Date:         date,
		ClockIn:      clockIn,
		ClockOut:     clockOut,
		LunchStart:   lunchStart,
		LunchEnd:     lunchEnd,
		BreakMinutes: req.BreakMinutes,
		WorkType:     req.WorkType,
		Notes:        req.Notes,
		Status:       timesheet.StatusDraft,
		LoggedBy:     req.ActorID,
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return timesheet.ToResponse(created), nil
}

// Update implements timesheet.TimesheetService. Editing a rejected entry
// clears the rejection reason and returns it to draft; an explicit re-submit
// is required to reach submitted again.
func (s *timesheetServiceImpl) Update(ctx context.Context, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.timesheetRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if ts.StaffID != req.ActorID && !req.ActorIsManager {
		return timesheet.TimesheetResponse{}, timesheet.ErrNotOwner
	}

	if !ts.Editable() {
		return timesheet.TimesheetResponse{}, timesheet.ErrNotEditable
	}

	date, clockIn, clockOut, lunchStart, lunchEnd := req.Parsed()

	ts.Date = date
	ts.ClockIn = clockIn
	ts.ClockOut = clockOut
	ts.LunchStart = lunchStart
	ts.LunchEnd = lunchEnd
	ts.BreakMinutes = req.BreakMinutes
	ts.WorkType = req.WorkType
	ts.Notes = req.Notes

	if ts.Status == timesheet.StatusRejected {
		ts.Status = timesheet.StatusDraft
		ts.RejectionReason = nil
	}

	if err := s.timesheetRepo.Update(ctx, ts); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to update timesheet: %w", err)
	}

	return timesheet.ToResponse(ts), nil
}

// Submit implements timesheet.TimesheetService. Only the owning staff member
// submits their own entry.
func (s *timesheetServiceImpl) Submit(ctx context.Context, id, actorID string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if ts.StaffID != actorID {
		return timesheet.TimesheetResponse{}, timesheet.ErrNotOwner
	}

	if !timesheet.CanTransition(ts.Status, timesheet.StatusSubmitted) {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidTransition
	}

	ts.Status = timesheet.StatusSubmitted
	ts.RejectionReason = nil

	if err := s.timesheetRepo.Update(ctx, ts); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to submit timesheet: %w", err)
	}

	return timesheet.ToResponse(ts), nil
}

// Approve implements timesheet.TimesheetService. Terminal.
func (s *timesheetServiceImpl) Approve(ctx context.Context, id, actorID string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if !timesheet.CanTransition(ts.Status, timesheet.StatusApproved) {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidTransition
	}

	ts.Status = timesheet.StatusApproved

	if err := s.timesheetRepo.Update(ctx, ts); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to approve timesheet: %w", err)
	}

	return timesheet.ToResponse(ts), nil
}

// Reject implements timesheet.TimesheetService. The reason is retained and
// surfaced to the owner.
func (s *timesheetServiceImpl) Reject(ctx context.Context, req timesheet.RejectTimesheetRequest) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if !timesheet.CanTransition(ts.Status, timesheet.StatusRejected) {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidTransition
	}

	ts.Status = timesheet.StatusRejected
	ts.RejectionReason = req.Reason

	if err := s.timesheetRepo.Update(ctx, ts); err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to reject timesheet: %w", err)
	}

	return timesheet.ToResponse(ts), nil
}

// GetByID implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) GetByID(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(ts), nil
}

// ListByStaff implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) ListByStaff(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.TimesheetResponse, error) {
	timesheets, err := s.timesheetRepo.ListByStaffRange(ctx, filter.StaffID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return timesheet.ToResponses(timesheets), nil
}

// ListPending implements timesheet.TimesheetService: the manager approval
// queue of everything awaiting a decision.
func (s *timesheetServiceImpl) ListPending(ctx context.Context) ([]timesheet.TimesheetResponse, error) {
	timesheets, err := s.timesheetRepo.ListByStatus(ctx, timesheet.StatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted timesheets: %w", err)
	}
	return timesheet.ToResponses(timesheets), nil
}
