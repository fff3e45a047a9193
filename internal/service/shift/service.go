package shift

import (
	"context"
	"fmt"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/calendar"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/darrylcauldwell/workforce-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type shiftServiceImpl struct {
	db              *database.DB
	shiftRepo       shift.ShiftRepository
	calendarService calendar.CalendarService
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository, calendarService calendar.CalendarService) shift.ShiftService {
	return &shiftServiceImpl{
		db:              db,
		shiftRepo:       shiftRepo,
		calendarService: calendarService,
	}
}

// Toggle implements shift.ShiftService.
//
// The cell-click state machine, given the shifts currently on (staff, date):
//  1. full-day covering the clicked period → split down to the opposite half
//  2. exactly the clicked period occupied → clear it
//  3. clicked period empty, opposite half holds the same role → merge to full-day
//  4. otherwise → create the clicked period
func (s *shiftServiceImpl) Toggle(ctx context.Context, req shift.ToggleShiftRequest) (shift.ShiftCellResult, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftCellResult{}, err
	}

	// Overlay veto: a cell under an approved holiday or open absence is
	// non-interactive. Re-checked server-side, never trusted from the client.
	entry, err := s.calendarService.DayStatus(ctx, req.StaffID, req.ParsedDate)
	if err != nil {
		return shift.ShiftCellResult{}, fmt.Errorf("failed to reconcile calendar cell: %w", err)
	}
	if !entry.Assignable() {
		return shift.ShiftCellResult{}, shift.ErrStaffUnavailable
	}

	period := shift.Period(req.Period)

	var result shift.ShiftCellResult
	err = s.inTx(ctx, func(txCtx context.Context) error {
		existing, err := s.shiftRepo.GetByStaffAndDate(txCtx, req.StaffID, req.ParsedDate)
		if err != nil {
			return err
		}

		var fullDay, clicked, opposite *shift.Shift
		for i := range existing {
			switch existing[i].Period {
			case shift.PeriodFullDay:
				fullDay = &existing[i]
			case period:
				clicked = &existing[i]
			case period.Opposite():
				opposite = &existing[i]
			}
		}

		switch {
		case fullDay != nil:
			// Clicking either half of a full-day shift halves it down to the
			// other half, retaining the role.
			if err := s.shiftRepo.Delete(txCtx, fullDay.ID); err != nil {
				return err
			}
			created, err := s.shiftRepo.Create(txCtx, shift.Shift{
				StaffID: req.StaffID,
				Date:    req.ParsedDate,
				Period:  period.Opposite(),
				Role:    fullDay.Role,
				Notes:   fullDay.Notes,
			})
			if err != nil {
				return err
			}
			result = shift.ShiftCellResult{
				Action: shift.CellActionSplit,
				Shifts: shift.ToResponses([]shift.Shift{created}),
			}

		case clicked != nil:
			if err := s.shiftRepo.Delete(txCtx, clicked.ID); err != nil {
				return err
			}
			remaining := []shift.Shift{}
			if opposite != nil {
				remaining = append(remaining, *opposite)
			}
			result = shift.ShiftCellResult{
				Action: shift.CellActionCleared,
				Shifts: shift.ToResponses(remaining),
			}

		case opposite != nil && opposite.Role == req.Role:
			// Matching role on both halves: auto-merge into one full-day shift.
			if err := s.shiftRepo.Delete(txCtx, opposite.ID); err != nil {
				return err
			}
			created, err := s.shiftRepo.Create(txCtx, shift.Shift{
				StaffID: req.StaffID,
				Date:    req.ParsedDate,
				Period:  shift.PeriodFullDay,
				Role:    req.Role,
				Notes:   req.Notes,
			})
			if err != nil {
				return err
			}
			result = shift.ShiftCellResult{
				Action: shift.CellActionMerged,
				Shifts: shift.ToResponses([]shift.Shift{created}),
			}

		default:
			created, err := s.shiftRepo.Create(txCtx, shift.Shift{
				StaffID: req.StaffID,
				Date:    req.ParsedDate,
				Period:  period,
				Role:    req.Role,
				Notes:   req.Notes,
			})
			if err != nil {
				return err
			}
			occupied := []shift.Shift{created}
			if opposite != nil {
				occupied = append(occupied, *opposite)
			}
			result = shift.ShiftCellResult{
				Action: shift.CellActionCreated,
				Shifts: shift.ToResponses(occupied),
			}
		}

		return nil
	})
	if err != nil {
		// A failure inside the delete-then-create sequence means the caller
		// can no longer trust its view of the cell. Surface the reload
		// requirement, never swallow it.
		return shift.ShiftCellResult{}, fmt.Errorf("%w: %v", shift.ErrCalendarStateUnknown, err)
	}

	return result, nil
}

// List implements shift.ShiftService.
func (s *shiftServiceImpl) List(ctx context.Context, filter shift.ListShiftsFilter) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListRange(ctx, filter.StaffID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shift.ToResponses(shifts), nil
}

// Delete implements shift.ShiftService.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

// inTx runs fn inside a database transaction so the merge/split delete+create
// steps commit or roll back as one. Without a pool (unit tests) fn runs
// directly.
func (s *shiftServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}
