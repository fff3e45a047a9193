package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/calendar"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
)

type calendarServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	holidayRepo  leave.HolidayRequestRepository
	sickRepo     leave.SickLeaveRepository
	staffRepo    staff.StaffRepository
}

func NewCalendarService(
	shiftRepo shift.ShiftRepository,
	holidayRepo leave.HolidayRequestRepository,
	sickRepo leave.SickLeaveRepository,
	staffRepo staff.StaffRepository,
) calendar.CalendarService {
	return &calendarServiceImpl{
		shiftRepo:   shiftRepo,
		holidayRepo: holidayRepo,
		sickRepo:    sickRepo,
		staffRepo:   staffRepo,
	}
}

// DayStatus implements calendar.CalendarService.
func (s *calendarServiceImpl) DayStatus(ctx context.Context, staffID string, date time.Time) (calendar.DayEntry, error) {
	holidays, err := s.holidayRepo.ListApprovedInRange(ctx, &staffID, date, date)
	if err != nil {
		return calendar.DayEntry{}, fmt.Errorf("failed to load approved holidays: %w", err)
	}

	absences, err := s.sickRepo.ListCovering(ctx, &staffID, date, date)
	if err != nil {
		return calendar.DayEntry{}, fmt.Errorf("failed to load absences: %w", err)
	}

	shifts, err := s.shiftRepo.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return calendar.DayEntry{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	return reconcile(staffID, date, holidays, absences, shifts), nil
}

// Range implements calendar.CalendarService.
func (s *calendarServiceImpl) Range(ctx context.Context, staffID *string, from, to time.Time) ([]calendar.DayEntry, error) {
	var staffIDs []string
	if staffID != nil {
		staffIDs = []string{*staffID}
	} else {
		assignable, err := s.staffRepo.ListAssignable(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list assignable staff: %w", err)
		}
		for _, member := range assignable {
			staffIDs = append(staffIDs, member.ID)
		}
	}

	holidays, err := s.holidayRepo.ListApprovedInRange(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved holidays: %w", err)
	}

	absences, err := s.sickRepo.ListCovering(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load absences: %w", err)
	}

	shifts, err := s.shiftRepo.ListRange(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	holidaysByStaff := make(map[string][]leave.HolidayRequest)
	for _, h := range holidays {
		holidaysByStaff[h.StaffID] = append(holidaysByStaff[h.StaffID], h)
	}
	absencesByStaff := make(map[string][]leave.SickLeaveRecord)
	for _, a := range absences {
		absencesByStaff[a.StaffID] = append(absencesByStaff[a.StaffID], a)
	}
	shiftsByStaff := make(map[string][]shift.Shift)
	for _, sh := range shifts {
		shiftsByStaff[sh.StaffID] = append(shiftsByStaff[sh.StaffID], sh)
	}

	var entries []calendar.DayEntry
	for _, id := range staffIDs {
		for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
			entries = append(entries, reconcile(id, date, holidaysByStaff[id], absencesByStaff[id], shiftsByStaff[id]))
		}
	}

	return entries, nil
}

// reconcile merges one staff member's records for one date into a single
// display status. Strict precedence: approved holiday > open or date-matching
// absence > assigned shift > empty.
func reconcile(staffID string, date time.Time, holidays []leave.HolidayRequest, absences []leave.SickLeaveRecord, shifts []shift.Shift) calendar.DayEntry {
	entry := calendar.DayEntry{
		StaffID: staffID,
		Date:    date.Format("2006-01-02"),
		Status:  calendar.DayStatusEmpty,
	}

	for i := range holidays {
		if holidays[i].Status == leave.HolidayStatusApproved && holidays[i].CoversDate(date) {
			resp := leave.ToHolidayResponse(holidays[i])
			entry.Status = calendar.DayStatusOnHoliday
			entry.Holiday = &resp
			return entry
		}
	}

	for i := range absences {
		if absences[i].CoversDate(date) {
			resp := leave.ToSickLeaveResponse(absences[i])
			entry.Status = calendar.DayStatusAbsent
			entry.Absence = &resp
			return entry
		}
	}

	var dayShifts []shift.Shift
	for i := range shifts {
		if sameDate(shifts[i].Date, date) {
			dayShifts = append(dayShifts, shifts[i])
		}
	}
	if len(dayShifts) > 0 {
		entry.Status = calendar.DayStatusShift
		entry.Shifts = shift.ToResponses(dayShifts)
	}

	return entry
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
