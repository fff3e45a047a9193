package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/calendar"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memShiftRepo struct {
	shifts []shift.Shift
}

func (r *memShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *memShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *memShiftRepo) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range r.shifts {
		if s.StaffID == staffID && s.Date.Equal(date) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *memShiftRepo) ListRange(ctx context.Context, staffID *string, from, to time.Time) ([]shift.Shift, error) {
	var result []shift.Shift
	for _, s := range r.shifts {
		if staffID != nil && s.StaffID != *staffID {
			continue
		}
		if s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *memShiftRepo) Delete(ctx context.Context, id string) error { return nil }

type memHolidayRepo struct {
	requests []leave.HolidayRequest
}

func (r *memHolidayRepo) Create(ctx context.Context, request leave.HolidayRequest) (leave.HolidayRequest, error) {
	r.requests = append(r.requests, request)
	return request, nil
}

func (r *memHolidayRepo) GetByID(ctx context.Context, id string) (leave.HolidayRequest, error) {
	return leave.HolidayRequest{}, leave.ErrHolidayRequestNotFound
}

func (r *memHolidayRepo) Update(ctx context.Context, request leave.HolidayRequest) error { return nil }

func (r *memHolidayRepo) ListByStaff(ctx context.Context, staffID string, year *int) ([]leave.HolidayRequest, error) {
	return nil, nil
}

func (r *memHolidayRepo) ListByStatus(ctx context.Context, status leave.HolidayRequestStatus) ([]leave.HolidayRequest, error) {
	return nil, nil
}

func (r *memHolidayRepo) ListApprovedInRange(ctx context.Context, staffID *string, from, to time.Time) ([]leave.HolidayRequest, error) {
	var result []leave.HolidayRequest
	for _, request := range r.requests {
		if request.Status != leave.HolidayStatusApproved {
			continue
		}
		if staffID != nil && request.StaffID != *staffID {
			continue
		}
		if request.StartDate.After(to) || request.EndDate.Before(from) {
			continue
		}
		result = append(result, request)
	}
	return result, nil
}

func (r *memHolidayRepo) ListIntersectingYear(ctx context.Context, staffID string, year int) ([]leave.HolidayRequest, error) {
	return nil, nil
}

type memSickRepo struct {
	records []leave.SickLeaveRecord
}

func (r *memSickRepo) Create(ctx context.Context, record leave.SickLeaveRecord) (leave.SickLeaveRecord, error) {
	r.records = append(r.records, record)
	return record, nil
}

func (r *memSickRepo) GetByID(ctx context.Context, id string) (leave.SickLeaveRecord, error) {
	return leave.SickLeaveRecord{}, leave.ErrSickLeaveNotFound
}

func (r *memSickRepo) Update(ctx context.Context, record leave.SickLeaveRecord) error { return nil }

func (r *memSickRepo) ListByStaff(ctx context.Context, staffID string, year *int) ([]leave.SickLeaveRecord, error) {
	return nil, nil
}

func (r *memSickRepo) ListCovering(ctx context.Context, staffID *string, from, to time.Time) ([]leave.SickLeaveRecord, error) {
	var result []leave.SickLeaveRecord
	for _, record := range r.records {
		if staffID != nil && record.StaffID != *staffID {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (r *memSickRepo) CountByStaffYear(ctx context.Context, staffID string, year int) (int, error) {
	return 0, nil
}

type memStaffRepo struct {
	members []staff.Staff
}

func (r *memStaffRepo) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	r.members = append(r.members, member)
	return member, nil
}

func (r *memStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (r *memStaffRepo) Update(ctx context.Context, member staff.Staff) error { return nil }

func (r *memStaffRepo) List(ctx context.Context, includeInactive bool) ([]staff.Staff, error) {
	return r.members, nil
}

func (r *memStaffRepo) ListAssignable(ctx context.Context) ([]staff.Staff, error) {
	var result []staff.Staff
	for _, m := range r.members {
		if m.IsActive && m.HasYardAccess {
			result = append(result, m)
		}
	}
	return result, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func datePtr(s string) *time.Time {
	d := day(s)
	return &d
}

type fixture struct {
	shiftRepo   *memShiftRepo
	holidayRepo *memHolidayRepo
	sickRepo    *memSickRepo
	staffRepo   *memStaffRepo
	svc         calendar.CalendarService
}

func newFixture() *fixture {
	f := &fixture{
		shiftRepo:   &memShiftRepo{},
		holidayRepo: &memHolidayRepo{},
		sickRepo:    &memSickRepo{},
		staffRepo: &memStaffRepo{members: []staff.Staff{{
			ID:            "staff-1",
			FullName:      "Jo Bramley",
			StaffType:     staff.StaffTypePermanent,
			HasYardAccess: true,
			IsActive:      true,
		}}},
	}
	f.svc = NewCalendarService(f.shiftRepo, f.holidayRepo, f.sickRepo, f.staffRepo)
	return f
}

func (f *fixture) addShift(date string, period shift.Period) {
	f.shiftRepo.shifts = append(f.shiftRepo.shifts, shift.Shift{
		ID:      "shift-" + date + string(period),
		StaffID: "staff-1",
		Date:    day(date),
		Period:  period,
		Role:    "yard_duties",
	})
}

func (f *fixture) addApprovedHoliday(start, end string) {
	f.holidayRepo.requests = append(f.holidayRepo.requests, leave.HolidayRequest{
		ID:            "hr-" + start,
		StaffID:       "staff-1",
		StartDate:     day(start),
		EndDate:       day(end),
		DaysRequested: decimal.NewFromInt(1),
		LeaveType:     "annual",
		Status:        leave.HolidayStatusApproved,
	})
}

func TestDayStatusPrecedence(t *testing.T) {
	ctx := context.Background()

	t.Run("holiday beats absence and shift", func(t *testing.T) {
		f := newFixture()
		f.addShift("2026-08-24", shift.PeriodFullDay)
		f.addApprovedHoliday("2026-08-24", "2026-08-24")
		f.sickRepo.records = append(f.sickRepo.records, leave.SickLeaveRecord{
			ID:      "sl-1",
			StaffID: "staff-1",
			Date:    day("2026-08-24"),
			Reason:  "flu",
		})

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-24"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusOnHoliday, entry.Status)
		assert.NotNil(t, entry.Holiday)
		assert.Nil(t, entry.Absence)
		assert.Empty(t, entry.Shifts)
		assert.False(t, entry.Assignable())
	})

	t.Run("absence beats shift", func(t *testing.T) {
		f := newFixture()
		f.addShift("2026-08-24", shift.PeriodMorning)
		f.sickRepo.records = append(f.sickRepo.records, leave.SickLeaveRecord{
			ID:      "sl-1",
			StaffID: "staff-1",
			Date:    day("2026-08-24"),
			Reason:  "flu",
		})

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-24"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusAbsent, entry.Status)
		assert.False(t, entry.Assignable())
	})

	t.Run("shift when no overlay", func(t *testing.T) {
		f := newFixture()
		f.addShift("2026-08-24", shift.PeriodMorning)

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-24"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusShift, entry.Status)
		require.Len(t, entry.Shifts, 1)
		assert.True(t, entry.Assignable())
	})

	t.Run("empty otherwise", func(t *testing.T) {
		f := newFixture()

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-24"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusEmpty, entry.Status)
		assert.True(t, entry.Assignable())
	})
}

func TestAbsenceCoverage(t *testing.T) {
	ctx := context.Background()

	t.Run("open absence covers through expected return", func(t *testing.T) {
		f := newFixture()
		f.sickRepo.records = append(f.sickRepo.records, leave.SickLeaveRecord{
			ID:             "sl-1",
			StaffID:        "staff-1",
			Date:           day("2026-08-24"),
			Reason:         "flu",
			ExpectedReturn: datePtr("2026-08-26"),
		})

		for _, date := range []string{"2026-08-24", "2026-08-25", "2026-08-26"} {
			entry, err := f.svc.DayStatus(ctx, "staff-1", day(date))
			require.NoError(t, err)
			assert.Equal(t, calendar.DayStatusAbsent, entry.Status, date)
		}

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-27"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusEmpty, entry.Status)
	})

	t.Run("closed absence stops covering later days", func(t *testing.T) {
		f := newFixture()
		f.sickRepo.records = append(f.sickRepo.records, leave.SickLeaveRecord{
			ID:             "sl-1",
			StaffID:        "staff-1",
			Date:           day("2026-08-24"),
			Reason:         "flu",
			ExpectedReturn: datePtr("2026-08-28"),
			ActualReturn:   datePtr("2026-08-25"),
		})

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-24"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusAbsent, entry.Status)

		entry, err = f.svc.DayStatus(ctx, "staff-1", day("2026-08-25"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusEmpty, entry.Status)
	})

	t.Run("absence without returns covers only its start date", func(t *testing.T) {
		f := newFixture()
		f.sickRepo.records = append(f.sickRepo.records, leave.SickLeaveRecord{
			ID:      "sl-1",
			StaffID: "staff-1",
			Date:    day("2026-08-24"),
			Reason:  "flu",
		})

		entry, err := f.svc.DayStatus(ctx, "staff-1", day("2026-08-24"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusAbsent, entry.Status)

		entry, err = f.svc.DayStatus(ctx, "staff-1", day("2026-08-25"))
		require.NoError(t, err)
		assert.Equal(t, calendar.DayStatusEmpty, entry.Status)
	})
}

func TestRangeCoversAllAssignableStaff(t *testing.T) {
	f := newFixture()
	f.staffRepo.members = append(f.staffRepo.members, staff.Staff{
		ID:            "staff-2",
		FullName:      "Sam Field",
		StaffType:     staff.StaffTypeCasual,
		HasYardAccess: true,
		IsActive:      true,
	})
	f.addShift("2026-08-24", shift.PeriodMorning)

	entries, err := f.svc.Range(context.Background(), nil, day("2026-08-24"), day("2026-08-25"))
	require.NoError(t, err)

	// Two staff times two days.
	require.Len(t, entries, 4)

	byKey := make(map[string]calendar.DayEntry)
	for _, e := range entries {
		byKey[e.StaffID+"/"+e.Date] = e
	}
	assert.Equal(t, calendar.DayStatusShift, byKey["staff-1/2026-08-24"].Status)
	assert.Equal(t, calendar.DayStatusEmpty, byKey["staff-1/2026-08-25"].Status)
	assert.Equal(t, calendar.DayStatusEmpty, byKey["staff-2/2026-08-24"].Status)
}
