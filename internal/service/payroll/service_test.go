package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/payroll"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAdjustmentRepo struct {
	adjustments []payroll.PayrollAdjustment
}

func (r *memAdjustmentRepo) Create(ctx context.Context, adjustment payroll.PayrollAdjustment) (payroll.PayrollAdjustment, error) {
	r.adjustments = append(r.adjustments, adjustment)
	return adjustment, nil
}

func (r *memAdjustmentRepo) GetByID(ctx context.Context, id string) (payroll.PayrollAdjustment, error) {
	for _, a := range r.adjustments {
		if a.ID == id {
			return a, nil
		}
	}
	return payroll.PayrollAdjustment{}, payroll.ErrAdjustmentNotFound
}

func (r *memAdjustmentRepo) ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]payroll.PayrollAdjustment, error) {
	var result []payroll.PayrollAdjustment
	for _, a := range r.adjustments {
		if a.StaffID == staffID && !a.PaymentDate.Before(from) && !a.PaymentDate.After(to) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memAdjustmentRepo) ListInRange(ctx context.Context, from, to time.Time) ([]payroll.PayrollAdjustment, error) {
	var result []payroll.PayrollAdjustment
	for _, a := range r.adjustments {
		if !a.PaymentDate.Before(from) && !a.PaymentDate.After(to) {
			result = append(result, a)
		}
	}
	return result, nil
}

type memTimesheetRepo struct {
	timesheets []timesheet.Timesheet
	nextID     int
}

func (r *memTimesheetRepo) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	r.nextID++
	ts.ID = fmt.Sprintf("ts-%d", r.nextID)
	r.timesheets = append(r.timesheets, ts)
	return ts, nil
}

func (r *memTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	for _, ts := range r.timesheets {
		if ts.ID == id {
			return ts, nil
		}
	}
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (r *memTimesheetRepo) Update(ctx context.Context, ts timesheet.Timesheet) error { return nil }

func (r *memTimesheetRepo) ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (r *memTimesheetRepo) ListByStatus(ctx context.Context, status timesheet.Status) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (r *memTimesheetRepo) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]timesheet.Timesheet, error) {
	var result []timesheet.Timesheet
	for _, ts := range r.timesheets {
		if ts.Status == timesheet.StatusApproved && !ts.Date.Before(from) && !ts.Date.After(to) {
			result = append(result, ts)
		}
	}
	return result, nil
}

type memStaffRepo struct {
	members map[string]staff.Staff
}

func (r *memStaffRepo) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	r.members[member.ID] = member
	return member, nil
}

func (r *memStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	member, ok := r.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return member, nil
}

func (r *memStaffRepo) Update(ctx context.Context, member staff.Staff) error { return nil }

func (r *memStaffRepo) List(ctx context.Context, includeInactive bool) ([]staff.Staff, error) {
	return nil, nil
}

func (r *memStaffRepo) ListAssignable(ctx context.Context) ([]staff.Staff, error) {
	return nil, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func clockPtr(date string, h, m int) *time.Time {
	d := day(date)
	t := time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, time.UTC)
	return &t
}

type fixture struct {
	adjustmentRepo *memAdjustmentRepo
	timesheetRepo  *memTimesheetRepo
	staffRepo      *memStaffRepo
	svc            payroll.PayrollService
}

func newFixture() *fixture {
	f := &fixture{
		adjustmentRepo: &memAdjustmentRepo{},
		timesheetRepo:  &memTimesheetRepo{},
		staffRepo: &memStaffRepo{members: map[string]staff.Staff{
			"staff-1": {
				ID:         "staff-1",
				FullName:   "Jo Bramley",
				StaffType:  staff.StaffTypePermanent,
				HourlyRate: decPtr("15"),
				IsActive:   true,
			},
			"staff-2": {
				ID:        "staff-2",
				FullName:  "Sam Field",
				StaffType: staff.StaffTypeCasual,
				IsActive:  true,
			},
		}},
	}
	f.svc = NewPayrollService(f.adjustmentRepo, f.timesheetRepo, f.staffRepo)
	return f
}

// addApprovedTimesheet records an approved 08:00-16:00 day with the given
// break, on the given date.
func (f *fixture) addApprovedTimesheet(staffID, date string, breakMinutes int) {
	d := day(date)
	f.timesheetRepo.timesheets = append(f.timesheetRepo.timesheets, timesheet.Timesheet{
		ID:           fmt.Sprintf("ts-%d", len(f.timesheetRepo.timesheets)+1),
		StaffID:      staffID,
		Date:         d,
		ClockIn:      time.Date(d.Year(), d.Month(), d.Day(), 8, 0, 0, 0, time.UTC),
		ClockOut:     clockPtr(date, 16, 0),
		BreakMinutes: breakMinutes,
		WorkType:     "regular",
		Status:       timesheet.StatusApproved,
	})
}

func weekRequest(week int) payroll.SummaryRequest {
	return payroll.SummaryRequest{PeriodType: "week", Year: 2026, Week: &week}
}

func TestCreateAdjustmentTaxability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tip, err := f.svc.CreateAdjustment(ctx, payroll.CreateAdjustmentRequest{
		StaffID:     "staff-1",
		Type:        "tip",
		Amount:      decimal.NewFromInt(30),
		Description: "clinic tips",
		PaymentDate: "2026-08-26",
	})
	require.NoError(t, err)
	assert.False(t, tip.Taxable)

	// Tips stay non-taxable even when the flag says otherwise.
	taxable := true
	tip, err = f.svc.CreateAdjustment(ctx, payroll.CreateAdjustmentRequest{
		StaffID:     "staff-1",
		Type:        "tip",
		Amount:      decimal.NewFromInt(10),
		Description: "more tips",
		PaymentDate: "2026-08-26",
		Taxable:     &taxable,
	})
	require.NoError(t, err)
	assert.False(t, tip.Taxable)

	bonus, err := f.svc.CreateAdjustment(ctx, payroll.CreateAdjustmentRequest{
		StaffID:     "staff-1",
		Type:        "bonus",
		Amount:      decimal.NewFromInt(50),
		Description: "season bonus",
		PaymentDate: "2026-08-26",
	})
	require.NoError(t, err)
	assert.True(t, bonus.Taxable)
}

func TestCreateAdjustmentUnknownStaff(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateAdjustment(context.Background(), payroll.CreateAdjustmentRequest{
		StaffID:     "nobody",
		Type:        "bonus",
		Amount:      decimal.NewFromInt(50),
		Description: "bonus",
		PaymentDate: "2026-08-26",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestWeeklySummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// ISO week 35 of 2026 runs 2026-08-24 to 2026-08-30.
	f.addApprovedTimesheet("staff-1", "2026-08-24", 30) // 7.5h
	f.addApprovedTimesheet("staff-1", "2026-08-25", 0)  // 8h
	f.addApprovedTimesheet("staff-1", "2026-08-31", 0)  // next week, excluded

	// Unapproved entries never reach payroll.
	f.timesheetRepo.timesheets = append(f.timesheetRepo.timesheets, timesheet.Timesheet{
		ID:       "ts-draft",
		StaffID:  "staff-1",
		Date:     day("2026-08-26"),
		ClockIn:  time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC),
		ClockOut: clockPtr("2026-08-26", 16, 0),
		Status:   timesheet.StatusSubmitted,
	})

	for _, a := range []struct {
		typ    string
		amount int64
	}{
		{"bonus", 50},
		{"adhoc", 20},
		{"tip", 30},
	} {
		_, err := f.svc.CreateAdjustment(ctx, payroll.CreateAdjustmentRequest{
			StaffID:     "staff-1",
			Type:        a.typ,
			Amount:      decimal.NewFromInt(a.amount),
			Description: a.typ,
			PaymentDate: "2026-08-26",
		})
		require.NoError(t, err)
	}

	summary, err := f.svc.ComputeSummary(ctx, weekRequest(35))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-24", summary.From)
	assert.Equal(t, "2026-08-30", summary.To)
	require.Len(t, summary.Staff, 1)

	row := summary.Staff[0]
	assert.Equal(t, "15.5", row.Hours.String())
	assert.True(t, row.RateAvailable)
	// 15.5h × 15/h
	assert.Equal(t, "232.5", row.BasePay.String())
	assert.Equal(t, "50", row.BonusTotal.String())
	assert.Equal(t, "20", row.AdhocTotal.String())
	assert.Equal(t, "30", row.TipsTotal.String())
	// Tips are excluded from taxable pay, included in the total.
	assert.Equal(t, "302.5", row.TaxablePay.String())
	assert.Equal(t, "332.5", row.TotalPay.String())

	assert.Equal(t, "332.5", summary.Totals.TotalPay.String())
}

func TestSummaryMissingRate(t *testing.T) {
	f := newFixture()

	f.addApprovedTimesheet("staff-2", "2026-08-24", 0) // 8h, no rate on file

	summary, err := f.svc.ComputeSummary(context.Background(), weekRequest(35))
	require.NoError(t, err)

	require.Len(t, summary.Staff, 1)
	row := summary.Staff[0]
	assert.Equal(t, "8", row.Hours.String())
	assert.False(t, row.RateAvailable)
	assert.Nil(t, row.HourlyRate)
	assert.True(t, row.BasePay.IsZero())
}

func TestMonthlySummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addApprovedTimesheet("staff-1", "2026-08-01", 0) // 8h
	f.addApprovedTimesheet("staff-1", "2026-08-31", 0) // 8h
	f.addApprovedTimesheet("staff-1", "2026-09-01", 0) // next month, excluded

	month := 8
	summary, err := f.svc.ComputeSummary(ctx, payroll.SummaryRequest{
		PeriodType: "month",
		Year:       2026,
		Month:      &month,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", summary.From)
	assert.Equal(t, "2026-08-31", summary.To)
	require.Len(t, summary.Staff, 1)
	assert.Equal(t, "16", summary.Staff[0].Hours.String())
}

func TestSummaryRowsSortedByName(t *testing.T) {
	f := newFixture()

	f.addApprovedTimesheet("staff-2", "2026-08-24", 0)
	f.addApprovedTimesheet("staff-1", "2026-08-24", 0)

	summary, err := f.svc.ComputeSummary(context.Background(), weekRequest(35))
	require.NoError(t, err)

	require.Len(t, summary.Staff, 2)
	assert.Equal(t, "Jo Bramley", summary.Staff[0].StaffName)
	assert.Equal(t, "Sam Field", summary.Staff[1].StaffName)
}

func TestSummaryValidation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ComputeSummary(context.Background(), payroll.SummaryRequest{
		PeriodType: "week",
		Year:       2026,
	})
	require.Error(t, err)

	week := 54
	_, err = f.svc.ComputeSummary(context.Background(), payroll.SummaryRequest{
		PeriodType: "week",
		Year:       2026,
		Week:       &week,
	})
	require.Error(t, err)
}
