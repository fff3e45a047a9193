package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memHolidayRepo struct {
	requests map[string]leave.HolidayRequest
	nextID   int
}

func newMemHolidayRepo() *memHolidayRepo {
	return &memHolidayRepo{requests: make(map[string]leave.HolidayRequest)}
}

func (r *memHolidayRepo) Create(ctx context.Context, request leave.HolidayRequest) (leave.HolidayRequest, error) {
	r.nextID++
	request.ID = fmt.Sprintf("hr-%d", r.nextID)
	r.requests[request.ID] = request
	return request, nil
}

func (r *memHolidayRepo) GetByID(ctx context.Context, id string) (leave.HolidayRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.HolidayRequest{}, leave.ErrHolidayRequestNotFound
	}
	return request, nil
}

func (r *memHolidayRepo) Update(ctx context.Context, request leave.HolidayRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return leave.ErrHolidayRequestNotFound
	}
	r.requests[request.ID] = request
	return nil
}

func (r *memHolidayRepo) ListByStaff(ctx context.Context, staffID string, year *int) ([]leave.HolidayRequest, error) {
	var result []leave.HolidayRequest
	for _, request := range r.requests {
		if request.StaffID != staffID {
			continue
		}
		if year != nil && !request.IntersectsYear(*year) {
			continue
		}
		result = append(result, request)
	}
	return result, nil
}

func (r *memHolidayRepo) ListByStatus(ctx context.Context, status leave.HolidayRequestStatus) ([]leave.HolidayRequest, error) {
	var result []leave.HolidayRequest
	for _, request := range r.requests {
		if request.Status == status {
			result = append(result, request)
		}
	}
	return result, nil
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
	return r.ListByStaff(ctx, staffID, &year)
}

type memSickRepo struct {
	records map[string]leave.SickLeaveRecord
}

func newMemSickRepo() *memSickRepo {
	return &memSickRepo{records: make(map[string]leave.SickLeaveRecord)}
}

func (r *memSickRepo) Create(ctx context.Context, record leave.SickLeaveRecord) (leave.SickLeaveRecord, error) {
	r.records[record.ID] = record
	return record, nil
}

func (r *memSickRepo) GetByID(ctx context.Context, id string) (leave.SickLeaveRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return leave.SickLeaveRecord{}, leave.ErrSickLeaveNotFound
	}
	return record, nil
}

func (r *memSickRepo) Update(ctx context.Context, record leave.SickLeaveRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return leave.ErrSickLeaveNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *memSickRepo) ListByStaff(ctx context.Context, staffID string, year *int) ([]leave.SickLeaveRecord, error) {
	var result []leave.SickLeaveRecord
	for _, record := range r.records {
		if record.StaffID != staffID {
			continue
		}
		if year != nil && record.Date.Year() != *year {
			continue
		}
		result = append(result, record)
	}
	return result, nil
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
	records, _ := r.ListByStaff(ctx, staffID, &year)
	return len(records), nil
}

type memStaffRepo struct {
	members map[string]staff.Staff
}

func newMemStaffRepo(members ...staff.Staff) *memStaffRepo {
	repo := &memStaffRepo{members: make(map[string]staff.Staff)}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
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

func (r *memStaffRepo) Update(ctx context.Context, member staff.Staff) error {
	r.members[member.ID] = member
	return nil
}

func (r *memStaffRepo) List(ctx context.Context, includeInactive bool) ([]staff.Staff, error) {
	var result []staff.Staff
	for _, m := range r.members {
		if includeInactive || m.IsActive {
			result = append(result, m)
		}
	}
	return result, nil
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

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func permanentStaff() staff.Staff {
	return staff.Staff{
		ID:                     "staff-1",
		FullName:               "Jo Bramley",
		StaffType:              staff.StaffTypePermanent,
		AnnualLeaveEntitlement: decPtr("25"),
		HasYardAccess:          true,
		IsActive:               true,
	}
}

func newTestService(members ...staff.Staff) (leave.LeaveService, *memHolidayRepo, *memSickRepo) {
	holidayRepo := newMemHolidayRepo()
	sickRepo := newMemSickRepo()
	if len(members) == 0 {
		members = []staff.Staff{permanentStaff()}
	}
	return NewLeaveService(holidayRepo, sickRepo, newMemStaffRepo(members...)), holidayRepo, sickRepo
}

func holidayRequest(days string) leave.CreateHolidayRequestRequest {
	return leave.CreateHolidayRequestRequest{
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-05",
		DaysRequested: decimal.RequireFromString(days),
		LeaveType:     "annual",
		Reason:        "summer break",
		ActorID:       "staff-1",
	}
}

func TestCreateHolidayRequest(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateHolidayRequest(context.Background(), holidayRequest("5"))
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "staff-1", created.StaffID)
}

func TestCreateHolidayRequestRejectsInvertedRange(t *testing.T) {
	svc, _, _ := newTestService()

	req := holidayRequest("5")
	req.StartDate = "2026-06-05"
	req.EndDate = "2026-06-01"

	_, err := svc.CreateHolidayRequest(context.Background(), req)
	require.Error(t, err)
}

func TestApproveOnlyPending(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateHolidayRequest(ctx, holidayRequest("5"))
	require.NoError(t, err)

	approved, err := svc.ApproveHolidayRequest(ctx, created.ID, "manager-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager-1", *approved.ApprovedBy)

	_, err = svc.ApproveHolidayRequest(ctx, created.ID, "manager-1")
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	_, err = svc.RejectHolidayRequest(ctx, leave.RejectHolidayRequestRequest{ID: created.ID, ActorID: "manager-1"})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestCancelRules(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Only the owner cancels.
	created, err := svc.CreateHolidayRequest(ctx, holidayRequest("5"))
	require.NoError(t, err)
	_, err = svc.CancelHolidayRequest(ctx, leave.CancelHolidayRequestRequest{ID: created.ID, ActorID: "staff-2"})
	assert.ErrorIs(t, err, leave.ErrNotOwner)

	cancelled, err := svc.CancelHolidayRequest(ctx, leave.CancelHolidayRequestRequest{ID: created.ID, ActorID: "staff-1"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.False(t, cancelled.CancelledAfterApproval)

	// Cancelling after approval is allowed but flagged.
	second, err := svc.CreateHolidayRequest(ctx, holidayRequest("5"))
	require.NoError(t, err)
	_, err = svc.ApproveHolidayRequest(ctx, second.ID, "manager-1")
	require.NoError(t, err)
	cancelled, err = svc.CancelHolidayRequest(ctx, leave.CancelHolidayRequestRequest{ID: second.ID, ActorID: "staff-1"})
	require.NoError(t, err)
	assert.True(t, cancelled.CancelledAfterApproval)

	// Rejected requests cannot be cancelled.
	third, err := svc.CreateHolidayRequest(ctx, holidayRequest("5"))
	require.NoError(t, err)
	_, err = svc.RejectHolidayRequest(ctx, leave.RejectHolidayRequestRequest{ID: third.ID, ActorID: "manager-1"})
	require.NoError(t, err)
	_, err = svc.CancelHolidayRequest(ctx, leave.CancelHolidayRequestRequest{ID: third.ID, ActorID: "staff-1"})
	assert.ErrorIs(t, err, leave.ErrCancelNotAllowed)
}

func TestLeaveSummaryCanGoNegative(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// 20 days approved plus 8 pending against a 25-day entitlement.
	approved, err := svc.CreateHolidayRequest(ctx, holidayRequest("20"))
	require.NoError(t, err)
	_, err = svc.ApproveHolidayRequest(ctx, approved.ID, "manager-1")
	require.NoError(t, err)

	pending := holidayRequest("8")
	pending.StartDate = "2026-09-01"
	pending.EndDate = "2026-09-10"
	_, err = svc.CreateHolidayRequest(ctx, pending)
	require.NoError(t, err)

	summary, err := svc.ComputeLeaveSummary(ctx, "staff-1", 2026)
	require.NoError(t, err)

	assert.Equal(t, "20", summary.Taken.String())
	assert.Equal(t, "8", summary.Pending.String())
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, "-3", summary.Remaining.String())
}

func TestLeaveSummaryIgnoresRejectedAndCancelled(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	rejected, err := svc.CreateHolidayRequest(ctx, holidayRequest("5"))
	require.NoError(t, err)
	_, err = svc.RejectHolidayRequest(ctx, leave.RejectHolidayRequestRequest{ID: rejected.ID, ActorID: "manager-1"})
	require.NoError(t, err)

	cancelled, err := svc.CreateHolidayRequest(ctx, holidayRequest("3"))
	require.NoError(t, err)
	_, err = svc.CancelHolidayRequest(ctx, leave.CancelHolidayRequestRequest{ID: cancelled.ID, ActorID: "staff-1"})
	require.NoError(t, err)

	summary, err := svc.ComputeLeaveSummary(ctx, "staff-1", 2026)
	require.NoError(t, err)
	assert.True(t, summary.Taken.IsZero())
	assert.True(t, summary.Pending.IsZero())
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, "25", summary.Remaining.String())
}

func TestLeaveSummaryWithoutEntitlement(t *testing.T) {
	casual := staff.Staff{
		ID:        "staff-9",
		FullName:  "Casual Cover",
		StaffType: staff.StaffTypeCasual,
		IsActive:  true,
	}
	svc, _, _ := newTestService(casual)

	summary, err := svc.ComputeLeaveSummary(context.Background(), "staff-9", 2026)
	require.NoError(t, err)
	assert.Nil(t, summary.Entitlement)
	assert.Nil(t, summary.Remaining)
}

func TestSickLeaveLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.RecordSickLeave(ctx, leave.RecordSickLeaveRequest{
		StaffID:        "staff-1",
		Date:           "2026-08-24",
		Reason:         "flu",
		ReportedTime:   strPtr("07:45"),
		ExpectedReturn: strPtr("2026-08-27"),
	})
	require.NoError(t, err)
	assert.True(t, created.Open)

	closed, err := svc.CloseSickLeave(ctx, leave.CloseSickLeaveRequest{
		ID:           created.ID,
		ActualReturn: "2026-08-26",
	})
	require.NoError(t, err)
	assert.False(t, closed.Open)
	require.NotNil(t, closed.ActualReturn)
	assert.Equal(t, "2026-08-26", *closed.ActualReturn)

	_, err = svc.CloseSickLeave(ctx, leave.CloseSickLeaveRequest{
		ID:           created.ID,
		ActualReturn: "2026-08-27",
	})
	assert.ErrorIs(t, err, leave.ErrSickLeaveAlreadyClosed)
}

func TestSummaryCountsUnplannedAbsences(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, date := range []string{"2026-02-03", "2026-05-11"} {
		_, err := svc.RecordSickLeave(ctx, leave.RecordSickLeaveRequest{
			StaffID: "staff-1",
			Date:    date,
			Reason:  "unwell",
		})
		require.NoError(t, err)
	}

	summary, err := svc.ComputeLeaveSummary(ctx, "staff-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.UnplannedAbsencesCount)
}
