package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRequestRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRequestRepository(db *database.DB) leave.HolidayRequestRepository {
	return &holidayRequestRepositoryImpl{db: db}
}

const holidayRequestColumns = `
	id, staff_id, start_date, end_date, days_requested, leave_type, reason,
	status, approval_notes, approved_by, approved_at, cancelled_after_approval,
	created_at, updated_at
`

func (r *holidayRequestRepositoryImpl) Create(ctx context.Context, request leave.HolidayRequest) (leave.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (
			id, staff_id, start_date, end_date, days_requested, leave_type,
			reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.StaffID, request.StartDate, request.EndDate, request.DaysRequested,
		request.LeaveType, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.HolidayRequest{}, err
	}

	return request, nil
}

func (r *holidayRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayRequestColumns + ` FROM holiday_requests WHERE id = $1`

	var request leave.HolidayRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.StaffID, &request.StartDate, &request.EndDate,
		&request.DaysRequested, &request.LeaveType, &request.Reason,
		&request.Status, &request.ApprovalNotes, &request.ApprovedBy, &request.ApprovedAt,
		&request.CancelledAfterApproval, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.HolidayRequest{}, leave.ErrHolidayRequestNotFound
		}
		return leave.HolidayRequest{}, err
	}

	return request, nil
}

func (r *holidayRequestRepositoryImpl) Update(ctx context.Context, request leave.HolidayRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET status = $1, approval_notes = $2, approved_by = $3, approved_at = $4,
			cancelled_after_approval = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		request.Status, request.ApprovalNotes, request.ApprovedBy, request.ApprovedAt,
		request.CancelledAfterApproval, request.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrHolidayRequestNotFound
		}
		return fmt.Errorf("failed to update holiday request with id %s: %w", request.ID, err)
	}

	return nil
}

func (r *holidayRequestRepositoryImpl) ListByStaff(ctx context.Context, staffID string, year *int) ([]leave.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayRequestColumns + ` FROM holiday_requests WHERE staff_id = $1`
	args := []any{staffID}
	if year != nil {
		query += ` AND EXTRACT(YEAR FROM start_date) <= $2 AND EXTRACT(YEAR FROM end_date) >= $2`
		args = append(args, *year)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidayRequests(rows)
}

func (r *holidayRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.HolidayRequestStatus) ([]leave.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayRequestColumns + ` FROM holiday_requests WHERE status = $1 ORDER BY start_date`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidayRequests(rows)
}

func (r *holidayRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, staffID *string, from, to time.Time) ([]leave.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayRequestColumns + `
		FROM holiday_requests
		WHERE status = 'approved' AND start_date <= $1 AND end_date >= $2
	`
	args := []any{to, from}
	if staffID != nil {
		query += ` AND staff_id = $3`
		args = append(args, *staffID)
	}
	query += ` ORDER BY start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidayRequests(rows)
}

func (r *holidayRequestRepositoryImpl) ListIntersectingYear(ctx context.Context, staffID string, year int) ([]leave.HolidayRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayRequestColumns + `
		FROM holiday_requests
		WHERE staff_id = $1
		  AND EXTRACT(YEAR FROM start_date) <= $2
		  AND EXTRACT(YEAR FROM end_date) >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, staffID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidayRequests(rows)
}

func scanHolidayRequests(rows pgx.Rows) ([]leave.HolidayRequest, error) {
	var requests []leave.HolidayRequest
	for rows.Next() {
		var request leave.HolidayRequest
		err := rows.Scan(
			&request.ID, &request.StaffID, &request.StartDate, &request.EndDate,
			&request.DaysRequested, &request.LeaveType, &request.Reason,
			&request.Status, &request.ApprovalNotes, &request.ApprovedBy, &request.ApprovedAt,
			&request.CancelledAfterApproval, &request.CreatedAt, &request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}
