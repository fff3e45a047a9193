package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/timesheet"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			id, staff_id, date, clock_in, clock_out, lunch_start, lunch_end,
			break_minutes, work_type, notes, status, logged_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ts.StaffID, ts.Date, ts.ClockIn, ts.ClockOut, ts.LunchStart, ts.LunchEnd,
		ts.BreakMinutes, ts.WorkType, ts.Notes, ts.Status, ts.LoggedBy,
	).Scan(&ts.ID, &ts.CreatedAt, &ts.UpdatedAt)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return ts, nil
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, clock_in, clock_out, lunch_start, lunch_end,
			   break_minutes, work_type, notes, status, rejection_reason, logged_by,
			   created_at, updated_at
		FROM timesheets
		WHERE id = $1
	`

	var ts timesheet.Timesheet
	err := q.QueryRow(ctx, query, id).Scan(
		&ts.ID, &ts.StaffID, &ts.Date, &ts.ClockIn, &ts.ClockOut, &ts.LunchStart, &ts.LunchEnd,
		&ts.BreakMinutes, &ts.WorkType, &ts.Notes, &ts.Status, &ts.RejectionReason, &ts.LoggedBy,
		&ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	return ts, nil
}

func (r *timesheetRepositoryImpl) Update(ctx context.Context, ts timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET date = $1, clock_in = $2, clock_out = $3, lunch_start = $4, lunch_end = $5,
			break_minutes = $6, work_type = $7, notes = $8, status = $9,
			rejection_reason = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		ts.Date, ts.ClockIn, ts.ClockOut, ts.LunchStart, ts.LunchEnd,
		ts.BreakMinutes, ts.WorkType, ts.Notes, ts.Status,
		ts.RejectionReason, ts.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to update timesheet with id %s: %w", ts.ID, err)
	}

	return nil
}

func (r *timesheetRepositoryImpl) ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, clock_in, clock_out, lunch_start, lunch_end,
			   break_minutes, work_type, notes, status, rejection_reason, logged_by,
			   created_at, updated_at
		FROM timesheets
		WHERE staff_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, clock_in
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTimesheets(rows)
}

func (r *timesheetRepositoryImpl) ListByStatus(ctx context.Context, status timesheet.Status) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, clock_in, clock_out, lunch_start, lunch_end,
			   break_minutes, work_type, notes, status, rejection_reason, logged_by,
			   created_at, updated_at
		FROM timesheets
		WHERE status = $1
		ORDER BY date, staff_id
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTimesheets(rows)
}

func (r *timesheetRepositoryImpl) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, clock_in, clock_out, lunch_start, lunch_end,
			   break_minutes, work_type, notes, status, rejection_reason, logged_by,
			   created_at, updated_at
		FROM timesheets
		WHERE status = 'approved' AND date >= $1 AND date <= $2
		ORDER BY staff_id, date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTimesheets(rows)
}

func scanTimesheets(rows pgx.Rows) ([]timesheet.Timesheet, error) {
	var timesheets []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		err := rows.Scan(
			&ts.ID, &ts.StaffID, &ts.Date, &ts.ClockIn, &ts.ClockOut, &ts.LunchStart, &ts.LunchEnd,
			&ts.BreakMinutes, &ts.WorkType, &ts.Notes, &ts.Status, &ts.RejectionReason, &ts.LoggedBy,
			&ts.CreatedAt, &ts.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return timesheets, nil
}
