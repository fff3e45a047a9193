package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sickLeaveRepositoryImpl struct {
	db *database.DB
}

func NewSickLeaveRepository(db *database.DB) leave.SickLeaveRepository {
	return &sickLeaveRepositoryImpl{db: db}
}

const sickLeaveColumns = `
	id, staff_id, date, reason, reported_time, expected_return, actual_return,
	notes, created_at, updated_at
`

func (r *sickLeaveRepositoryImpl) Create(ctx context.Context, record leave.SickLeaveRecord) (leave.SickLeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sick_leave_records (
			id, staff_id, date, reason, reported_time, expected_return,
			notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.StaffID, record.Date, record.Reason,
		record.ReportedTime, record.ExpectedReturn, record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return leave.SickLeaveRecord{}, err
	}

	return record, nil
}

func (r *sickLeaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.SickLeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sickLeaveColumns + ` FROM sick_leave_records WHERE id = $1`

	var record leave.SickLeaveRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.StaffID, &record.Date, &record.Reason,
		&record.ReportedTime, &record.ExpectedReturn, &record.ActualReturn,
		&record.Notes, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.SickLeaveRecord{}, leave.ErrSickLeaveNotFound
		}
		return leave.SickLeaveRecord{}, err
	}

	return record, nil
}

func (r *sickLeaveRepositoryImpl) Update(ctx context.Context, record leave.SickLeaveRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sick_leave_records
		SET reason = $1, reported_time = $2, expected_return = $3,
			actual_return = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.Reason, record.ReportedTime, record.ExpectedReturn,
		record.ActualReturn, record.Notes, record.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrSickLeaveNotFound
		}
		return fmt.Errorf("failed to update sick leave record with id %s: %w", record.ID, err)
	}

	return nil
}

func (r *sickLeaveRepositoryImpl) ListByStaff(ctx context.Context, staffID string, year *int) ([]leave.SickLeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sickLeaveColumns + ` FROM sick_leave_records WHERE staff_id = $1`
	args := []any{staffID}
	if year != nil {
		query += ` AND EXTRACT(YEAR FROM date) = $2`
		args = append(args, *year)
	}
	query += ` ORDER BY date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSickLeaveRecords(rows)
}

// ListCovering returns records whose coverage window may touch [from, to].
// Coverage extends past the start date only while the record stays open, so
// the filter is deliberately wide; callers re-check per date with CoversDate.
func (r *sickLeaveRepositoryImpl) ListCovering(ctx context.Context, staffID *string, from, to time.Time) ([]leave.SickLeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sickLeaveColumns + `
		FROM sick_leave_records
		WHERE date <= $1
		  AND (date >= $2 OR (actual_return IS NULL AND expected_return >= $2))
	`
	args := []any{to, from}
	if staffID != nil {
		query += ` AND staff_id = $3`
		args = append(args, *staffID)
	}
	query += ` ORDER BY date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSickLeaveRecords(rows)
}

func (r *sickLeaveRepositoryImpl) CountByStaffYear(ctx context.Context, staffID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM sick_leave_records
		WHERE staff_id = $1 AND EXTRACT(YEAR FROM date) = $2
	`

	var count int
	if err := q.QueryRow(ctx, query, staffID, year).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func scanSickLeaveRecords(rows pgx.Rows) ([]leave.SickLeaveRecord, error) {
	var records []leave.SickLeaveRecord
	for rows.Next() {
		var record leave.SickLeaveRecord
		err := rows.Scan(
			&record.ID, &record.StaffID, &record.Date, &record.Reason,
			&record.ReportedTime, &record.ExpectedReturn, &record.ActualReturn,
			&record.Notes, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}
