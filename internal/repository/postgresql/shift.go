package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, staff_id, date, period, role, notes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.StaffID, s.Date, s.Period, s.Role, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, period, role, notes, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.StaffID, &s.Date, &s.Period, &s.Role, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, period, role, notes, created_at, updated_at
		FROM shifts
		WHERE staff_id = $1 AND date = $2
		ORDER BY period
	`

	rows, err := q.Query(ctx, query, staffID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShifts(rows)
}

func (r *shiftRepositoryImpl) ListRange(ctx context.Context, staffID *string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, period, role, notes, created_at, updated_at
		FROM shifts
		WHERE date >= $1 AND date <= $2
	`
	args := []any{from, to}
	if staffID != nil {
		query += " AND staff_id = $3"
		args = append(args, *staffID)
	}
	query += " ORDER BY date, staff_id, period"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShifts(rows)
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func scanShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.StaffID, &s.Date, &s.Period, &s.Role, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return shifts, nil
}
