package postgresql

import (
	"context"
	"fmt"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

func (r *staffRepositoryImpl) Create(ctx context.Context, member staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (
			id, full_name, staff_type, hourly_rate, annual_leave_entitlement,
			has_yard_access, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		member.FullName, member.StaffType, member.HourlyRate, member.AnnualLeaveEntitlement,
		member.HasYardAccess, member.IsActive,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return staff.Staff{}, err
	}

	return member, nil
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, staff_type, hourly_rate, annual_leave_entitlement,
			   has_yard_access, is_active, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var member staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.FullName, &member.StaffType, &member.HourlyRate, &member.AnnualLeaveEntitlement,
		&member.HasYardAccess, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, err
	}

	return member, nil
}

func (r *staffRepositoryImpl) Update(ctx context.Context, member staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET full_name = $1, staff_type = $2, hourly_rate = $3,
			annual_leave_entitlement = $4, has_yard_access = $5, is_active = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		member.FullName, member.StaffType, member.HourlyRate,
		member.AnnualLeaveEntitlement, member.HasYardAccess, member.IsActive,
		member.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to update staff member with id %s: %w", member.ID, err)
	}

	return nil
}

func (r *staffRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, staff_type, hourly_rate, annual_leave_entitlement,
			   has_yard_access, is_active, created_at, updated_at
		FROM staff
	`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY full_name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

func (r *staffRepositoryImpl) ListAssignable(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, staff_type, hourly_rate, annual_leave_entitlement,
			   has_yard_access, is_active, created_at, updated_at
		FROM staff
		WHERE is_active = TRUE AND has_yard_access = TRUE
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

func scanStaff(rows pgx.Rows) ([]staff.Staff, error) {
	var members []staff.Staff
	for rows.Next() {
		var member staff.Staff
		err := rows.Scan(
			&member.ID, &member.FullName, &member.StaffType, &member.HourlyRate, &member.AnnualLeaveEntitlement,
			&member.HasYardAccess, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return members, nil
}
