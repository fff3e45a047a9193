package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/payroll"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) payroll.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adjustment payroll.PayrollAdjustment) (payroll.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_adjustments (
			id, staff_id, type, amount, description, payment_date, taxable, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		adjustment.ID, adjustment.StaffID, adjustment.Type, adjustment.Amount,
		adjustment.Description, adjustment.PaymentDate, adjustment.Taxable,
	).Scan(&adjustment.CreatedAt)
	if err != nil {
		return payroll.PayrollAdjustment{}, err
	}

	return adjustment, nil
}

func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, type, amount, description, payment_date, taxable, created_at
		FROM payroll_adjustments
		WHERE id = $1
	`

	var adjustment payroll.PayrollAdjustment
	err := q.QueryRow(ctx, query, id).Scan(
		&adjustment.ID, &adjustment.StaffID, &adjustment.Type, &adjustment.Amount,
		&adjustment.Description, &adjustment.PaymentDate, &adjustment.Taxable, &adjustment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollAdjustment{}, payroll.ErrAdjustmentNotFound
		}
		return payroll.PayrollAdjustment{}, err
	}

	return adjustment, nil
}

func (r *adjustmentRepositoryImpl) ListByStaffRange(ctx context.Context, staffID string, from, to time.Time) ([]payroll.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, type, amount, description, payment_date, taxable, created_at
		FROM payroll_adjustments
		WHERE staff_id = $1 AND payment_date >= $2 AND payment_date <= $3
		ORDER BY payment_date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

func (r *adjustmentRepositoryImpl) ListInRange(ctx context.Context, from, to time.Time) ([]payroll.PayrollAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, type, amount, description, payment_date, taxable, created_at
		FROM payroll_adjustments
		WHERE payment_date >= $1 AND payment_date <= $2
		ORDER BY staff_id, payment_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

func scanAdjustments(rows pgx.Rows) ([]payroll.PayrollAdjustment, error) {
	var adjustments []payroll.PayrollAdjustment
	for rows.Next() {
		var adjustment payroll.PayrollAdjustment
		err := rows.Scan(
			&adjustment.ID, &adjustment.StaffID, &adjustment.Type, &adjustment.Amount,
			&adjustment.Description, &adjustment.PaymentDate, &adjustment.Taxable, &adjustment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adjustment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return adjustments, nil
}
