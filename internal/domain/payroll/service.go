package payroll

import "context"

type PayrollService interface {
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	ListAdjustments(ctx context.Context, filter ListAdjustmentsFilter) ([]AdjustmentResponse, error)
	ComputeSummary(ctx context.Context, req SummaryRequest) (PayrollSummary, error)
}
