package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/payroll"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/timesheet"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/timecalc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type payrollServiceImpl struct {
	adjustmentRepo payroll.AdjustmentRepository
	timesheetRepo  timesheet.TimesheetRepository
	staffRepo      staff.StaffRepository
}

func NewPayrollService(
	adjustmentRepo payroll.AdjustmentRepository,
	timesheetRepo timesheet.TimesheetRepository,
	staffRepo staff.StaffRepository,
) payroll.PayrollService {
	return &payrollServiceImpl{
		adjustmentRepo: adjustmentRepo,
		timesheetRepo:  timesheetRepo,
		staffRepo:      staffRepo,
	}
}

// CreateAdjustment implements payroll.PayrollService. Adjustments are
// immutable once created.
func (s *payrollServiceImpl) CreateAdjustment(ctx context.Context, req payroll.CreateAdjustmentRequest) (payroll.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	created, err := s.adjustmentRepo.Create(ctx, payroll.PayrollAdjustment{
		ID:          uuid.NewString(),
		StaffID:     req.StaffID,
		Type:        payroll.AdjustmentType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		PaymentDate: req.ParsedPaymentDate(),
		Taxable:     req.ResolveTaxable(),
	})
	if err != nil {
		return payroll.AdjustmentResponse{}, fmt.Errorf("failed to create payroll adjustment: %w", err)
	}

	return payroll.ToAdjustmentResponse(created), nil
}

// ListAdjustments implements payroll.PayrollService.
func (s *payrollServiceImpl) ListAdjustments(ctx context.Context, filter payroll.ListAdjustmentsFilter) ([]payroll.AdjustmentResponse, error) {
	adjustments, err := s.adjustmentRepo.ListByStaffRange(ctx, filter.StaffID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll adjustments: %w", err)
	}
	return payroll.ToAdjustmentResponses(adjustments), nil
}

// ComputeSummary implements payroll.PayrollService.
//
// Per staff: base_pay = approved timesheet hours × hourly rate, plus
// adjustments grouped by type. taxable_pay = base + bonus + adhoc; tips are
// excluded by definition. total_pay = taxable_pay + tips.
func (s *payrollServiceImpl) ComputeSummary(ctx context.Context, req payroll.SummaryRequest) (payroll.PayrollSummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSummary{}, err
	}

	var from, to time.Time
	if req.PeriodType == string(payroll.PeriodTypeWeek) {
		from, to = timecalc.ISOWeekRange(req.Year, *req.Week)
	} else {
		from, to = timecalc.MonthRange(req.Year, *req.Month)
	}

	summary := payroll.PayrollSummary{
		PeriodType: payroll.PeriodType(req.PeriodType),
		Year:       req.Year,
		Week:       req.Week,
		Month:      req.Month,
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
	}

	approved, err := s.timesheetRepo.ListApprovedInRange(ctx, from, to)
	if err != nil {
		return payroll.PayrollSummary{}, fmt.Errorf("failed to list approved timesheets: %w", err)
	}

	adjustments, err := s.adjustmentRepo.ListInRange(ctx, from, to)
	if err != nil {
		return payroll.PayrollSummary{}, fmt.Errorf("failed to list payroll adjustments: %w", err)
	}

	hoursByStaff := make(map[string]decimal.Decimal)
	for _, ts := range approved {
		if hours, ok := ts.WorkedHours(); ok {
			hoursByStaff[ts.StaffID] = hoursByStaff[ts.StaffID].Add(hours)
		}
	}

	adjustmentsByStaff := make(map[string][]payroll.PayrollAdjustment)
	for _, a := range adjustments {
		adjustmentsByStaff[a.StaffID] = append(adjustmentsByStaff[a.StaffID], a)
	}

	staffIDs := make(map[string]struct{})
	for id := range hoursByStaff {
		staffIDs[id] = struct{}{}
	}
	for id := range adjustmentsByStaff {
		staffIDs[id] = struct{}{}
	}

	rows := make([]payroll.StaffPayrollRow, 0, len(staffIDs))
	for id := range staffIDs {
		member, err := s.staffRepo.GetByID(ctx, id)
		if err != nil {
			return payroll.PayrollSummary{}, fmt.Errorf("failed to load staff member %s: %w", id, err)
		}

		row := payroll.StaffPayrollRow{
			StaffID:   id,
			StaffName: member.FullName,
			Hours:     hoursByStaff[id],
		}

		// A missing hourly rate makes base pay unattributable: report zero
		// with the rate shown as unavailable rather than guessing.
		if member.HourlyRate != nil {
			row.HourlyRate = member.HourlyRate
			row.RateAvailable = true
			row.BasePay = row.Hours.Mul(*member.HourlyRate)
		}

		for _, a := range adjustmentsByStaff[id] {
			switch a.Type {
			case payroll.AdjustmentTypeBonus:
				row.BonusTotal = row.BonusTotal.Add(a.Amount)
			case payroll.AdjustmentTypeAdhoc:
				row.AdhocTotal = row.AdhocTotal.Add(a.Amount)
			case payroll.AdjustmentTypeTip:
				row.TipsTotal = row.TipsTotal.Add(a.Amount)
			}
		}

		row.TaxablePay = row.BasePay.Add(row.BonusTotal).Add(row.AdhocTotal)
		row.TotalPay = row.TaxablePay.Add(row.TipsTotal)

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].StaffName < rows[j].StaffName })
	summary.Staff = rows

	for _, row := range rows {
		summary.Totals.Hours = summary.Totals.Hours.Add(row.Hours)
		summary.Totals.BasePay = summary.Totals.BasePay.Add(row.BasePay)
		summary.Totals.BonusTotal = summary.Totals.BonusTotal.Add(row.BonusTotal)
		summary.Totals.AdhocTotal = summary.Totals.AdhocTotal.Add(row.AdhocTotal)
		summary.Totals.TipsTotal = summary.Totals.TipsTotal.Add(row.TipsTotal)
		summary.Totals.TaxablePay = summary.Totals.TaxablePay.Add(row.TaxablePay)
		summary.Totals.TotalPay = summary.Totals.TotalPay.Add(row.TotalPay)
	}

	return summary, nil
}
