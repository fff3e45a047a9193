package payroll

import (
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentRequest struct {
	StaffID     string          `json:"staff_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	PaymentDate string          `json:"payment_date"`
	Taxable     *bool           `json:"taxable,omitempty"`

	parsedPaymentDate time.Time
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, AdjustmentTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: bonus, adhoc, tip",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	date, ok := validator.IsValidDate(r.PaymentDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_date",
			Message: "payment_date must be in YYYY-MM-DD format",
		})
	}
	r.parsedPaymentDate = date

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreateAdjustmentRequest) ParsedPaymentDate() time.Time {
	return r.parsedPaymentDate
}

// ResolveTaxable applies the taxability default: true unless stated otherwise,
// and tips are always non-taxable regardless of the flag supplied.
func (r *CreateAdjustmentRequest) ResolveTaxable() bool {
	if AdjustmentType(r.Type) == AdjustmentTypeTip {
		return false
	}
	if r.Taxable != nil {
		return *r.Taxable
	}
	return true
}

type ListAdjustmentsFilter struct {
	StaffID string
	From    time.Time
	To      time.Time
}

type SummaryRequest struct {
	PeriodType string `json:"period"`
	Year       int    `json:"year"`
	Week       *int   `json:"week,omitempty"`
	Month      *int   `json:"month,omitempty"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodType != string(PeriodTypeWeek) && r.PeriodType != string(PeriodTypeMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: week, month",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if r.PeriodType == string(PeriodTypeWeek) {
		if r.Week == nil || *r.Week < 1 || *r.Week > 53 {
			errs = append(errs, validator.ValidationError{
				Field:   "week",
				Message: "week must be between 1 and 53",
			})
		}
	}

	if r.PeriodType == string(PeriodTypeMonth) {
		if r.Month == nil || *r.Month < 1 || *r.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdjustmentResponse struct {
	ID          string          `json:"id"`
	StaffID     string          `json:"staff_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	PaymentDate string          `json:"payment_date"`
	Taxable     bool            `json:"taxable"`
}

func ToAdjustmentResponse(a PayrollAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:          a.ID,
		StaffID:     a.StaffID,
		Type:        string(a.Type),
		Amount:      a.Amount,
		Description: a.Description,
		PaymentDate: a.PaymentDate.Format("2006-01-02"),
		Taxable:     a.Taxable,
	}
}

func ToAdjustmentResponses(adjustments []PayrollAdjustment) []AdjustmentResponse {
	responses := make([]AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, ToAdjustmentResponse(a))
	}
	return responses
}
