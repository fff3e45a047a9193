package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdjustmentType string

const (
	AdjustmentTypeBonus AdjustmentType = "bonus"
	AdjustmentTypeAdhoc AdjustmentType = "adhoc"
	AdjustmentTypeTip   AdjustmentType = "tip"
)

var AdjustmentTypeValues = []string{
	string(AdjustmentTypeBonus),
	string(AdjustmentTypeAdhoc),
	string(AdjustmentTypeTip),
}

// PayrollAdjustment is a one-off payment outside base hourly pay. Immutable
// once created. Taxable defaults true except for tips, which are always
// non-taxable.
type PayrollAdjustment struct {
	ID          string
	StaffID     string
	Type        AdjustmentType
	Amount      decimal.Decimal
	Description string
	PaymentDate time.Time
	Taxable     bool
	CreatedAt   time.Time
}

type PeriodType string

const (
	PeriodTypeWeek  PeriodType = "week"
	PeriodTypeMonth PeriodType = "month"
)

// StaffPayrollRow is one staff member's totals over a reporting period.
// RateAvailable is false when no hourly rate is on file: base pay is then
// reported as zero, never guessed.
type StaffPayrollRow struct {
	StaffID       string           `json:"staff_id"`
	StaffName     string           `json:"staff_name"`
	Hours         decimal.Decimal  `json:"hours"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	RateAvailable bool             `json:"rate_available"`
	BasePay       decimal.Decimal  `json:"base_pay"`
	BonusTotal    decimal.Decimal  `json:"bonus_total"`
	AdhocTotal    decimal.Decimal  `json:"adhoc_total"`
	TipsTotal     decimal.Decimal  `json:"tips_total"`
	TaxablePay    decimal.Decimal  `json:"taxable_pay"`
	TotalPay      decimal.Decimal  `json:"total_pay"`
}

// OrganisationTotals is the sum of all staff rows.
type OrganisationTotals struct {
	Hours      decimal.Decimal `json:"hours"`
	BasePay    decimal.Decimal `json:"base_pay"`
	BonusTotal decimal.Decimal `json:"bonus_total"`
	AdhocTotal decimal.Decimal `json:"adhoc_total"`
	TipsTotal  decimal.Decimal `json:"tips_total"`
	TaxablePay decimal.Decimal `json:"taxable_pay"`
	TotalPay   decimal.Decimal `json:"total_pay"`
}

type PayrollSummary struct {
	PeriodType PeriodType         `json:"period_type"`
	Year       int                `json:"year"`
	Week       *int               `json:"week,omitempty"`
	Month      *int               `json:"month,omitempty"`
	From       string             `json:"from"`
	To         string             `json:"to"`
	Staff      []StaffPayrollRow  `json:"staff"`
	Totals     OrganisationTotals `json:"totals"`
}
