package leave

import (
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateHolidayRequestRequest struct {
	StaffID       string          `json:"staff_id,omitempty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	DaysRequested decimal.Decimal `json:"days_requested"`
	LeaveType     string          `json:"leave_type"`
	Reason        string          `json:"reason"`

	ActorID        string `json:"-"`
	ActorIsManager bool   `json:"-"`

	parsedStart time.Time
	parsedEnd   time.Time
}

func (r *CreateHolidayRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	r.parsedStart = start

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	r.parsedEnd = end

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !r.DaysRequested.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "days_requested",
			Message: "days_requested must be greater than zero",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDates returns the validated start and end dates.
func (r *CreateHolidayRequestRequest) ParsedDates() (time.Time, time.Time) {
	return r.parsedStart, r.parsedEnd
}

type RejectHolidayRequestRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes,omitempty"`

	ActorID string `json:"-"`
}

type CancelHolidayRequestRequest struct {
	ID      string `json:"-"`
	ActorID string `json:"-"`
}

type RecordSickLeaveRequest struct {
	StaffID        string  `json:"staff_id"`
	Date           string  `json:"date"`
	Reason         string  `json:"reason"`
	ReportedTime   *string `json:"reported_time,omitempty"`
	ExpectedReturn *string `json:"expected_return,omitempty"`
	Notes          *string `json:"notes,omitempty"`

	parsedDate           time.Time
	parsedReportedTime   *time.Time
	parsedExpectedReturn *time.Time
}

func (r *RecordSickLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	r.parsedDate = date

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.ReportedTime != nil {
		clock, ok := validator.IsValidClock(*r.ReportedTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "reported_time",
				Message: "reported_time must be in HH:MM format",
			})
		} else {
			t := validator.CombineDateClock(date, clock)
			r.parsedReportedTime = &t
		}
	}

	if r.ExpectedReturn != nil {
		ret, ok := validator.IsValidDate(*r.ExpectedReturn)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_return",
				Message: "expected_return must be in YYYY-MM-DD format",
			})
		} else if ret.Before(date) {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_return",
				Message: "expected_return must not be before date",
			})
		} else {
			r.parsedExpectedReturn = &ret
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Parsed returns the validated date, reported time and expected return.
func (r *RecordSickLeaveRequest) Parsed() (time.Time, *time.Time, *time.Time) {
	return r.parsedDate, r.parsedReportedTime, r.parsedExpectedReturn
}

type CloseSickLeaveRequest struct {
	ID           string `json:"-"`
	ActualReturn string `json:"actual_return"`

	parsedActualReturn time.Time
}

func (r *CloseSickLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	ret, ok := validator.IsValidDate(r.ActualReturn)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_return",
			Message: "actual_return must be in YYYY-MM-DD format",
		})
	}
	r.parsedActualReturn = ret

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CloseSickLeaveRequest) ParsedActualReturn() time.Time {
	return r.parsedActualReturn
}

type HolidayRequestResponse struct {
	ID                     string          `json:"id"`
	StaffID                string          `json:"staff_id"`
	StartDate              string          `json:"start_date"`
	EndDate                string          `json:"end_date"`
	DaysRequested          decimal.Decimal `json:"days_requested"`
	LeaveType              string          `json:"leave_type"`
	Reason                 string          `json:"reason"`
	Status                 string          `json:"status"`
	ApprovalNotes          *string         `json:"approval_notes,omitempty"`
	ApprovedBy             *string         `json:"approved_by,omitempty"`
	CancelledAfterApproval bool            `json:"cancelled_after_approval,omitempty"`
}

func ToHolidayResponse(h HolidayRequest) HolidayRequestResponse {
	return HolidayRequestResponse{
		ID:                     h.ID,
		StaffID:                h.StaffID,
		StartDate:              h.StartDate.Format("2006-01-02"),
		EndDate:                h.EndDate.Format("2006-01-02"),
		DaysRequested:          h.DaysRequested,
		LeaveType:              h.LeaveType,
		Reason:                 h.Reason,
		Status:                 string(h.Status),
		ApprovalNotes:          h.ApprovalNotes,
		ApprovedBy:             h.ApprovedBy,
		CancelledAfterApproval: h.CancelledAfterApproval,
	}
}

func ToHolidayResponses(requests []HolidayRequest) []HolidayRequestResponse {
	responses := make([]HolidayRequestResponse, 0, len(requests))
	for _, h := range requests {
		responses = append(responses, ToHolidayResponse(h))
	}
	return responses
}

type SickLeaveResponse struct {
	ID             string  `json:"id"`
	StaffID        string  `json:"staff_id"`
	Date           string  `json:"date"`
	Reason         string  `json:"reason"`
	ReportedTime   *string `json:"reported_time,omitempty"`
	ExpectedReturn *string `json:"expected_return,omitempty"`
	ActualReturn   *string `json:"actual_return,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Open           bool    `json:"open"`
}

func ToSickLeaveResponse(s SickLeaveRecord) SickLeaveResponse {
	formatDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		str := t.Format("2006-01-02")
		return &str
	}
	formatClock := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		str := t.Format("15:04")
		return &str
	}

	return SickLeaveResponse{
		ID:             s.ID,
		StaffID:        s.StaffID,
		Date:           s.Date.Format("2006-01-02"),
		Reason:         s.Reason,
		ReportedTime:   formatClock(s.ReportedTime),
		ExpectedReturn: formatDate(s.ExpectedReturn),
		ActualReturn:   formatDate(s.ActualReturn),
		Notes:          s.Notes,
		Open:           s.Open(),
	}
}

func ToSickLeaveResponses(records []SickLeaveRecord) []SickLeaveResponse {
	responses := make([]SickLeaveResponse, 0, len(records))
	for _, s := range records {
		responses = append(responses, ToSickLeaveResponse(s))
	}
	return responses
}

type LeaveSummaryResponse struct {
	StaffID                string           `json:"staff_id"`
	Year                   int              `json:"year"`
	Entitlement            *decimal.Decimal `json:"entitlement"`
	Taken                  decimal.Decimal  `json:"taken"`
	Pending                decimal.Decimal  `json:"pending"`
	Remaining              *decimal.Decimal `json:"remaining"`
	UnplannedAbsencesCount int              `json:"unplanned_absences_count"`
}

func ToSummaryResponse(s LeaveSummary) LeaveSummaryResponse {
	return LeaveSummaryResponse(s)
}
