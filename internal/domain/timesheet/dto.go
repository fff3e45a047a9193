package timesheet

import (
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// clockFields is the shared validation for create and update payloads: parse
// the date, anchor every clock string onto it, and reject inverted ranges at
// input time rather than clamping them later.
type clockFields struct {
	date       time.Time
	clockIn    time.Time
	clockOut   *time.Time
	lunchStart *time.Time
	lunchEnd   *time.Time
}

func validateClockFields(dateStr, clockInStr string, clockOutStr, lunchStartStr, lunchEndStr *string, breakMinutes int, errs validator.ValidationErrors) (clockFields, validator.ValidationErrors) {
	var f clockFields

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
		return f, errs
	}
	f.date = date

	clockIn, ok := validator.IsValidClock(clockInStr)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM format",
		})
		return f, errs
	}
	f.clockIn = validator.CombineDateClock(date, clockIn)

	parseOptional := func(field string, value *string) *time.Time {
		if value == nil {
			return nil
		}
		clock, ok := validator.IsValidClock(*value)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
			return nil
		}
		t := validator.CombineDateClock(date, clock)
		return &t
	}

	f.clockOut = parseOptional("clock_out", clockOutStr)
	f.lunchStart = parseOptional("lunch_start", lunchStartStr)
	f.lunchEnd = parseOptional("lunch_end", lunchEndStr)

	if f.clockOut != nil && !f.clockOut.After(f.clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be after clock_in",
		})
	}

	if f.lunchStart != nil && f.lunchEnd != nil && !f.lunchEnd.After(*f.lunchStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_end",
			Message: "lunch_end must be after lunch_start",
		})
	}

	if (f.lunchStart == nil) != (f.lunchEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_start",
			Message: "lunch_start and lunch_end must be provided together",
		})
	}

	if breakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	return f, errs
}

type CreateTimesheetRequest struct {
	StaffID      string  `json:"staff_id,omitempty"`
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
	LunchStart   *string `json:"lunch_start,omitempty"`
	LunchEnd     *string `json:"lunch_end,omitempty"`
	BreakMinutes int     `json:"break_minutes"`
	WorkType     string  `json:"work_type"`
	Notes        *string `json:"notes,omitempty"`

	// Set by the handler from verified identity claims
	ActorID        string `json:"-"`
	ActorIsManager bool   `json:"-"`

	parsed clockFields
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	}

	r.parsed, errs = validateClockFields(r.Date, r.ClockIn, r.ClockOut, r.LunchStart, r.LunchEnd, r.BreakMinutes, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Parsed returns the validated, date-anchored clock values.
func (r *CreateTimesheetRequest) Parsed() (date, clockIn time.Time, clockOut, lunchStart, lunchEnd *time.Time) {
	return r.parsed.date, r.parsed.clockIn, r.parsed.clockOut, r.parsed.lunchStart, r.parsed.lunchEnd
}

type UpdateTimesheetRequest struct {
	ID           string  `json:"-"`
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
	LunchStart   *string `json:"lunch_start,omitempty"`
	LunchEnd     *string `json:"lunch_end,omitempty"`
	BreakMinutes int     `json:"break_minutes"`
	WorkType     string  `json:"work_type"`
	Notes        *string `json:"notes,omitempty"`

	ActorID        string `json:"-"`
	ActorIsManager bool   `json:"-"`

	parsed clockFields
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	}

	r.parsed, errs = validateClockFields(r.Date, r.ClockIn, r.ClockOut, r.LunchStart, r.LunchEnd, r.BreakMinutes, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateTimesheetRequest) Parsed() (date, clockIn time.Time, clockOut, lunchStart, lunchEnd *time.Time) {
	return r.parsed.date, r.parsed.clockIn, r.parsed.clockOut, r.parsed.lunchStart, r.parsed.lunchEnd
}

type RejectTimesheetRequest struct {
	ID     string  `json:"-"`
	Reason *string `json:"reason,omitempty"`

	ActorID string `json:"-"`
}

type ListTimesheetsFilter struct {
	StaffID string
	From    time.Time
	To      time.Time
}

type TimesheetResponse struct {
	ID              string           `json:"id"`
	StaffID         string           `json:"staff_id"`
	Date            string           `json:"date"`
	ClockIn         string           `json:"clock_in"`
	ClockOut        *string          `json:"clock_out,omitempty"`
	LunchStart      *string          `json:"lunch_start,omitempty"`
	LunchEnd        *string          `json:"lunch_end,omitempty"`
	BreakMinutes    int              `json:"break_minutes"`
	WorkType        string           `json:"work_type"`
	Notes           *string          `json:"notes,omitempty"`
	Status          string           `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	LoggedBy        string           `json:"logged_by"`
	Hours           *decimal.Decimal `json:"hours,omitempty"`
}

func ToResponse(t Timesheet) TimesheetResponse {
	formatClock := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("15:04")
		return &s
	}

	resp := TimesheetResponse{
		ID:              t.ID,
		StaffID:         t.StaffID,
		Date:            t.Date.Format("2006-01-02"),
		ClockIn:         t.ClockIn.Format("15:04"),
		ClockOut:        formatClock(t.ClockOut),
		LunchStart:      formatClock(t.LunchStart),
		LunchEnd:        formatClock(t.LunchEnd),
		BreakMinutes:    t.BreakMinutes,
		WorkType:        t.WorkType,
		Notes:           t.Notes,
		Status:          string(t.Status),
		RejectionReason: t.RejectionReason,
		LoggedBy:        t.LoggedBy,
	}

	if hours, ok := t.WorkedHours(); ok {
		resp.Hours = &hours
	}

	return resp
}

func ToResponses(timesheets []Timesheet) []TimesheetResponse {
	responses := make([]TimesheetResponse, 0, len(timesheets))
	for _, t := range timesheets {
		responses = append(responses, ToResponse(t))
	}
	return responses
}
