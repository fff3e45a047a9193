package shift

import (
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
)

type ToggleShiftRequest struct {
	StaffID string  `json:"staff_id"`
	Date    string  `json:"date"`
	Period  string  `json:"period"`
	Role    string  `json:"role"`
	Notes   *string `json:"notes,omitempty"`

	// Parsed during validation
	ParsedDate time.Time `json:"-"`
}

func (r *ToggleShiftRequest) Validate() error {
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
	r.ParsedDate = date

	if !validator.IsInSlice(r.Period, TogglePeriodValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: morning, afternoon",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CellAction describes what a toggle did to the clicked cell.
type CellAction string

const (
	CellActionCreated CellAction = "created"
	CellActionCleared CellAction = "cleared"
	CellActionMerged  CellAction = "merged"
	CellActionSplit   CellAction = "split"
)

// ShiftCellResult is the outcome of one cell-click toggle: the action taken
// and the shifts now occupying the (staff, date) cell.
type ShiftCellResult struct {
	Action CellAction      `json:"action"`
	Shifts []ShiftResponse `json:"shifts"`
}

type ListShiftsFilter struct {
	StaffID *string
	From    time.Time
	To      time.Time
}

type ShiftResponse struct {
	ID      string  `json:"id"`
	StaffID string  `json:"staff_id"`
	Date    string  `json:"date"`
	Period  string  `json:"period"`
	Role    string  `json:"role"`
	Notes   *string `json:"notes,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:      s.ID,
		StaffID: s.StaffID,
		Date:    s.Date.Format("2006-01-02"),
		Period:  string(s.Period),
		Role:    s.Role,
		Notes:   s.Notes,
	}
}

func ToResponses(shifts []Shift) []ShiftResponse {
	responses := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		responses = append(responses, ToResponse(s))
	}
	return responses
}
