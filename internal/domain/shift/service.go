package shift

import "context"

type ShiftService interface {
	// Toggle runs the cell-click state machine for one (staff, date, period)
	// cell. The delete-then-create merge and split steps execute as a single
	// logical operation: they fully succeed or leave the calendar unchanged.
	Toggle(ctx context.Context, req ToggleShiftRequest) (ShiftCellResult, error)
	List(ctx context.Context, filter ListShiftsFilter) ([]ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}
