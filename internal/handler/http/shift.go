package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/shift"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Toggle implements ShiftHandler. One calendar cell click: create, clear,
// merge or split depending on what already occupies the cell.
func (h *ShiftHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	var req shift.ToggleShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Toggle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.Toggle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var staffID *string
	if v := r.URL.Query().Get("staff_id"); v != "" {
		staffID = &v
	}

	shifts, err := h.shiftService.List(r.Context(), shift.ListShiftsFilter{
		StaffID: staffID,
		From:    from,
		To:      to,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.shiftService.Delete(r.Context(), shiftID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}
