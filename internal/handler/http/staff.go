package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/staff"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAssignable(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created successfully", staff.ToResponse(created))
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")

	if err := h.staffService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated successfully", nil)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	member, err := h.staffService.GetByID(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.ToResponse(member))
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	members, err := h.staffService.List(r.Context(), includeInactive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// ListAssignable implements StaffHandler: the pool eligible for shifts.
func (h *StaffHandlerImpl) ListAssignable(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffService.ListAssignable(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}
