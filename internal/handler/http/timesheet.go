package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/timesheet"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/token"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	tokenService     token.Service
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, tokenService token.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
		tokenService:     tokenService,
	}
}

// Create implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ActorID = identity.StaffID
	req.ActorIsManager = identity.IsManager

	created, err := h.timesheetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created successfully", created)
}

// Update implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	req.ActorID = identity.StaffID
	req.ActorIsManager = identity.IsManager

	updated, err := h.timesheetService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Submit implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	submitted, err := h.timesheetService.Submit(r.Context(), chi.URLParam(r, "id"), identity.StaffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted successfully", submitted)
}

// Approve implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.timesheetService.Approve(r.Context(), chi.URLParam(r, "id"), identity.StaffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved successfully", approved)
}

// Reject implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.RejectTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	req.ActorID = identity.StaffID

	rejected, err := h.timesheetService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", rejected)
}

// Get implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	timesheetID := chi.URLParam(r, "id")
	if timesheetID == "" {
		response.BadRequest(w, "Timesheet ID is required", nil)
		return
	}

	ts, err := h.timesheetService.GetByID(r.Context(), timesheetID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ts)
}

// List implements TimesheetHandler. Without an explicit staff_id the list is
// scoped to the acting user.
func (h *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		staffID = identity.StaffID
	}

	timesheets, err := h.timesheetService.ListByStaff(r.Context(), timesheet.ListTimesheetsFilter{
		StaffID: staffID,
		From:    from,
		To:      to,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// ListPending implements TimesheetHandler: the manager approval queue.
func (h *TimesheetHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	timesheets, err := h.timesheetService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}
