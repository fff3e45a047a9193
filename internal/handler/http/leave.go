package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/leave"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/token"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateHolidayRequest(w http.ResponseWriter, r *http.Request)
	ApproveHolidayRequest(w http.ResponseWriter, r *http.Request)
	RejectHolidayRequest(w http.ResponseWriter, r *http.Request)
	CancelHolidayRequest(w http.ResponseWriter, r *http.Request)
	ListHolidayRequests(w http.ResponseWriter, r *http.Request)
	ListPendingHolidayRequests(w http.ResponseWriter, r *http.Request)

	RecordSickLeave(w http.ResponseWriter, r *http.Request)
	CloseSickLeave(w http.ResponseWriter, r *http.Request)
	ListSickLeave(w http.ResponseWriter, r *http.Request)

	GetLeaveSummary(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	tokenService token.Service
}

func NewLeaveHandler(leaveService leave.LeaveService, tokenService token.Service) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		tokenService: tokenService,
	}
}

// CreateHolidayRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateHolidayRequest(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateHolidayRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHolidayRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ActorID = identity.StaffID
	req.ActorIsManager = identity.IsManager

	created, err := h.leaveService.CreateHolidayRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday request created successfully", created)
}

// ApproveHolidayRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveHolidayRequest(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.leaveService.ApproveHolidayRequest(r.Context(), chi.URLParam(r, "id"), identity.StaffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request approved successfully", approved)
}

// RejectHolidayRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectHolidayRequest(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.RejectHolidayRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectHolidayRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	req.ActorID = identity.StaffID

	rejected, err := h.leaveService.RejectHolidayRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request rejected", rejected)
}

// CancelHolidayRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelHolidayRequest(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cancelled, err := h.leaveService.CancelHolidayRequest(r.Context(), leave.CancelHolidayRequestRequest{
		ID:      chi.URLParam(r, "id"),
		ActorID: identity.StaffID,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request cancelled", cancelled)
}

// ListHolidayRequests implements LeaveHandler. Without an explicit staff_id
// the list is scoped to the acting user.
func (h *LeaveHandlerImpl) ListHolidayRequests(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := parseYearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		staffID = identity.StaffID
	}

	requests, err := h.leaveService.ListHolidayRequests(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPendingHolidayRequests implements LeaveHandler: the manager approval
// queue.
func (h *LeaveHandlerImpl) ListPendingHolidayRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPendingHolidayRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// RecordSickLeave implements LeaveHandler. Manager-only; the route enforces
// the role.
func (h *LeaveHandlerImpl) RecordSickLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.RecordSickLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordSickLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.RecordSickLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sick leave recorded successfully", created)
}

// CloseSickLeave implements LeaveHandler.
func (h *LeaveHandlerImpl) CloseSickLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CloseSickLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CloseSickLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")

	closed, err := h.leaveService.CloseSickLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sick leave closed", closed)
}

// ListSickLeave implements LeaveHandler.
func (h *LeaveHandlerImpl) ListSickLeave(w http.ResponseWriter, r *http.Request) {
	identity, err := h.tokenService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, err := parseYearParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		staffID = identity.StaffID
	}

	records, err := h.leaveService.ListSickLeave(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetLeaveSummary implements LeaveHandler: the derived yearly balance. The
// year defaults to the current one.
func (h *LeaveHandlerImpl) GetLeaveSummary(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			response.HandleError(w, validator.ValidationErrors{{
				Field:   "year",
				Message: "year must be a positive integer",
			}})
			return
		}
		year = parsed
	}

	summary, err := h.leaveService.ComputeLeaveSummary(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
