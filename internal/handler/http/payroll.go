package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/payroll"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreateAdjustment implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.CreateAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll adjustment created successfully", created)
}

// ListAdjustments implements PayrollHandler.
func (h *PayrollHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	adjustments, err := h.payrollService.ListAdjustments(r.Context(), payroll.ListAdjustmentsFilter{
		StaffID: staffID,
		From:    from,
		To:      to,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, adjustments)
}

// GetSummary implements PayrollHandler. Query: period=week&year=2026&week=35,
// or period=month&year=2026&month=8.
func (h *PayrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := payroll.SummaryRequest{
		PeriodType: query.Get("period"),
	}
	req.Year, _ = strconv.Atoi(query.Get("year"))
	if v := query.Get("week"); v != "" {
		if week, err := strconv.Atoi(v); err == nil {
			req.Week = &week
		}
	}
	if v := query.Get("month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			req.Month = &month
		}
	}

	summary, err := h.payrollService.ComputeSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
