package http

import (
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/calendar"
	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Range(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// Range implements CalendarHandler: the reconciled per-day view. With a
// staff_id it covers one person; without, every assignable staff member.
func (h *CalendarHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var staffID *string
	if v := r.URL.Query().Get("staff_id"); v != "" {
		staffID = &v
	}

	entries, err := h.calendarService.Range(r.Context(), staffID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
