package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/validator"
)

// parseDateRange reads the required from/to query parameters shared by the
// shift list, timesheet list and calendar endpoints.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.URL.Query().Get("from"))
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, okTo := validator.IsValidDate(r.URL.Query().Get("to"))
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	return from, to, nil
}

// parseYearParam reads an optional year query parameter.
func parseYearParam(r *http.Request) (*int, error) {
	v := r.URL.Query().Get("year")
	if v == "" {
		return nil, nil
	}

	year, err := strconv.Atoi(v)
	if err != nil || year <= 0 {
		return nil, validator.ValidationErrors{{
			Field:   "year",
			Message: "year must be a positive integer",
		}}
	}

	return &year, nil
}
