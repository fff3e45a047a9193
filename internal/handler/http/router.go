package http

import (
	"log/slog"
	"os"

	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/middleware"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/token"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Staff     StaffHandler
	Shift     ShiftHandler
	Timesheet TimesheetHandler
	Leave     LeaveHandler
	Calendar  CalendarHandler
	Payroll   PayrollHandler
	Lookup    LookupHandler
}

func NewRouter(tokenService token.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.AuthRequired(tokenService.JWTAuth()))

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.List)
				r.Get("/assignable", h.Staff.ListAssignable)
				r.Get("/{id}", h.Staff.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)

				// Manager only: the rota is maintained by managers
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/toggle", h.Shift.Toggle)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", h.Timesheet.List)
				r.Post("/", h.Timesheet.Create)
				r.Get("/{id}", h.Timesheet.Get)
				r.Put("/{id}", h.Timesheet.Update)
				r.Post("/{id}/submit", h.Timesheet.Submit)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/pending", h.Timesheet.ListPending)
					r.Post("/{id}/approve", h.Timesheet.Approve)
					r.Post("/{id}/reject", h.Timesheet.Reject)
				})
			})

			r.Route("/holiday-requests", func(r chi.Router) {
				r.Get("/", h.Leave.ListHolidayRequests)
				r.Post("/", h.Leave.CreateHolidayRequest)
				r.Post("/{id}/cancel", h.Leave.CancelHolidayRequest)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/pending", h.Leave.ListPendingHolidayRequests)
					r.Post("/{id}/approve", h.Leave.ApproveHolidayRequest)
					r.Post("/{id}/reject", h.Leave.RejectHolidayRequest)
				})
			})

			r.Route("/sick-leave", func(r chi.Router) {
				r.Get("/", h.Leave.ListSickLeave)

				// Manager only: unplanned absences are logged by managers
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Leave.RecordSickLeave)
					r.Post("/{id}/close", h.Leave.CloseSickLeave)
				})
			})

			r.Get("/leave-summary/{staffID}", h.Leave.GetLeaveSummary)

			r.Get("/calendar", h.Calendar.Range)

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Post("/adjustments", h.Payroll.CreateAdjustment)
				r.Get("/adjustments", h.Payroll.ListAdjustments)
				r.Get("/summary", h.Payroll.GetSummary)
			})

			r.Get("/lookups/{kind}", h.Lookup.List)
		})
	})
	return r
}
