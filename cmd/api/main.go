package main

import (
	"fmt"
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/config"
	appHTTP "github.com/darrylcauldwell/workforce-backend-go/internal/handler/http"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/database"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/token"
	"github.com/darrylcauldwell/workforce-backend-go/internal/repository/postgresql"
	calendarService "github.com/darrylcauldwell/workforce-backend-go/internal/service/calendar"
	leaveService "github.com/darrylcauldwell/workforce-backend-go/internal/service/leave"
	lookupService "github.com/darrylcauldwell/workforce-backend-go/internal/service/lookup"
	payrollService "github.com/darrylcauldwell/workforce-backend-go/internal/service/payroll"
	shiftService "github.com/darrylcauldwell/workforce-backend-go/internal/service/shift"
	staffService "github.com/darrylcauldwell/workforce-backend-go/internal/service/staff"
	timesheetService "github.com/darrylcauldwell/workforce-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	holidayRepo := postgresql.NewHolidayRequestRepository(db)
	sickRepo := postgresql.NewSickLeaveRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)

	tokenService := token.NewService(cfg.JWT.Secret)

	calendarSvc := calendarService.NewCalendarService(shiftRepo, holidayRepo, sickRepo, staffRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, calendarSvc)
	staffSvc := staffService.NewStaffService(staffRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo)
	leaveSvc := leaveService.NewLeaveService(holidayRepo, sickRepo, staffRepo)
	payrollSvc := payrollService.NewPayrollService(adjustmentRepo, timesheetRepo, staffRepo)
	lookupSvc := lookupService.NewLookupService()

	router := appHTTP.NewRouter(tokenService, appHTTP.Handlers{
		Staff:     appHTTP.NewStaffHandler(staffSvc),
		Shift:     appHTTP.NewShiftHandler(shiftSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc, tokenService),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc, tokenService),
		Calendar:  appHTTP.NewCalendarHandler(calendarSvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc),
		Lookup:    appHTTP.NewLookupHandler(lookupSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
