package main

import (
	"fmt"
	"net/http"

	"github.com/relojcontrol/timeclock-backend-go/internal/config"
	appHTTP "github.com/relojcontrol/timeclock-backend-go/internal/handler/http"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/database"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/jwt"
	"github.com/relojcontrol/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/relojcontrol/timeclock-backend-go/internal/service/attendance"
	authService "github.com/relojcontrol/timeclock-backend-go/internal/service/auth"
	calendarService "github.com/relojcontrol/timeclock-backend-go/internal/service/calendar"
	employeeService "github.com/relojcontrol/timeclock-backend-go/internal/service/employee"
	justificationService "github.com/relojcontrol/timeclock-backend-go/internal/service/justification"
	parameterService "github.com/relojcontrol/timeclock-backend-go/internal/service/parameter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	parameterRepo := postgresql.NewParameterRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	permitTypeRepo := postgresql.NewPermitTypeRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calendarSvc := calendarService.NewService(holidayRepo)
	parameterSvc := parameterService.NewService(parameterRepo)
	attendanceSvc := attendanceService.NewService(punchRepo, employeeRepo, calendarSvc, parameterSvc)
	justificationSvc := justificationService.NewService(justificationRepo, permitTypeRepo, employeeRepo, attendanceSvc)
	employeeSvc := employeeService.NewService(employeeRepo)
	authSvc := authService.NewService(userRepo, jwtSvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(calendarSvc)
	parameterHandler := appHTTP.NewParameterHandler(parameterSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		attendanceHandler,
		employeeHandler,
		holidayHandler,
		parameterHandler,
		justificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
