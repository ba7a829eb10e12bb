package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/nager"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	authService "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
	departmentService "github.com/staffhub/staffhub-backend-go/internal/service/department"
	employeeService "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	holidayService "github.com/staffhub/staffhub-backend-go/internal/service/holiday"
	publicHolidayService "github.com/staffhub/staffhub-backend-go/internal/service/publicholiday"
	settingsService "github.com/staffhub/staffhub-backend-go/internal/service/settings"
	timesheetService "github.com/staffhub/staffhub-backend-go/internal/service/timesheet"
	userService "github.com/staffhub/staffhub-backend-go/internal/service/user"
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
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	if err := database.SeedAdmin(ctx, db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	publicHolidayRepo := postgresql.NewPublicHolidayRepository(db, cfg.Holidays.Country)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	nagerClient := nager.NewClient(cfg.Holidays.BaseURL)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, employeeRepo, publicHolidayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timeEntryRepo, employeeRepo, settingsRepo)
	settingsSvc := settingsService.NewSettingsService(db, settingsRepo)
	publicHolidaySvc := publicHolidayService.NewPublicHolidayService(db, publicHolidayRepo, nagerClient, cfg.Holidays.Country)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(jwtService, authSvc),
		User:          appHTTP.NewUserHandler(userSvc),
		Department:    appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Holiday:       appHTTP.NewHolidayHandler(holidaySvc),
		Timesheet:     appHTTP.NewTimesheetHandler(timesheetSvc),
		Settings:      appHTTP.NewSettingsHandler(settingsSvc),
		PublicHoliday: appHTTP.NewPublicHolidayHandler(publicHolidaySvc),
		Dashboard:     appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
