package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth          AuthHandler
	User          UserHandler
	Department    DepartmentHandler
	Employee      EmployeeHandler
	Holiday       HolidayHandler
	Timesheet     TimesheetHandler
	Settings      SettingsHandler
	PublicHoliday PublicHolidayHandler
	Dashboard     DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub-backend"),
		slog.String("version", "v1.0.0"),
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
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
				})

				r.With(middleware.AdminOnly).Delete("/{id}", h.Department.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
				})

				r.With(middleware.AdminOnly).Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Create)
				r.Get("/summary/{employeeID}", h.Holiday.Summary)
				r.Get("/{id}", h.Holiday.Get)
				r.Put("/{id}", h.Holiday.Update)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Get("/", h.Timesheet.List)
				r.Post("/clock-in", h.Timesheet.ClockIn)
				r.Post("/clock-out", h.Timesheet.ClockOut)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Timesheet.CreateEntry)
					r.Delete("/{id}", h.Timesheet.Delete)
				})
			})

			r.Route("/public-holidays", func(r chi.Router) {
				r.Get("/", h.PublicHoliday.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.PublicHoliday.AddEntry)
					r.Post("/refresh", h.PublicHoliday.Refresh)
					r.Delete("/{date}", h.PublicHoliday.DeleteEntries)
				})
			})

			// Admin only
			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Settings.Get)
				r.Put("/", h.Settings.Update)
			})

			r.Get("/dashboard/stats", h.Dashboard.Stats)
			r.Get("/calendar", h.Holiday.Calendar)
		})
	})
	return r
}
