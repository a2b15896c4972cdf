package http

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the handlers and cross-cutting settings of the API.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	JWTService        jwt.Service
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	WorkingDayHandler WorkingDayHandler
	EmployeeHandler   EmployeeHandler
	DashboardHandler  DashboardHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	ja := cfg.JWTService.JWTAuth()

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", cfg.AuthHandler.SignUp)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})

		// The live stream authenticates with a short-lived query token
		r.Get("/admin/live", cfg.DashboardHandler.Live)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(middleware.AuthRequired(ja))
			r.Use(chiMiddleware.AllowContentType("application/json"))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", cfg.AttendanceHandler.ClockIn)
				r.Post("/clock-out", cfg.AttendanceHandler.ClockOut)
				r.Get("/me/status", cfg.AttendanceHandler.GetMyStatus)
				r.Get("/me/stats", cfg.AttendanceHandler.GetMyStats)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", cfg.EmployeeHandler.GetMe)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Use(middleware.SelfOrAdmin)
					r.Get("/records", cfg.AttendanceHandler.GetEmployeeRecords)
					r.Get("/stats", cfg.AttendanceHandler.GetEmployeeStats)
					r.Get("/hours", cfg.AttendanceHandler.GetEmployeeHours)
				})
			})

			r.Route("/config", func(r chi.Router) {
				r.Get("/working-days", cfg.WorkingDayHandler.GetConfig)
				r.Get("/working-days/preview", cfg.WorkingDayHandler.PreviewMonth)
				r.Get("/custom-holidays", cfg.WorkingDayHandler.ListCustomHolidays)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/working-days", cfg.WorkingDayHandler.UpdateConfig)
					r.Put("/working-days/fixed-holidays", cfg.WorkingDayHandler.SetFixedHolidays)
					r.Put("/working-days/alternate-days", cfg.WorkingDayHandler.SetAlternateDays)
					r.Post("/custom-holidays", cfg.WorkingDayHandler.AddCustomHoliday)
					r.Delete("/custom-holidays/{date}", cfg.WorkingDayHandler.RemoveCustomHoliday)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/employees", cfg.EmployeeHandler.ListEmployees)
				r.Post("/employees", cfg.EmployeeHandler.CreateAdmin)
				r.Get("/stats", cfg.DashboardHandler.GetSystemStats)
				r.Get("/reports/monthly", cfg.DashboardHandler.GetMonthlyReport)
				r.Post("/live/token", cfg.DashboardHandler.GetLiveToken)
			})
		})
	})

	return r
}
