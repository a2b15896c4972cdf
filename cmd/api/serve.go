package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-tracker-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/employee"
	workdayService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/workday"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.SlogLevel()).With(
		slog.String("app", "attendance-tracker"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	configRepo := postgresql.NewWorkingDayConfigRepository(db)
	refreshTokenRepo := postgresql.NewJWTRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	hub := sse.NewHub()
	calculator := attendanceService.NewCalculator(loc)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	configSvc := workdayService.NewConfigService(configRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, configSvc, calculator, hub)
	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService, refreshTokenRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, attendanceRepo, configSvc, calculator)

	clock := appHTTP.Clock{Location: loc}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:            logger,
		AllowedOrigins:    cfg.App.CORSAllowedOrigins,
		JWTService:        JWTService,
		AuthHandler:       appHTTP.NewAuthHandler(JWTService, authSvc, employeeSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc, clock),
		WorkingDayHandler: appHTTP.NewWorkingDayHandler(configSvc, clock),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		DashboardHandler:  appHTTP.NewDashboardHandler(dashboardSvc, JWTService, hub, clock),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, cfg.StaleSessionMaxOpen(), cfg.Attendance.StaleSessionInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
