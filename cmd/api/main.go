package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/config"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/menu"
	appHTTP "github.com/cmlabs-hris/hris-console-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/migrations"
	"github.com/cmlabs-hris/hris-console-go/internal/repository/hrapi"
	"github.com/cmlabs-hris/hris-console-go/internal/repository/postgresql"
	approvalService "github.com/cmlabs-hris/hris-console-go/internal/service/approval"
	payrollService "github.com/cmlabs-hris/hris-console-go/internal/service/payroll"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	backendClient, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		return fmt.Errorf("backend client: %w", err)
	}

	table, err := menu.NewTable(menu.DefaultRoutes())
	if err != nil {
		return fmt.Errorf("route table: %w", err)
	}

	// Repositories
	overtimeRepo := hrapi.NewOvertimeRepository(backendClient, loc)
	attendanceRepo := hrapi.NewAttendanceRepository(backendClient, loc)
	payrollSourceRepo := hrapi.NewPayrollSourceRepository(backendClient, loc)
	historyRepo := postgresql.NewApprovalHistoryRepository(db)
	snapshotRepo := postgresql.NewPayrollSnapshotRepository(db)

	// Services
	overtimeSvc := approvalService.NewOvertimeService(overtimeRepo, historyRepo)
	attendanceSvc := approvalService.NewAttendanceService(attendanceRepo, historyRepo)
	historySvc := approvalService.NewHistoryService(historyRepo)
	payrollSvc := payrollService.NewPayrollService(payrollSourceRepo, snapshotRepo, loc, cfg.Payroll.FetchConcurrency)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	router := appHTTP.NewRouter(JWTService, table, appHTTP.Handlers{
		Menu:       appHTTP.NewMenuHandler(table),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		History:    appHTTP.NewHistoryHandler(historySvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
	})

	scheduler := cron.NewScheduler()
	cron.NewApprovalJobs(cfg.Cron.BoardIdleTTL, overtimeSvc, attendanceSvc).RegisterJobs(scheduler)
	if cfg.Cron.Enabled {
		cron.NewPayrollJobs(payrollSvc, cfg.Backend.ServiceToken).RegisterJobs(scheduler, cfg.Cron.Interval)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
