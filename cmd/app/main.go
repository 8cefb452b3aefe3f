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

	"courierapi/cmd"
	"courierapi/internal/adapters/in/admin"
	httpapi "courierapi/internal/adapters/in/http"
	"courierapi/internal/adapters/out/postgres"
	"courierapi/internal/jobs"
	"courierapi/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := cmd.LoadConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cmd.Config, logger *slog.Logger) error {
	dbOptions := postgres.DefaultOptions()
	dbOptions.LogLevel = cfg.GormLogLevel()

	db, err := postgres.Open(cfg.DSN(), dbOptions)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := cmd.NewCompositionRoot(cfg, db, reg)

	doc, err := httpapi.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	e, err := httpapi.NewEcho(app.HTTPHandlers(), httpapi.Options{
		Logger:    logger,
		LogLevel:  cfg.EchoLogLevel(),
		RateLimit: cfg.RateLimitRPS,
		BodyLimit: cfg.BodyLimit,
		Metrics:   metrics.NewHTTP(reg),
		OpenAPI:   doc,
	})
	if err != nil {
		return err
	}

	adminServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cfg.AdminPort),
		Handler:           admin.NewRouter(reg, admin.Config{User: cfg.AdminUser, Password: cfg.AdminPassword}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	jobManager := jobs.NewJobManager(app.CreateSweepAssignmentsCommandHandler(), cfg.AssignmentSweepSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	serveErr := make(chan error, 2)
	go func() {
		logger.Info("HTTP API listening", "port", cfg.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http api: %w", err)
		}
	}()
	go func() {
		logger.Info("Admin server listening", "port", cfg.AdminPort)
		if err := adminServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("admin server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := errors.Join(
		e.Shutdown(shutdownCtx),
		adminServer.Shutdown(shutdownCtx),
	)
	jobManager.StopAll()
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		shutdownErr = errors.Join(shutdownErr, sqlDB.Close())
	}

	return errors.Join(err, shutdownErr)
}
