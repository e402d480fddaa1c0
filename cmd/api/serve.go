package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/database"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/job"
	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Roadmap Dashboard",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.SafeAutoMigrate(db, logger); err != nil {
		return err
	}

	m := metrics.New()
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	stopStats := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(stopStats)

	rdb, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, idempotency keys disabled", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var publisher event.Publisher = event.NoopPublisher{}
	if cfg.MQ.URL != "" {
		amqpPublisher, err := event.NewAMQPPublisher(cfg.MQ.URL, cfg.MQ.Exchange, logger)
		if err != nil {
			logger.Warn("Message broker unavailable, domain events disabled", zap.Error(err))
		} else {
			publisher = amqpPublisher
		}
	}
	defer publisher.Close()

	services := router.NewServices(db, m, publisher, cfg.Dashboard.DefaultYear, logger)
	if err := services.Store.LoadYear(context.Background(), cfg.Dashboard.DefaultYear); err != nil {
		logger.Warn("Initial planning load failed, will load on first request", zap.Error(err))
	}

	scheduler := job.NewScheduler(logger)
	if cfg.Jobs.SummarySpec != "" {
		summaryJob := job.NewSummaryJob(services.Dashboard, 30*time.Second, logger)
		if err := scheduler.Register("summary", cfg.Jobs.SummarySpec, summaryJob); err != nil {
			return fmt.Errorf("invalid jobs.summary_spec %q: %w", cfg.Jobs.SummarySpec, err)
		}
		summaryJob.Run()
	}
	scheduler.Start()

	r := router.Setup(router.Config{
		DB:             db,
		Redis:          rdb,
		Logger:         logger,
		Metrics:        m,
		Gatherer:       prometheus.DefaultGatherer,
		Publisher:      publisher,
		Services:       services,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.CORSOrigins,
		DefaultYear:    cfg.Dashboard.DefaultYear,
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Roadmap Dashboard started",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	scheduler.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
	return nil
}
