package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-review-scheduling/internal/config"
	"github.com/KasumiMercury/primind-review-scheduling/internal/handler"
	"github.com/KasumiMercury/primind-review-scheduling/internal/health"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/dispatchrecorder"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/learnerstore"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/notifier"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/repository"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/logging"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/middleware"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/dispatch"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/projector"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/scheduler"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	// Dispatch recorder (InfluxDB for local, BigQuery for gcloud)
	dispatchRecorder, err := dispatchrecorder.NewRecorder(ctx, dispatchrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize dispatch recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := dispatchRecorder.Close(); err != nil {
			slog.Warn("failed to close dispatch recorder", slog.String("error", err.Error()))
		}
	}()

	sinkClient := notifier.NewClient(cfg.NotificationSinkURL)

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	dbPool, err := learnerstore.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect learner database",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer dbPool.Close()

	slog.Info("learner database connected")

	learnerStore := learnerstore.NewWithPool(dbPool)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	scheduleRepo := repository.NewScheduleRepository(redisClient)

	projectorService := projector.NewService(learnerStore, scheduleRepo, scheduleMetrics)
	dispatchService := dispatch.NewService(taskQueue, scheduleRepo, scheduleMetrics)
	schedulerService := scheduler.NewService(
		learnerStore,
		projectorService,
		dispatchService,
		scheduler.SystemClock(),
		scheduler.Options{
			Horizon:          cfg.Scheduler.Horizon,
			MergeWindow:      cfg.Scheduler.MergeWindow,
			SweepParallelism: cfg.Scheduler.SweepParallelism,
		},
		scheduleMetrics,
	)

	recomputeHandler := handler.NewRecomputeHandler(schedulerService)
	upcomingHandler := handler.NewUpcomingHandler(scheduleRepo, cfg.Scheduler.UpcomingLimit)
	dispatchHandler := handler.NewDispatchHandler(sinkClient, scheduleRepo, dispatchRecorder, scheduleMetrics)
	sweepHandler := handler.NewSweepHandler(schedulerService)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("review-scheduling"),
		TracerName:  "github.com/KasumiMercury/primind-review-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, dbPool, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/recompute", recomputeHandler.HandleRecompute)
		v1.GET("/users/:user_id/upcoming", upcomingHandler.HandleUpcoming)
		v1.POST("/dispatch/execute", dispatchHandler.HandleDispatchExecute)
		v1.POST("/sweep", sweepHandler.HandleSweep)
	}

	go schedulerService.RunPeriodicSweep(ctx, cfg.Scheduler.SweepInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("horizon", cfg.Scheduler.Horizon),
			slog.Duration("merge_window", cfg.Scheduler.MergeWindow),
			slog.Duration("sweep_interval", cfg.Scheduler.SweepInterval),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			return 1
		}
		return 0
	}
}
