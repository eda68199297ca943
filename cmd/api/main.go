package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/analytics-service/internal/api/http/handlers"
	"github.com/spec-kit/analytics-service/internal/auth"
	"github.com/spec-kit/analytics-service/internal/config"
	"github.com/spec-kit/analytics-service/internal/metrics"
	"github.com/spec-kit/analytics-service/internal/observability"
	"github.com/spec-kit/analytics-service/internal/persistence"
	"github.com/spec-kit/analytics-service/internal/service"

	httptransport "github.com/spec-kit/analytics-service/internal/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	store := metrics.NewStore()

	statsService := service.NewStatsService(0)
	chartService := service.NewChartService(0)
	modelService := service.NewModelService(0)
	validationService := service.NewValidationService(0)
	reportService := service.NewReportService(redis, cfg.Cache.ReportRetention(), logger, 0)
	datasetService := service.NewDatasetService(redis, cfg.Cache.DefaultTTL(), cfg.Upload.SupportedFormats, logger, 0)

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Upload.MaxBytes,
	})
	httptransport.RegisterMiddlewares(app, logger, store, cfg.App.RequestTimeout())

	routeConfig := httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.Env),
		Metrics:       handlers.NewMetricsHandler(store, logger),
		Analysis:      handlers.NewAnalysisHandler(statsService),
		Visualization: handlers.NewVisualizationHandler(chartService),
		ML:            handlers.NewMLHandler(modelService),
		Validation:    handlers.NewValidationHandler(validationService),
		Reports:       handlers.NewReportsHandler(reportService),
		Data: handlers.NewDataHandler(datasetService, cfg.Upload.Dir,
			int64(cfg.Upload.MaxBytes), logger),
	}
	if cfg.Auth.MetricsAuthEnabled {
		tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours)
		routeConfig.MetricsGuard = auth.Guard(tokens, auth.ScopeMetrics)
	}
	httptransport.RegisterRoutes(app, routeConfig)

	logger.Info("application starting",
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version),
		zap.String("addr", cfg.App.Addr()),
	)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
