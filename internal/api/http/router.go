package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/analytics-service/internal/api/http/handlers"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Metrics       *handlers.MetricsHandler
	Analysis      *handlers.AnalysisHandler
	Visualization *handlers.VisualizationHandler
	ML            *handlers.MLHandler
	Validation    *handlers.ValidationHandler
	Reports       *handlers.ReportsHandler
	Data          *handlers.DataHandler

	// MetricsGuard, when set, protects the JSON metrics surface. The
	// Prometheus scrape endpoint stays open for collectors.
	MetricsGuard fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)
	app.Get("/metrics", cfg.Metrics.Prometheus)

	v1 := app.Group("/api/v1")

	metricsGroup := v1.Group("/metrics")
	if cfg.MetricsGuard != nil {
		metricsGroup.Use(cfg.MetricsGuard)
	}
	metricsGroup.Get("/", cfg.Metrics.Query)
	metricsGroup.Get("/health", cfg.Metrics.Health)

	data := v1.Group("/data")
	data.Post("/upload", cfg.Data.Upload)
	data.Post("/clean", cfg.Data.Clean)

	analysis := v1.Group("/analysis")
	analysis.Post("/descriptive", cfg.Analysis.Descriptive)
	analysis.Post("/correlation", cfg.Analysis.Correlation)

	visualization := v1.Group("/visualization")
	visualization.Post("/chart", cfg.Visualization.GenerateChart)
	visualization.Post("/dashboard", cfg.Visualization.CreateDashboard)

	ml := v1.Group("/ml")
	ml.Post("/train", cfg.ML.Train)
	ml.Post("/predict", cfg.ML.Predict)

	validation := v1.Group("/validation")
	validation.Post("/quality", cfg.Validation.Quality)
	validation.Post("/schema", cfg.Validation.Schema)

	reports := v1.Group("/reports")
	reports.Post("/generate", cfg.Reports.Generate)
	reports.Post("/export", cfg.Reports.Export)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("endpoint", map[string]any{"path": c.Path()})
	})
}
