package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/analytics-service/internal/metrics"
)

const prometheusContentType = "text/plain; charset=utf-8"

// MetricsHandler exposes the request metrics store over HTTP.
type MetricsHandler struct {
	store  *metrics.Store
	logger *zap.Logger
}

// NewMetricsHandler returns a new handler instance.
func NewMetricsHandler(store *metrics.Store, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{store: store, logger: logger}
}

// Query handles GET /api/v1/metrics. An optional ?endpoint= filter in the
// "METHOD:endpoint" form narrows the result to a single bucket; an unknown
// filter yields an empty object.
func (h *MetricsHandler) Query(c *fiber.Ctx) error {
	return c.JSON(h.store.Query(c.Query("endpoint")))
}

// Health handles GET /api/v1/metrics/health with the service-wide view.
func (h *MetricsHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.store.Health())
}

// Prometheus handles GET /metrics. Scrapers always get HTTP 200 text: an
// unexpected rendering fault degrades to a fallback line instead of an
// error response.
func (h *MetricsHandler) Prometheus(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("error generating prometheus metrics", zap.Any("panic", r))
			c.Set(fiber.HeaderContentType, prometheusContentType)
			err = c.SendString("# Error generating metrics\n")
		}
	}()

	text := h.store.RenderPrometheus()
	c.Set(fiber.HeaderContentType, prometheusContentType)
	return c.SendString(text)
}
