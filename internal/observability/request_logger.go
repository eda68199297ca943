package observability

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/analytics-service/internal/metrics"
)

// RequestLogger measures every request and records its outcome in the metrics
// store. Registered outermost so that the status it observes is the one the
// error-mapping middleware finally wrote. The record call sits in a deferred
// block and therefore runs on panic unwinds as well.
func RequestLogger(logger *zap.Logger, store *metrics.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		defer func() {
			elapsed := time.Since(start)
			status := c.Response().StatusCode()
			// Fiber hands out strings aliased to fasthttp's reusable request
			// buffers; copy them before they outlive the request as map keys
			// in the store.
			method := strings.Clone(c.Method())
			path := strings.Clone(c.Path())

			store.Record(method, path, status, elapsed)

			logger.Debug("request completed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("elapsed", elapsed),
			)
		}()

		return c.Next()
	}
}
