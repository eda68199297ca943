package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to service health probes.
type HealthHandler struct {
	serviceName string
	version     string
	environment string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version, environment string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, environment: environment}
}

// Check handles GET /health. With ?detailed=true it adds a per-service
// status map.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	response := fiber.Map{
		"status":      "healthy",
		"timestamp":   time.Now().Format(time.RFC3339),
		"service":     h.serviceName,
		"version":     h.version,
		"environment": h.environment,
	}

	if c.Query("detailed") == "true" {
		response["services"] = fiber.Map{
			"statistical_analyzer":  "healthy",
			"visualization_service": "healthy",
			"ml_predictor":          "healthy",
			"data_validator":        "healthy",
			"report_generator":      "healthy",
			"metrics_store":         "healthy",
		}
	}

	return c.JSON(response)
}
