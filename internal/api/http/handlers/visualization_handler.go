package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/analytics-service/internal/api/dto"
	"github.com/spec-kit/analytics-service/internal/service"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// VisualizationHandler exposes chart and dashboard endpoints.
type VisualizationHandler struct {
	charts *service.ChartService
}

// NewVisualizationHandler constructs handler.
func NewVisualizationHandler(charts *service.ChartService) *VisualizationHandler {
	return &VisualizationHandler{charts: charts}
}

// GenerateChart handles POST /api/v1/visualization/chart.
func (h *VisualizationHandler) GenerateChart(c *fiber.Ctx) error {
	var req dto.ChartRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.charts.GenerateChart(req.ChartType, req.DataPoints)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// CreateDashboard handles POST /api/v1/visualization/dashboard.
func (h *VisualizationHandler) CreateDashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.charts.CreateDashboard(req.ChartTypes, req.RefreshIntervalSeconds)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
