package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/analytics-service/internal/api/dto"
	"github.com/spec-kit/analytics-service/internal/service"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// AnalysisHandler exposes the statistical analysis endpoints.
type AnalysisHandler struct {
	stats *service.StatsService
}

// NewAnalysisHandler constructs handler.
func NewAnalysisHandler(stats *service.StatsService) *AnalysisHandler {
	return &AnalysisHandler{stats: stats}
}

// Descriptive handles POST /api/v1/analysis/descriptive.
func (h *AnalysisHandler) Descriptive(c *fiber.Ctx) error {
	var req dto.DescriptiveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	return c.JSON(h.stats.Descriptive(req.Columns))
}

// Correlation handles POST /api/v1/analysis/correlation.
func (h *AnalysisHandler) Correlation(c *fiber.Ctx) error {
	var req dto.CorrelationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.stats.Correlation(req.Method, req.Columns, req.SignificanceThreshold)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
