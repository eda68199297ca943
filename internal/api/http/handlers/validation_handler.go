package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/analytics-service/internal/api/dto"
	"github.com/spec-kit/analytics-service/internal/service"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// ValidationHandler exposes data validation endpoints.
type ValidationHandler struct {
	validator *service.ValidationService
}

// NewValidationHandler constructs handler.
func NewValidationHandler(validator *service.ValidationService) *ValidationHandler {
	return &ValidationHandler{validator: validator}
}

// Quality handles POST /api/v1/validation/quality.
func (h *ValidationHandler) Quality(c *fiber.Ctx) error {
	var req dto.QualityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	return c.JSON(h.validator.CheckQuality(req.Columns, req.ValidationLevel))
}

// Schema handles POST /api/v1/validation/schema.
func (h *ValidationHandler) Schema(c *fiber.Ctx) error {
	var req dto.SchemaRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Schema) == 0 {
		return apperrors.NewValidationError("schema required", nil)
	}

	return c.JSON(h.validator.ValidateSchema(req.Records, req.Schema))
}
