package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/analytics-service/internal/api/dto"
	"github.com/spec-kit/analytics-service/internal/service"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// MLHandler exposes model training and prediction endpoints.
type MLHandler struct {
	models *service.ModelService
}

// NewMLHandler constructs handler.
func NewMLHandler(models *service.ModelService) *MLHandler {
	return &MLHandler{models: models}
}

// Train handles POST /api/v1/ml/train.
func (h *MLHandler) Train(c *fiber.Ctx) error {
	var req dto.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	info, err := h.models.Train(service.TrainParams{
		ModelType: req.ModelType,
		Algorithm: req.Algorithm,
		ModelName: req.ModelName,
		TestSize:  req.TestSize,
		CVFolds:   req.CVFolds,
		Samples:   req.NSamples,
		Features:  req.NFeatures,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"model":   info,
		"message": "Model trained successfully",
	})
}

// Predict handles POST /api/v1/ml/predict.
func (h *MLHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ModelName == "" {
		return apperrors.NewValidationError("model_name required", nil)
	}

	result, err := h.models.Predict(req.ModelName, len(req.Rows))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
