package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/analytics-service/internal/api/dto"
	"github.com/spec-kit/analytics-service/internal/service"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// DataHandler exposes upload and cleaning endpoints.
type DataHandler struct {
	datasets  *service.DatasetService
	uploadDir string
	maxBytes  int64
	logger    *zap.Logger
}

// NewDataHandler constructs handler.
func NewDataHandler(datasets *service.DatasetService, uploadDir string, maxBytes int64, logger *zap.Logger) *DataHandler {
	return &DataHandler{datasets: datasets, uploadDir: uploadDir, maxBytes: maxBytes, logger: logger}
}

// Upload handles POST /api/v1/data/upload with a multipart "file" field.
func (h *DataHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file field required", nil)
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return apperrors.NewPayloadTooLarge("uploaded file is too large",
			map[string]any{"max_bytes": h.maxBytes, "size_bytes": file.Size})
	}

	dataset, err := h.datasets.Register(c.Context(), file.Filename, file.Size)
	if err != nil {
		return err
	}

	if h.uploadDir != "" {
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			return apperrors.NewInternalError(err)
		}
		dest := filepath.Join(h.uploadDir, dataset.DatasetID+"_"+filepath.Base(file.Filename))
		if err := c.SaveFile(file, dest); err != nil {
			h.logger.Error("failed to persist upload", zap.String("dest", dest), zap.Error(err))
			return apperrors.NewInternalError(err)
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"dataset": dataset,
		"message": "File uploaded and processed successfully",
	})
}

// Clean handles POST /api/v1/data/clean.
func (h *DataHandler) Clean(c *fiber.Ctx) error {
	var req dto.CleanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.datasets.Clean(c.Context(), req.DatasetID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
