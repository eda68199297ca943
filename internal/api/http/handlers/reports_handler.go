package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/analytics-service/internal/api/dto"
	"github.com/spec-kit/analytics-service/internal/service"
	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// ReportsHandler exposes report generation and export endpoints.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Generate handles POST /api/v1/reports/generate.
func (h *ReportsHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	params := service.GenerateParams{
		ReportType:  req.ReportType,
		Sections:    req.IncludeSections,
		DataSources: req.DataSources,
	}
	if req.DateRange != nil {
		params.DateRange = &service.DateRange{Start: req.DateRange.Start, End: req.DateRange.End}
	}

	report, err := h.reports.Generate(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"report":            report,
		"available_exports": service.ExportFormats,
		"message":           "Report generated successfully",
	})
}

// Export handles POST /api/v1/reports/export.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.reports.Export(c.Context(), req.ReportID, req.Format)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
