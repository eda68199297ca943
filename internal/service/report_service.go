package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// ReportCache stores generated artifacts with a TTL. Satisfied by
// persistence.Redis.
type ReportCache interface {
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
}

// ReportTemplates maps report types to their display titles.
var ReportTemplates = map[string]string{
	"executive_summary": "Executive Summary Report",
	"detailed_analysis": "Detailed Analysis Report",
	"data_quality":      "Data Quality Report",
	"ml_performance":    "Machine Learning Performance Report",
	"custom":            "Custom Report",
}

// ExportFormats lists the accepted report export formats.
var ExportFormats = []string{"pdf", "html", "docx", "json", "csv"}

// ReportService generates demonstration reports and caches them for export.
type ReportService struct {
	cache     ReportCache
	retention time.Duration
	logger    *zap.Logger
	rng       *rng
}

// NewReportService constructs the service.
func NewReportService(cache ReportCache, retention time.Duration, logger *zap.Logger, seed int64) *ReportService {
	return &ReportService{
		cache:     cache,
		retention: retention,
		logger:    logger,
		rng:       newRNG(seed),
	}
}

// Report is a generated report with its metadata.
type Report struct {
	ReportID    string            `json:"report_id"`
	ReportType  string            `json:"report_type"`
	Title       string            `json:"title"`
	GeneratedAt time.Time         `json:"generated_at"`
	DateRange   DateRange         `json:"date_range"`
	Sections    map[string]string `json:"sections"`
	TotalPages  int               `json:"total_pages"`
	DataSources []string          `json:"data_sources"`
}

// DateRange bounds the reporting window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GenerateParams configure report generation.
type GenerateParams struct {
	ReportType  string
	Sections    []string
	DateRange   *DateRange
	DataSources []string
}

// Generate synthesizes a report and caches it under its report id so a later
// export call can pick it up.
func (s *ReportService) Generate(ctx context.Context, params GenerateParams) (Report, error) {
	if params.ReportType == "" {
		params.ReportType = "detailed_analysis"
	}
	title, ok := ReportTemplates[params.ReportType]
	if !ok {
		return Report{}, apperrors.NewValidationError(
			fmt.Sprintf("unsupported report type: %s", params.ReportType),
			map[string]any{"supported": reportTypeNames()},
		)
	}

	if len(params.Sections) == 0 {
		params.Sections = []string{"summary", "analysis", "visualizations", "recommendations"}
	}
	if params.DateRange == nil {
		now := time.Now()
		params.DateRange = &DateRange{
			Start: now.AddDate(0, 0, -30).Format(time.RFC3339),
			End:   now.Format(time.RFC3339),
		}
	}
	if len(params.DataSources) == 0 {
		params.DataSources = []string{"primary_dataset"}
	}

	sections := make(map[string]string, len(params.Sections))
	for _, section := range params.Sections {
		sections[section] = fmt.Sprintf(
			"%s: %d findings across %d data points",
			section, s.rng.IntBetween(3, 12), s.rng.IntBetween(500, 5000),
		)
	}

	report := Report{
		ReportID:    "report_" + uuid.NewString(),
		ReportType:  params.ReportType,
		Title:       title,
		GeneratedAt: time.Now(),
		DateRange:   *params.DateRange,
		Sections:    sections,
		TotalPages:  2 + len(sections)*3,
		DataSources: params.DataSources,
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, reportCacheKey(report.ReportID), report, s.retention); err != nil {
			s.logger.Warn("failed to cache report", zap.String("report_id", report.ReportID), zap.Error(err))
		}
	}

	return report, nil
}

// ExportResult is the response payload for report export.
type ExportResult struct {
	ReportID   string    `json:"report_id"`
	Format     string    `json:"format"`
	Filename   string    `json:"filename"`
	SizeBytes  int       `json:"size_bytes"`
	Content    string    `json:"content_base64"`
	ExportedAt time.Time `json:"exported_at"`
	Message    string    `json:"message"`
}

// Export renders a previously generated report in the requested format. The
// download payload is a stub, like the reference implementation's.
func (s *ReportService) Export(ctx context.Context, reportID, format string) (ExportResult, error) {
	if format == "" {
		format = "json"
	}
	if !exportFormatSupported(format) {
		return ExportResult{}, apperrors.NewValidationError(
			fmt.Sprintf("unsupported export format: %s", format),
			map[string]any{"supported": ExportFormats},
		)
	}

	var report Report
	if s.cache != nil && reportID != "" {
		found, err := s.cache.GetJSON(ctx, reportCacheKey(reportID), &report)
		if err != nil {
			return ExportResult{}, apperrors.NewInternalError(err)
		}
		if !found {
			return ExportResult{}, apperrors.NewNotFound("report",
				map[string]any{"report_id": reportID})
		}
	} else {
		return ExportResult{}, apperrors.NewValidationError("report_id required", nil)
	}

	stub := fmt.Sprintf("%s (%s) exported as %s", report.Title, report.ReportID, format)
	content := base64.StdEncoding.EncodeToString([]byte(stub))

	return ExportResult{
		ReportID:   report.ReportID,
		Format:     format,
		Filename:   fmt.Sprintf("%s.%s", report.ReportID, format),
		SizeBytes:  len(stub),
		Content:    content,
		ExportedAt: time.Now(),
		Message:    fmt.Sprintf("Report exported as %s successfully", format),
	}, nil
}

func reportCacheKey(reportID string) string {
	return "reports:" + reportID
}

func reportTypeNames() []string {
	names := make([]string, 0, len(ReportTemplates))
	for name := range ReportTemplates {
		names = append(names, name)
	}
	return names
}

func exportFormatSupported(format string) bool {
	for _, f := range ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
