package dto

// DateRange bounds a reporting window.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GenerateReportRequest payload for report generation.
type GenerateReportRequest struct {
	ReportType      string     `json:"report_type"`
	IncludeSections []string   `json:"include_sections"`
	DateRange       *DateRange `json:"date_range"`
	DataSources     []string   `json:"data_sources"`
}

// ExportReportRequest payload for report export.
type ExportReportRequest struct {
	ReportID string `json:"report_id"`
	Format   string `json:"format"`
}
