package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// SupportedChartTypes lists every chart kind the visualization endpoints
// accept.
var SupportedChartTypes = []string{
	"line", "bar", "scatter", "histogram", "box", "violin",
	"heatmap", "pie", "area", "bubble", "sunburst",
}

// ChartService synthesizes chart and dashboard payloads.
type ChartService struct {
	rng *rng
}

// NewChartService constructs the service.
func NewChartService(seed int64) *ChartService {
	return &ChartService{rng: newRNG(seed)}
}

// ChartResult is the response payload for chart generation.
type ChartResult struct {
	ChartType string         `json:"chart_type"`
	ChartData ChartData      `json:"chart_data"`
	Metadata  map[string]any `json:"metadata"`
	Message   string         `json:"message"`
}

// ChartData carries the synthesized series.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// GenerateChart validates the chart type and synthesizes a data series.
func (s *ChartService) GenerateChart(chartType string, dataPoints int) (ChartResult, error) {
	if chartType == "" {
		chartType = "bar"
	}
	if !chartTypeSupported(chartType) {
		return ChartResult{}, apperrors.NewValidationError(
			fmt.Sprintf("unsupported chart type: %s", chartType),
			map[string]any{"supported": SupportedChartTypes},
		)
	}
	if dataPoints <= 0 {
		dataPoints = 10
	}

	labels := make([]string, dataPoints)
	values := make([]float64, dataPoints)
	for i := 0; i < dataPoints; i++ {
		labels[i] = fmt.Sprintf("point_%d", i+1)
		values[i] = round2(s.rng.Uniform(0, 100))
	}

	return ChartResult{
		ChartType: chartType,
		ChartData: ChartData{Labels: labels, Values: values},
		Metadata: map[string]any{
			"generated_at": time.Now().Format(time.RFC3339),
			"data_points":  dataPoints,
		},
		Message: fmt.Sprintf("%s chart generated successfully", chartType),
	}, nil
}

// DashboardResult is the response payload for dashboard creation.
type DashboardResult struct {
	DashboardID     string         `json:"dashboard_id"`
	Panels          []ChartResult  `json:"panels"`
	Layout          map[string]any `json:"layout"`
	RefreshInterval int            `json:"refresh_interval_seconds"`
	Message         string         `json:"message"`
}

// CreateDashboard builds a dashboard out of one panel per requested chart
// type.
func (s *ChartService) CreateDashboard(chartTypes []string, refreshSeconds int) (DashboardResult, error) {
	if len(chartTypes) == 0 {
		chartTypes = []string{"line", "bar"}
	}
	if refreshSeconds <= 0 {
		refreshSeconds = 60
	}

	panels := make([]ChartResult, 0, len(chartTypes))
	for _, chartType := range chartTypes {
		panel, err := s.GenerateChart(chartType, 10)
		if err != nil {
			return DashboardResult{}, err
		}
		panels = append(panels, panel)
	}

	return DashboardResult{
		DashboardID: uuid.NewString(),
		Panels:      panels,
		Layout: map[string]any{
			"columns": 2,
			"rows":    (len(panels) + 1) / 2,
		},
		RefreshInterval: refreshSeconds,
		Message:         "Dashboard created successfully",
	}, nil
}

func chartTypeSupported(chartType string) bool {
	for _, t := range SupportedChartTypes {
		if t == chartType {
			return true
		}
	}
	return false
}
