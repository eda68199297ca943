package dto

// ChartRequest payload for chart generation.
type ChartRequest struct {
	ChartType  string `json:"chart_type"`
	DataPoints int    `json:"data_points"`
}

// DashboardRequest payload for dashboard creation.
type DashboardRequest struct {
	ChartTypes             []string `json:"chart_types"`
	RefreshIntervalSeconds int      `json:"refresh_interval_seconds"`
}
