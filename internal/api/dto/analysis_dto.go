package dto

// DescriptiveRequest payload for descriptive analysis.
type DescriptiveRequest struct {
	Columns []string `json:"columns"`
}

// CorrelationRequest payload for correlation analysis.
type CorrelationRequest struct {
	Method                string   `json:"method"`
	Columns               []string `json:"columns"`
	SignificanceThreshold float64  `json:"significance_threshold"`
}
