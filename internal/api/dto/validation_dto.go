package dto

// QualityRequest payload for data quality assessment.
type QualityRequest struct {
	Columns         []string `json:"columns"`
	ValidationLevel string   `json:"validation_level"`
}

// SchemaRequest payload for schema validation.
type SchemaRequest struct {
	Records []map[string]any  `json:"records"`
	Schema  map[string]string `json:"schema"`
}
