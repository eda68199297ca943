package service

import (
	"fmt"
)

var qualityChecks = []string{"missing_values", "duplicates", "outliers", "type_consistency"}

// ValidationService performs data quality assessment and schema validation.
// Quality scores are synthesized demonstration output; schema validation is
// a real field-by-field type check.
type ValidationService struct {
	rng *rng
}

// NewValidationService constructs the service.
func NewValidationService(seed int64) *ValidationService {
	return &ValidationService{rng: newRNG(seed)}
}

// CheckResult is the outcome of one quality check on one column.
type CheckResult struct {
	Status string  `json:"status"`
	Score  float64 `json:"score"`
}

// QualityResult is the response payload for quality assessment.
type QualityResult struct {
	OverallScore    float64                           `json:"overall_quality_score"`
	Report          map[string]map[string]CheckResult `json:"quality_report"`
	Summary         map[string]any                    `json:"validation_summary"`
	Recommendations []string                          `json:"recommendations"`
	Message         string                            `json:"message"`
}

// CheckQuality synthesizes a per-column quality report with pass, warning and
// fail statuses plus an overall score.
func (s *ValidationService) CheckQuality(columns []string, level string) QualityResult {
	if len(columns) == 0 {
		columns = []string{"column1", "column2", "column3", "column4"}
	}
	if level == "" {
		level = "standard"
	}

	report := make(map[string]map[string]CheckResult, len(columns))
	var passed, warned, failed int
	var scoreSum float64
	var scoreCount int

	recommendations := make([]string, 0)
	for _, column := range columns {
		checks := make(map[string]CheckResult, len(qualityChecks))
		for _, check := range qualityChecks {
			score := round2(s.rng.Uniform(0.5, 1.0))
			status := "pass"
			switch {
			case score < 0.6:
				status = "fail"
				failed++
				recommendations = append(recommendations,
					fmt.Sprintf("Investigate %s issues in column %s", check, column))
			case score < 0.8:
				status = "warning"
				warned++
			default:
				passed++
			}
			checks[check] = CheckResult{Status: status, Score: score}
			scoreSum += score
			scoreCount++
		}
		report[column] = checks
	}

	return QualityResult{
		OverallScore: round2(scoreSum / float64(scoreCount)),
		Report:       report,
		Summary: map[string]any{
			"total_columns_assessed": len(columns),
			"validation_level":       level,
			"passed_checks":          passed,
			"warning_checks":         warned,
			"failed_checks":          failed,
		},
		Recommendations: recommendations,
		Message:         "Data quality assessment completed successfully",
	}
}

// SchemaViolation records one failed field check.
type SchemaViolation struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Value   any    `json:"value,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// SchemaResult is the response payload for schema validation.
type SchemaResult struct {
	Valid        bool              `json:"valid"`
	RowsChecked  int               `json:"rows_checked"`
	FieldsPerRow int               `json:"fields_per_row"`
	Violations   []SchemaViolation `json:"violations"`
	Message      string            `json:"message"`
}

// ValidateSchema checks each record's fields against the expected types.
// Supported type names: string, number, integer, boolean.
func (s *ValidationService) ValidateSchema(records []map[string]any, schema map[string]string) SchemaResult {
	violations := make([]SchemaViolation, 0)

	for i, record := range records {
		for field, expected := range schema {
			value, present := record[field]
			if !present {
				violations = append(violations, SchemaViolation{
					Row:     i,
					Field:   field,
					Reason:  "missing field",
					Missing: true,
				})
				continue
			}
			if !typeMatches(value, expected) {
				violations = append(violations, SchemaViolation{
					Row:    i,
					Field:  field,
					Reason: fmt.Sprintf("expected %s", expected),
					Value:  value,
				})
			}
		}
	}

	message := "Schema validation passed"
	if len(violations) > 0 {
		message = fmt.Sprintf("Schema validation found %d violations", len(violations))
	}

	return SchemaResult{
		Valid:        len(violations) == 0,
		RowsChecked:  len(records),
		FieldsPerRow: len(schema),
		Violations:   violations,
		Message:      message,
	}
}

func typeMatches(value any, expected string) bool {
	switch expected {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		_, ok := value.(float64)
		return ok
	case "integer":
		// JSON numbers decode as float64; integers must be whole.
		f, ok := value.(float64)
		return ok && f == float64(int64(f))
	case "boolean":
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
