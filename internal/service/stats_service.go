package service

import (
	"fmt"
	"math"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

var correlationMethods = map[string]bool{
	"pearson":  true,
	"spearman": true,
	"kendall":  true,
}

// StatsService synthesizes descriptive and correlation analysis results.
// The numbers are demonstration output, not real computation.
type StatsService struct {
	rng *rng
}

// NewStatsService constructs the service. A non-zero seed makes output
// reproducible in tests.
func NewStatsService(seed int64) *StatsService {
	return &StatsService{rng: newRNG(seed)}
}

// ColumnStats holds synthesized descriptive statistics for one column.
type ColumnStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// DescriptiveResult is the response payload for descriptive analysis.
type DescriptiveResult struct {
	Statistics map[string]ColumnStats `json:"descriptive_statistics"`
	Summary    map[string]any         `json:"summary"`
	Message    string                 `json:"message"`
}

// Descriptive synthesizes per-column descriptive statistics.
func (s *StatsService) Descriptive(columns []string) DescriptiveResult {
	if len(columns) == 0 {
		columns = []string{"column1", "column2", "column3"}
	}

	stats := make(map[string]ColumnStats, len(columns))
	for _, column := range columns {
		stats[column] = ColumnStats{
			Count:    s.rng.IntBetween(900, 1000),
			Mean:     round2(50 + s.rng.Uniform(-15, 15)),
			Std:      round2(s.rng.Uniform(5, 20)),
			Min:      round2(s.rng.Uniform(0, 20)),
			Max:      round2(s.rng.Uniform(80, 100)),
			Median:   round2(s.rng.Uniform(40, 60)),
			Q1:       round2(s.rng.Uniform(30, 45)),
			Q3:       round2(s.rng.Uniform(55, 70)),
			Skewness: round3(s.rng.Uniform(-1, 1)),
			Kurtosis: round3(s.rng.Uniform(-2, 2)),
		}
	}

	return DescriptiveResult{
		Statistics: stats,
		Summary: map[string]any{
			"total_columns_analyzed": len(columns),
			"analysis_type":          "descriptive",
		},
		Message: "Descriptive analysis completed successfully",
	}
}

// CorrelationPair flags a correlation above the significance threshold.
type CorrelationPair struct {
	Column1     string  `json:"column1"`
	Column2     string  `json:"column2"`
	Correlation float64 `json:"correlation"`
}

// CorrelationResult is the response payload for correlation analysis.
type CorrelationResult struct {
	Method                  string                        `json:"method"`
	Matrix                  map[string]map[string]float64 `json:"correlation_matrix"`
	SignificantCorrelations []CorrelationPair             `json:"significant_correlations"`
	Message                 string                        `json:"message"`
}

// Correlation synthesizes a symmetric correlation matrix for the columns and
// lists the pairs whose absolute correlation exceeds the threshold.
func (s *StatsService) Correlation(method string, columns []string, threshold float64) (CorrelationResult, error) {
	if method == "" {
		method = "pearson"
	}
	if !correlationMethods[method] {
		return CorrelationResult{}, apperrors.NewValidationError(
			fmt.Sprintf("unsupported correlation method: %s", method),
			map[string]any{"supported": []string{"pearson", "spearman", "kendall"}},
		)
	}
	if len(columns) == 0 {
		columns = []string{"column1", "column2", "column3"}
	}
	if threshold <= 0 {
		threshold = 0.5
	}

	matrix := make(map[string]map[string]float64, len(columns))
	for i, col1 := range columns {
		matrix[col1] = make(map[string]float64, len(columns))
		for j, col2 := range columns {
			switch {
			case i == j:
				matrix[col1][col2] = 1.0
			case j < i:
				matrix[col1][col2] = matrix[col2][col1]
			default:
				matrix[col1][col2] = round3(s.rng.Uniform(-0.8, 0.8))
			}
		}
	}

	significant := make([]CorrelationPair, 0)
	for i, col1 := range columns {
		for _, col2 := range columns[i+1:] {
			if corr := matrix[col1][col2]; math.Abs(corr) >= threshold {
				significant = append(significant, CorrelationPair{
					Column1:     col1,
					Column2:     col2,
					Correlation: corr,
				})
			}
		}
	}

	return CorrelationResult{
		Method:                  method,
		Matrix:                  matrix,
		SignificantCorrelations: significant,
		Message:                 "Correlation analysis completed successfully",
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
