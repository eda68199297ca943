package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptiveDefaultsColumns(t *testing.T) {
	stats := NewStatsService(1)

	result := stats.Descriptive(nil)
	require.Len(t, result.Statistics, 3)
	require.Equal(t, 3, result.Summary["total_columns_analyzed"])
}

func TestCorrelationMatrixIsSymmetric(t *testing.T) {
	stats := NewStatsService(1)

	result, err := stats.Correlation("pearson", []string{"a", "b", "c"}, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1.0, result.Matrix["a"]["a"])
	require.Equal(t, result.Matrix["a"]["b"], result.Matrix["b"]["a"])

	for _, pair := range result.SignificantCorrelations {
		require.GreaterOrEqual(t, abs(pair.Correlation), 0.5)
	}
}

func TestCorrelationRejectsUnknownMethod(t *testing.T) {
	stats := NewStatsService(1)

	_, err := stats.Correlation("covariance", nil, 0)
	require.Error(t, err)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
