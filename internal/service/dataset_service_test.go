package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

var testFormats = []string{"csv", "json", "xlsx", "xls", "parquet"}

func TestRegisterDataset(t *testing.T) {
	datasets := NewDatasetService(newTestCache(t), 5*time.Minute, testFormats, zap.NewNop(), 1)

	dataset, err := datasets.Register(context.Background(), "orders.csv", 4096)
	require.NoError(t, err)
	require.Equal(t, "csv", dataset.Format)
	require.Equal(t, int64(4096), dataset.SizeBytes)
	require.Greater(t, dataset.RowsEst, 0)
}

func TestRegisterRejectsUnsupportedFormat(t *testing.T) {
	datasets := NewDatasetService(newTestCache(t), 5*time.Minute, testFormats, zap.NewNop(), 1)

	_, err := datasets.Register(context.Background(), "orders.exe", 100)
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCleanReferencesRegisteredDataset(t *testing.T) {
	datasets := NewDatasetService(newTestCache(t), 5*time.Minute, testFormats, zap.NewNop(), 1)
	ctx := context.Background()

	dataset, err := datasets.Register(ctx, "orders.json", 64000)
	require.NoError(t, err)

	result, err := datasets.Clean(ctx, dataset.DatasetID)
	require.NoError(t, err)
	require.Equal(t, dataset.RowsEst, result.RowsBefore)
	require.Equal(t, result.RowsBefore-result.DroppedNulls-result.DroppedDuplicates, result.RowsAfter)

	_, err = datasets.Clean(ctx, "dataset_missing")
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
