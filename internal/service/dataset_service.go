package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

// DatasetService registers uploaded datasets and synthesizes cleaning
// summaries. Descriptors live in the cache with the default TTL.
type DatasetService struct {
	cache            ReportCache
	ttl              time.Duration
	supportedFormats []string
	logger           *zap.Logger
	rng              *rng
}

// NewDatasetService constructs the service.
func NewDatasetService(cache ReportCache, ttl time.Duration, supportedFormats []string, logger *zap.Logger, seed int64) *DatasetService {
	return &DatasetService{
		cache:            cache,
		ttl:              ttl,
		supportedFormats: supportedFormats,
		logger:           logger,
		rng:              newRNG(seed),
	}
}

// Dataset describes one uploaded file.
type Dataset struct {
	DatasetID  string    `json:"dataset_id"`
	Filename   string    `json:"filename"`
	Format     string    `json:"format"`
	SizeBytes  int64     `json:"size_bytes"`
	RowsEst    int       `json:"estimated_rows"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Register validates the file extension and stores a dataset descriptor.
func (s *DatasetService) Register(ctx context.Context, filename string, sizeBytes int64) (Dataset, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !s.formatSupported(format) {
		return Dataset{}, apperrors.NewValidationError(
			fmt.Sprintf("unsupported file format: %s", format),
			map[string]any{"supported": s.supportedFormats},
		)
	}

	dataset := Dataset{
		DatasetID:  "dataset_" + uuid.NewString(),
		Filename:   filename,
		Format:     format,
		SizeBytes:  sizeBytes,
		RowsEst:    int(sizeBytes/64) + 1,
		UploadedAt: time.Now(),
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, datasetCacheKey(dataset.DatasetID), dataset, s.ttl); err != nil {
			s.logger.Warn("failed to cache dataset descriptor",
				zap.String("dataset_id", dataset.DatasetID), zap.Error(err))
		}
	}

	return dataset, nil
}

// CleanResult is the response payload for data cleaning.
type CleanResult struct {
	DatasetID         string `json:"dataset_id,omitempty"`
	RowsBefore        int    `json:"rows_before"`
	RowsAfter         int    `json:"rows_after"`
	DroppedNulls      int    `json:"dropped_nulls"`
	DroppedDuplicates int    `json:"dropped_duplicates"`
	Message           string `json:"message"`
}

// Clean synthesizes a cleaning summary. When a dataset id is supplied it must
// refer to a registered dataset.
func (s *DatasetService) Clean(ctx context.Context, datasetID string) (CleanResult, error) {
	rowsBefore := s.rng.IntBetween(1000, 10000)

	if datasetID != "" && s.cache != nil {
		var dataset Dataset
		found, err := s.cache.GetJSON(ctx, datasetCacheKey(datasetID), &dataset)
		if err != nil {
			return CleanResult{}, apperrors.NewInternalError(err)
		}
		if !found {
			return CleanResult{}, apperrors.NewNotFound("dataset",
				map[string]any{"dataset_id": datasetID})
		}
		rowsBefore = dataset.RowsEst
	}

	droppedNulls := s.rng.Intn(rowsBefore/20 + 1)
	droppedDuplicates := s.rng.Intn(rowsBefore/50 + 1)

	return CleanResult{
		DatasetID:         datasetID,
		RowsBefore:        rowsBefore,
		RowsAfter:         rowsBefore - droppedNulls - droppedDuplicates,
		DroppedNulls:      droppedNulls,
		DroppedDuplicates: droppedDuplicates,
		Message:           "Data cleaning completed successfully",
	}, nil
}

func (s *DatasetService) formatSupported(format string) bool {
	for _, f := range s.supportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

func datasetCacheKey(datasetID string) string {
	return "datasets:" + datasetID
}
