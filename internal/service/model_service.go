package service

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/analytics-service/pkg/util"
)

var (
	classificationAlgorithms = map[string]bool{
		"random_forest":       true,
		"logistic_regression": true,
		"svm":                 true,
	}
	regressionAlgorithms = map[string]bool{
		"random_forest":     true,
		"linear_regression": true,
		"svm":               true,
	}
)

// ModelService simulates training and prediction. Trained model metadata is
// held in memory for the process lifetime, like the reference service.
type ModelService struct {
	mu     sync.RWMutex
	models map[string]ModelInfo
	rng    *rng
}

// NewModelService constructs the service.
func NewModelService(seed int64) *ModelService {
	return &ModelService{
		models: make(map[string]ModelInfo),
		rng:    newRNG(seed),
	}
}

// ModelInfo describes a trained model.
type ModelInfo struct {
	Name      string         `json:"model_name"`
	ModelType string         `json:"model_type"`
	Algorithm string         `json:"algorithm"`
	TrainedAt time.Time      `json:"trained_at"`
	Samples   int            `json:"n_samples"`
	Features  int            `json:"n_features"`
	Metrics   map[string]any `json:"metrics"`
}

// TrainParams configure a training run.
type TrainParams struct {
	ModelType string
	Algorithm string
	ModelName string
	TestSize  float64
	CVFolds   int
	Samples   int
	Features  int
}

// Train validates the requested algorithm, synthesizes evaluation metrics,
// and registers the model for later predictions.
func (s *ModelService) Train(params TrainParams) (ModelInfo, error) {
	if params.ModelType == "" {
		params.ModelType = "classification"
	}
	if params.Algorithm == "" {
		params.Algorithm = "random_forest"
	}

	switch params.ModelType {
	case "classification":
		if !classificationAlgorithms[params.Algorithm] {
			return ModelInfo{}, apperrors.NewValidationError(
				fmt.Sprintf("unsupported classification algorithm: %s", params.Algorithm), nil)
		}
	case "regression":
		if !regressionAlgorithms[params.Algorithm] {
			return ModelInfo{}, apperrors.NewValidationError(
				fmt.Sprintf("unsupported regression algorithm: %s", params.Algorithm), nil)
		}
	default:
		return ModelInfo{}, apperrors.NewValidationError(
			fmt.Sprintf("unsupported model type: %s", params.ModelType), nil)
	}

	if params.ModelName == "" {
		params.ModelName = "model_" + uuid.NewString()
	}
	if params.TestSize <= 0 || params.TestSize >= 1 {
		params.TestSize = 0.2
	}
	if params.CVFolds <= 0 {
		params.CVFolds = 5
	}
	if params.Samples <= 0 {
		params.Samples = 1000
	}
	if params.Features <= 0 {
		params.Features = 10
	}

	testSamples := int(float64(params.Samples) * params.TestSize)
	var evalMetrics map[string]any
	if params.ModelType == "classification" {
		evalMetrics = map[string]any{
			"accuracy":     round4(s.rng.Uniform(0.75, 0.98)),
			"cv_mean":      round4(s.rng.Uniform(0.7, 0.95)),
			"cv_std":       round4(s.rng.Uniform(0.01, 0.05)),
			"test_samples": testSamples,
		}
	} else {
		mse := s.rng.Uniform(1, 25)
		evalMetrics = map[string]any{
			"mse":          round4(mse),
			"rmse":         round4(math.Sqrt(mse)),
			"cv_mean":      round4(s.rng.Uniform(1, 25)),
			"cv_std":       round4(s.rng.Uniform(0.1, 2)),
			"test_samples": testSamples,
		}
	}

	info := ModelInfo{
		Name:      params.ModelName,
		ModelType: params.ModelType,
		Algorithm: params.Algorithm,
		TrainedAt: time.Now(),
		Samples:   params.Samples,
		Features:  params.Features,
		Metrics:   evalMetrics,
	}

	s.mu.Lock()
	s.models[info.Name] = info
	s.mu.Unlock()

	return info, nil
}

// PredictionResult is the response payload for predictions.
type PredictionResult struct {
	ModelName   string    `json:"model_name"`
	ModelType   string    `json:"model_type"`
	Predictions []float64 `json:"predictions"`
	Message     string    `json:"message"`
}

// Predict synthesizes one prediction per submitted row using a previously
// trained model.
func (s *ModelService) Predict(modelName string, rows int) (PredictionResult, error) {
	if rows <= 0 {
		rows = 1
	}

	s.mu.RLock()
	info, ok := s.models[modelName]
	s.mu.RUnlock()
	if !ok {
		return PredictionResult{}, apperrors.NewNotFound("model",
			map[string]any{"model_name": modelName})
	}

	predictions := make([]float64, rows)
	for i := range predictions {
		if info.ModelType == "classification" {
			predictions[i] = float64(s.rng.Intn(2))
		} else {
			predictions[i] = round4(s.rng.Uniform(0, 100))
		}
	}

	return PredictionResult{
		ModelName:   modelName,
		ModelType:   info.ModelType,
		Predictions: predictions,
		Message:     "Predictions generated successfully",
	}, nil
}

// Model returns the metadata for a trained model.
func (s *ModelService) Model(name string) (ModelInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.models[name]
	return info, ok
}
