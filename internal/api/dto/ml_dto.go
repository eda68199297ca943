package dto

// TrainRequest payload for model training.
type TrainRequest struct {
	ModelType string  `json:"model_type"`
	Algorithm string  `json:"algorithm"`
	ModelName string  `json:"model_name"`
	TestSize  float64 `json:"test_size"`
	CVFolds   int     `json:"cv_folds"`
	NSamples  int     `json:"n_samples"`
	NFeatures int     `json:"n_features"`
}

// PredictRequest payload for predictions.
type PredictRequest struct {
	ModelName string           `json:"model_name"`
	Rows      []map[string]any `json:"rows"`
}
