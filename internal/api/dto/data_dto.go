package dto

// CleanRequest payload for data cleaning.
type CleanRequest struct {
	DatasetID string `json:"dataset_id"`
}
