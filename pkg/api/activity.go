package api

const (
	ActivityDatasetShared = "dataset_shared"
	ActivityDataAdded     = "data_added"
)

type Activity struct {
	ID        int64  `json:"id"`
	DatasetID int64  `json:"datasetId"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}
