package api

// Threshold severities. Any unknown value is stored as informational.
const (
	SeverityInfo     = 1
	SeverityCritical = 2
	SeverityWarning  = 3
)

type Threshold struct {
	ID         int64  `json:"id"`
	DatasetID  int64  `json:"datasetId"`
	UserID     string `json:"user_id"`
	Dimension1 string `json:"dimension1"`
	Option     string `json:"option"`
	Value      string `json:"value"`
	Severity   int    `json:"severity"`
}

type CreateThresholdRequest struct {
	DatasetID  int64  `json:"datasetId"  validate:"required,gt=0"`
	Dimension1 string `json:"dimension1" validate:"required"`
	Option     string `json:"option"     validate:"required"`
	Value      string `json:"value"      validate:"required"`
	Severity   string `json:"severity"`
}
