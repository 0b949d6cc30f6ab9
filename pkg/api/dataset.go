package api

type Dataset struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Type        int    `json:"type"`
	Dimension1  string `json:"dimension1"`
	Dimension2  string `json:"dimension2"`
	Value       string `json:"value"`
	Created     int64  `json:"created"`
	LastUpdated int64  `json:"lastUpdated"`
}

type CreateDatasetRequest struct {
	Name string `json:"name" validate:"required"`
	Type int    `json:"type"`
}

type UpdateDatasetRequest struct {
	Name       string `json:"name" validate:"required"`
	Dimension1 string `json:"dimension1"`
	Dimension2 string `json:"dimension2"`
	Value      string `json:"value"`
}

type Row struct {
	ID         int64  `json:"id"`
	DatasetID  int64  `json:"datasetId"`
	Dimension1 string `json:"dimension1"`
	Dimension2 string `json:"dimension2"`
	Value      string `json:"value"`
	Timestamp  int64  `json:"timestamp"`
}

type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
}
