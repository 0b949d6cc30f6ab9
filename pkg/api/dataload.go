package api

type Dataload struct {
	ID         int64  `json:"id"`
	UserID     string `json:"user_id"`
	DatasetID  int64  `json:"datasetId"`
	Datasource string `json:"datasource"`
	Name       string `json:"name"`
	Schedule   string `json:"schedule"`
	Option     string `json:"option"`
}

// DataloadIndex is the sidebar payload: the dataset's dataloads plus
// everything needed to render the datasource selector and option forms.
type DataloadIndex struct {
	Dataloads   []*Dataload                `json:"dataloads"`
	Datasources map[string]string          `json:"datasources"`
	Templates   map[string][]TemplateField `json:"templates"`
}

type CreateDataloadRequest struct {
	DatasetID    int64  `json:"datasetId"    validate:"required,gt=0"`
	DatasourceID string `json:"datasourceId" validate:"required"`
}

type UpdateDataloadRequest struct {
	Name     string `json:"name"     validate:"required"`
	Schedule string `json:"schedule"`
	Option   string `json:"option"`
}

type ExecuteDataloadRequest struct {
	DataloadID int64 `json:"dataloadId" validate:"required,gt=0"`
}

// ExecuteResult reports a dataload run. Error 0 means success; any other
// value carries a message instead of insert/update counts.
type ExecuteResult struct {
	Error   int    `json:"error"`
	Message string `json:"message,omitempty"`
	Insert  int64  `json:"insert"`
	Update  int64  `json:"update"`
}
