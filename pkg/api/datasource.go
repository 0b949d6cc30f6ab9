package api

// TemplateField describes one input field a datasource needs to configure a
// dataload. Type "" renders as free text; type "tf" renders as a selector
// whose choices are the "/"-delimited placeholder.
type TemplateField struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type,omitempty"`
}

// ReadResult is the raw outcome of a datasource read.
type ReadResult struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"data"`
}

type ReadDatasourceRequest struct {
	DatasourceID string            `json:"datasourceId" validate:"required"`
	Options      map[string]string `json:"options"`
}
