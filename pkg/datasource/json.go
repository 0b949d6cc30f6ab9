package datasource

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// JSON reads a JSON feed and extracts key/value pairs addressed by a gjson
// path. The path may point at an object (keys become dimensions), an array
// of two-element arrays, or a single scalar.
type JSON struct {
	client *http.Client
}

func NewJSON(client *http.Client) *JSON {
	if client == nil {
		client = newHTTPClient()
	}

	return &JSON{client: client}
}

func (j *JSON) Name() string {
	return "JSON"
}

func (j *JSON) Template() []api.TemplateField {
	return []api.TemplateField{
		{ID: "url", Name: "URL", Placeholder: "https://"},
		{ID: "path", Name: "Object path", Placeholder: "data.items"},
	}
}

func (j *JSON) ReadData(ctx context.Context, options map[string]string) (*api.ReadResult, error) {
	if options["url"] == "" {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"missing value for required option 'url'",
		)
	}

	content, err := fetchURL(ctx, j.client, options["url"])
	if err != nil {
		return nil, err
	}

	selected := gjson.Parse(content)
	if path := options["path"]; path != "" {
		selected = gjson.Get(content, path)
	}

	result := &api.ReadResult{
		Header: []string{"Key", "Value"},
		Rows:   make([][]string, 0),
	}

	switch {
	case selected.IsObject():
		selected.ForEach(func(key, value gjson.Result) bool {
			result.Rows = append(result.Rows, []string{key.String(), value.String()})
			return true
		})
	case selected.IsArray():
		selected.ForEach(func(_, element gjson.Result) bool {
			if element.IsArray() {
				fields := element.Array()
				row := make([]string, 0, len(fields))
				for _, field := range fields {
					row = append(row, field.String())
				}
				result.Rows = append(result.Rows, row)
			} else {
				result.Rows = append(result.Rows, []string{element.String()})
			}
			return true
		})
	case selected.Exists():
		result.Rows = append(result.Rows, []string{options["path"], selected.String()})
	}

	return result, nil
}
