package datasource

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// Regex extracts dimension/value pairs from a web page with a user supplied
// pattern. The first capture group is the dimension, the last one the value.
type Regex struct {
	client *http.Client
}

func NewRegex(client *http.Client) *Regex {
	if client == nil {
		client = newHTTPClient()
	}

	return &Regex{client: client}
}

func (r *Regex) Name() string {
	return "Website / Regex"
}

func (r *Regex) Template() []api.TemplateField {
	return []api.TemplateField{
		{ID: "url", Name: "URL", Placeholder: "https://"},
		{ID: "regex", Name: "Pattern", Placeholder: "/<expression>/"},
		{ID: "dimension", Name: "Dimension label", Placeholder: "Dimension"},
		{ID: "value", Name: "Value label", Placeholder: "Value"},
	}
}

func (r *Regex) ReadData(ctx context.Context, options map[string]string) (*api.ReadResult, error) {
	if options["url"] == "" || options["regex"] == "" {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"missing value for required option 'url' or 'regex'",
		)
	}

	pattern, err := regexp.Compile(options["regex"])
	if err != nil {
		return nil, contract.NewErrorWith(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf("invalid pattern %q", options["regex"]),
			err,
		)
	}

	content, err := fetchURL(ctx, r.client, options["url"])
	if err != nil {
		return nil, err
	}

	dimension := options["dimension"]
	if dimension == "" {
		dimension = "Dimension"
	}
	value := options["value"]
	if value == "" {
		value = "Value"
	}

	result := &api.ReadResult{
		Header: []string{dimension, value},
		Rows:   make([][]string, 0),
	}

	for _, match := range pattern.FindAllStringSubmatch(content, -1) {
		if len(match) < 2 {
			continue
		}
		result.Rows = append(result.Rows, []string{match[1], match[len(match)-1]})
	}

	return result, nil
}
