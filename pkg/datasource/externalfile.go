package datasource

import (
	"context"
	"net/http"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// ExternalFile reads a delimiter-separated file from a URL.
type ExternalFile struct {
	client *http.Client
}

func NewExternalFile(client *http.Client) *ExternalFile {
	if client == nil {
		client = newHTTPClient()
	}

	return &ExternalFile{client: client}
}

func (e *ExternalFile) Name() string {
	return "External file"
}

func (e *ExternalFile) Template() []api.TemplateField {
	return []api.TemplateField{
		{ID: "link", Name: "External URL", Placeholder: "https://"},
		{ID: "delimiter", Name: "Delimiter", Placeholder: "auto/,/;/tab", Type: "tf"},
	}
}

func (e *ExternalFile) ReadData(ctx context.Context, options map[string]string) (*api.ReadResult, error) {
	link := options["link"]
	if link == "" {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"missing value for required option 'link'",
		)
	}

	content, err := fetchURL(ctx, e.client, link)
	if err != nil {
		return nil, err
	}

	return parseDelimited(content, resolveDelimiter(options["delimiter"], content)), nil
}
