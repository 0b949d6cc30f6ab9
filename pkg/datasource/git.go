package datasource

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// Git reads a raw file from a git hosting service.
type Git struct {
	client *http.Client
	// rawBase overrides the raw-content host in tests.
	rawBase string
}

func NewGit(client *http.Client) *Git {
	if client == nil {
		client = newHTTPClient()
	}

	return &Git{client: client, rawBase: "https://raw.githubusercontent.com"}
}

func (g *Git) Name() string {
	return "Git"
}

func (g *Git) Template() []api.TemplateField {
	return []api.TemplateField{
		{ID: "user", Name: "User", Placeholder: "user"},
		{ID: "repository", Name: "Repository", Placeholder: "repository"},
		{ID: "branch", Name: "Branch", Placeholder: "master"},
		{ID: "path", Name: "File path", Placeholder: "data/file.csv"},
		{ID: "delimiter", Name: "Delimiter", Placeholder: "auto/,/;/tab", Type: "tf"},
	}
}

func (g *Git) ReadData(ctx context.Context, options map[string]string) (*api.ReadResult, error) {
	for _, required := range []string{"user", "repository", "path"} {
		if options[required] == "" {
			return nil, contract.NewError(
				contract.ErrorCodeInvalidParameterValue,
				fmt.Sprintf("missing value for required option '%s'", required),
			)
		}
	}

	branch := options["branch"]
	if branch == "" {
		branch = "master"
	}

	url := fmt.Sprintf("%s/%s/%s/%s/%s",
		g.rawBase,
		options["user"],
		options["repository"],
		branch,
		strings.TrimPrefix(options["path"], "/"),
	)

	content, err := fetchURL(ctx, g.client, url)
	if err != nil {
		return nil, err
	}

	return parseDelimited(content, resolveDelimiter(options["delimiter"], content)), nil
}
