package datasource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// File reads delimiter-separated files below the configured data root.
type File struct {
	dataRoot string
}

func NewFile(dataRoot string) *File {
	return &File{dataRoot: dataRoot}
}

func (f *File) Name() string {
	return "Local file"
}

func (f *File) Template() []api.TemplateField {
	return []api.TemplateField{
		{ID: "link", Name: "File", Placeholder: "file path"},
		{ID: "delimiter", Name: "Delimiter", Placeholder: "auto/,/;/tab", Type: "tf"},
	}
}

func (f *File) ReadData(_ context.Context, options map[string]string) (*api.ReadResult, error) {
	link := options["link"]
	if link == "" {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"missing value for required option 'link'",
		)
	}

	path := filepath.Join(f.dataRoot, filepath.Clean("/"+link))
	if !strings.HasPrefix(path, filepath.Clean(f.dataRoot)+string(os.PathSeparator)) {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf("file path %q is outside the data root", link),
		)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", link, err)
	}

	text := string(content)

	return parseDelimited(text, resolveDelimiter(options["delimiter"], text)), nil
}
