package datasource

import (
	"strings"

	"github.com/cubestats/analytics/pkg/api"
)

// guessDelimiter picks the separator that occurs most often in the first
// line. Used when the delimiter option is unset or "auto".
func guessDelimiter(content string) string {
	firstLine, _, _ := strings.Cut(content, "\n")

	best, bestCount := ",", 0
	for _, candidate := range []string{",", ";", "\t", "|"} {
		if count := strings.Count(firstLine, candidate); count > bestCount {
			best, bestCount = candidate, count
		}
	}

	return best
}

func resolveDelimiter(option, content string) string {
	switch option {
	case "", "auto":
		return guessDelimiter(content)
	case "tab":
		return "\t"
	default:
		return option
	}
}

// parseDelimited splits delimiter-separated text into a header line and data
// rows. Empty lines are skipped; a trailing newline does not produce a row.
func parseDelimited(content, delimiter string) *api.ReadResult {
	result := &api.ReadResult{Rows: make([][]string, 0)}

	for i, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, delimiter)
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		if i == 0 {
			result.Header = fields
			continue
		}
		result.Rows = append(result.Rows, fields)
	}

	return result
}
