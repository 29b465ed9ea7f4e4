// Package output renders operation results for callers: indented JSON
// for machine consumption, markdown summaries for humans, and a length
// cap applied to everything.
package output

import (
	"encoding/json"
	"fmt"
)

// Format selects how query results are rendered.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a caller-supplied format string. Empty selects
// JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid response_format %q: must be json or markdown", s)
	}
}

// DefaultCharLimit caps response length unless configured otherwise.
const DefaultCharLimit = 25000

// Truncate cuts content at the character limit and appends a fixed
// notice. The cut is positional, not at a semantic boundary. A limit of
// zero or less means no cap.
func Truncate(content string, limit int) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	notice := fmt.Sprintf(
		"\n\n---\n**Response truncated** (exceeded %d characters). "+
			"Use more specific filters or criteria to narrow results.", limit)
	return content[:limit] + notice
}

// JSON renders a value as indented JSON. Marshal failures surface as an
// error payload rather than panicking; they only occur for types that
// cannot appear in our result structs.
func JSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success": false, "error": %q}`, "failed to encode response: "+err.Error())
	}
	return string(b)
}
