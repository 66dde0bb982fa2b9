// Package format renders Partner API responses for tool callers, as either
// a verbatim pretty-printed JSON payload or a bounded markdown summary.
package format

import (
	"encoding/json"
	"fmt"
)

// Format selects the caller-facing output shape
type Format string

const (
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// Default is used when a tool call omits response_format
const Default = Markdown

// Parse validates a raw response_format value, applying the default for
// the empty string.
func Parse(value string) (Format, error) {
	switch Format(value) {
	case "":
		return Default, nil
	case Markdown, JSON:
		return Format(value), nil
	default:
		return "", fmt.Errorf("invalid response_format %q: must be %q or %q", value, Markdown, JSON)
	}
}

// PrettyJSON re-serializes the raw upstream payload with indentation.
// Nothing is dropped or truncated; the structure round-trips exactly.
func PrettyJSON(raw json.RawMessage) (string, error) {
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("failed to decode payload: %w", err)
	}
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render payload: %w", err)
	}
	return string(pretty), nil
}
