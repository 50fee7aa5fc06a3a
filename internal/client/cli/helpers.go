package cli

import (
	"encoding/json"
	"fmt"
	"time"
)

// parseJSONValue decodes a command-line JSON argument into the generic value
// form the diff engine works with.
func parseJSONValue(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

// formatJSON renders a value as indented JSON for display.
func formatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// formatTimestamp renders a ms-since-epoch timestamp for display.
func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format(time.RFC3339)
}
