package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/honeycarbs/apollo-mcp/pkg/apollo"
)

const indent = "  "

// Render formats a tool result as two-space indented JSON. Raw JSON keeps
// its key order.
func Render(v any) (string, error) {
	if raw, ok := v.(json.RawMessage); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", indent); err != nil {
			return "", fmt.Errorf("render result: %w", err)
		}
		return buf.String(), nil
	}

	out, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return "", fmt.Errorf("render result: %w", err)
	}
	return string(out), nil
}

// ErrorText is the text shown to the caller for a failed call
func ErrorText(err error) string {
	return "Error: " + apollo.ErrorMessage(err)
}
