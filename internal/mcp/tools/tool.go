package tools

import (
	"context"
	"encoding/json"
)

// Tool represents an MCP tool implementation.
type Tool interface {
	Name() string
	Description() string
	InputSchema() json.RawMessage
	// Execute receives the caller's arguments exactly as sent. The returned
	// value is rendered as indented JSON; json.RawMessage is kept verbatim.
	Execute(ctx context.Context, args json.RawMessage) (any, error)
}
