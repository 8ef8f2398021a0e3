package tools

import (
	"context"
	"encoding/json"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

// forwardTool posts its arguments to one Apollo endpoint
type forwardTool struct {
	op          lead.Operation
	description string
	schema      json.RawMessage
	service     lead.Service
}

func (t *forwardTool) Name() string {
	return string(t.op)
}

func (t *forwardTool) Description() string {
	return t.description
}

func (t *forwardTool) InputSchema() json.RawMessage {
	return t.schema
}

func (t *forwardTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	return t.service.Forward(ctx, t.op, args)
}
