package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/apollo-mcp/internal/mcp/tools"
	"github.com/honeycarbs/apollo-mcp/pkg/logging"
)

const (
	methodCallTool   = "tools/call"
	unknownToolLabel = "unknown"
)

var errUnknownTool = errors.New("unknown tool")

// Router stores tools and dispatches MCP calls to them.
type Router struct {
	server  *sdkmcp.Server
	logger  *logging.Logger
	metrics *Metrics

	mu    sync.RWMutex
	tools map[string]tools.Tool
}

// NewRouter creates an empty router bound to an SDK server. Every tools/call
// request is dispatched through Call.
func NewRouter(server *sdkmcp.Server, logger *logging.Logger, metrics *Metrics) *Router {
	r := &Router{
		server:  server,
		logger:  logger,
		metrics: metrics,
		tools:   make(map[string]tools.Tool),
	}
	server.AddReceivingMiddleware(r.middleware)
	return r
}

// Register adds a tool to the router and advertises it on the SDK server.
// Arguments are not validated against the schema.
func (r *Router) Register(tool tools.Tool) error {
	name := tool.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("tool %q already registered", name)
	}

	r.server.AddTool(&sdkmcp.Tool{
		Name:        name,
		Description: tool.Description(),
		InputSchema: tool.InputSchema(),
	}, r.handler(name))

	r.tools[name] = tool
	return nil
}

// Names lists registered tool names in sorted order.
func (r *Router) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.tools))
	for name := range r.tools {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Call executes a tool by name and formats the result the way MCP clients see
// it. Unknown names yield an isError result, like any other failure.
func (r *Router) Call(ctx context.Context, name string, args json.RawMessage) *sdkmcp.CallToolResult {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		r.logger.Warn("unknown tool called", "tool", name)
		r.metrics.Observe(unknownToolLabel, errUnknownTool, 0)
		return errorResult("Error: Unknown tool: " + name)
	}

	return r.execute(ctx, tool, args)
}

// middleware answers tools/call for names the SDK has no handler for, which it
// would otherwise reject with a protocol error
func (r *Router) middleware(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
	return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
		if method != methodCallTool {
			return next(ctx, method, req)
		}

		call, ok := req.(*sdkmcp.CallToolRequest)
		if !ok || call.Params == nil {
			return next(ctx, method, req)
		}

		r.mu.RLock()
		_, known := r.tools[call.Params.Name]
		r.mu.RUnlock()
		if known {
			return next(ctx, method, req)
		}

		return r.Call(ctx, call.Params.Name, call.Params.Arguments), nil
	}
}

func (r *Router) handler(name string) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		var args json.RawMessage
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}
		return r.Call(ctx, name, args), nil
	}
}

// execute never returns a protocol error: failures become isError results.
func (r *Router) execute(ctx context.Context, tool tools.Tool, args json.RawMessage) *sdkmcp.CallToolResult {
	name := tool.Name()
	log := r.logger.With("tool", name, "call_id", uuid.NewString())
	start := time.Now()

	log.Debug("tool called", "args_bytes", len(args))

	out, err := tool.Execute(ctx, args)
	var text string
	if err == nil {
		text, err = tools.Render(out)
	}

	elapsed := time.Since(start)
	r.metrics.Observe(name, err, elapsed)

	if err != nil {
		log.Warn("tool call failed", "err", err, "duration", elapsed)
		return errorResult(tools.ErrorText(err))
	}

	log.Info("tool call completed", "duration", elapsed, "result_bytes", len(text))
	return textResult(text)
}

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

func errorResult(msg string) *sdkmcp.CallToolResult {
	res := textResult(msg)
	res.IsError = true
	return res
}
