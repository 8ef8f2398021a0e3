package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer(t *testing.T) string {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{Name: "echo", Version: "0.0.1"}, nil)
	server.AddTool(&mcp.Tool{
		Name:        "echo",
		Description: "returns its arguments",
		InputSchema: json.RawMessage(`{"type":"object"}`),
	}, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(req.Params.Arguments)}},
			IsError: string(req.Params.Arguments) == `{"fail":true}`,
		}, nil
	})

	srv := httptest.NewServer(mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil))
	t.Cleanup(srv.Close)

	return srv.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCallsToolWithJSONArgs(t *testing.T) {
	endpoint := echoServer(t)

	out, err := execute(t, "--endpoint", endpoint, "--tool", "echo", "--args", `{"q":"hvac"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "TOOLS\n  echo\n")
	assert.Contains(t, out, "CALL: echo")
	assert.Contains(t, out, `{"q":"hvac"}`)
}

func TestListOnly(t *testing.T) {
	endpoint := echoServer(t)

	out, err := execute(t, "--endpoint", endpoint, "--tool", "")
	require.NoError(t, err)
	assert.Contains(t, out, "  echo")
	assert.NotContains(t, out, "CALL:")
}

func TestErrorResultFailsCommand(t *testing.T) {
	endpoint := echoServer(t)

	_, err := execute(t, "--endpoint", endpoint, "--tool", "echo", "--args", `{"fail":true}`)
	require.EqualError(t, err, "echo returned an error result")
}

func TestInvalidArgs(t *testing.T) {
	_, err := execute(t, "--args", "not json")
	require.ErrorContains(t, err, "invalid --args")
}
