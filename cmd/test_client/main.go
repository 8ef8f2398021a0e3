package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

const defaultArgs = `{"q_organization_keyword_tags":["hvac"],"organization_locations":["Atlanta, GA"],"per_page":5}`

type flags struct {
	endpoint string
	tool     string
	args     string
	timeout  time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "test_client",
		Short:         "Call an apollo-mcp server over streamable HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			arguments, err := parseArgs(f.args)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
			defer cancel()

			return run(ctx, cmd.OutOrStdout(), f, arguments)
		},
	}

	cmd.Flags().StringVar(&f.endpoint, "endpoint", "http://localhost:8080/mcp", "streamable HTTP endpoint of the server")
	cmd.Flags().StringVar(&f.tool, "tool", "organization_search", "tool to call; empty only lists tools")
	cmd.Flags().StringVar(&f.args, "args", defaultArgs, "tool arguments as a JSON object")
	cmd.Flags().DurationVar(&f.timeout, "timeout", time.Minute, "overall timeout")

	return cmd
}

func parseArgs(raw string) (map[string]any, error) {
	var arguments map[string]any
	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return nil, fmt.Errorf("invalid --args: %w", err)
	}
	return arguments, nil
}

func run(ctx context.Context, out io.Writer, f flags, arguments map[string]any) error {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "apollo-mcp-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: f.endpoint}, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = session.Close() }()

	fmt.Fprintf(out, "Connected to server (session ID: %s)\n", session.ID())

	if err := listTools(ctx, out, session); err != nil {
		return err
	}

	if f.tool == "" {
		return nil
	}
	return callTool(ctx, out, session, f.tool, arguments)
}

func listTools(ctx context.Context, out io.Writer, session *mcp.ClientSession) error {
	fmt.Fprintln(out, "\nTOOLS")

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return fmt.Errorf("list tools failed: %w", err)
	}
	for _, t := range res.Tools {
		fmt.Fprintf(out, "  %s\n", t.Name)
	}
	return nil
}

func callTool(ctx context.Context, out io.Writer, session *mcp.ClientSession, name string, arguments map[string]any) error {
	fmt.Fprintf(out, "\nCALL: %s\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	if err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}

	printResult(out, result)
	if result.IsError {
		return fmt.Errorf("%s returned an error result", name)
	}
	return nil
}

func printResult(out io.Writer, res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Fprintln(out, txt.Text)
		}
	}
}
