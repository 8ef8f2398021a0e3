package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/apollo-mcp/internal/config"
	"github.com/honeycarbs/apollo-mcp/internal/mcp"
	"github.com/honeycarbs/apollo-mcp/pkg/logging"
	"github.com/honeycarbs/apollo-mcp/pkg/shutdown"
)

type flags struct {
	envFile   string
	transport string
	host      string
	port      string
	logLevel  string
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
		Use:           "apollo-mcp",
		Short:         "MCP server exposing Apollo.io lead generation tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&f.envFile, "env-file", "", "load environment variables from this file instead of ./.env")
	cmd.Flags().StringVar(&f.transport, "transport", "", "transport to serve: stdio or http (overrides MCP_TRANSPORT)")
	cmd.Flags().StringVar(&f.host, "host", "", "http listen host (overrides MCP_HOST)")
	cmd.Flags().StringVar(&f.port, "port", "", "http listen port (overrides PORT)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	return cmd
}

func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	var envFiles []string
	if f.envFile != "" {
		envFiles = append(envFiles, f.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("transport") {
		cfg.Transport = f.transport
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	defer stop()

	res, cleanup, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		return err
	}
	defer cleanup()

	srv := mcp.NewServer(logger, cfg)
	if err := mcp.NewToolRegistry(logger).RegisterAll(srv, res); err != nil {
		logger.Error("failed to register MCP tools", "err", err)
		return err
	}

	if cfg.Transport == config.TransportHTTP {
		go func() { _ = shutdown.Graceful(ctx, srv, 10*time.Second, logger) }()
	}

	logger.Info("MCP server initialized and starting", "transport", cfg.Transport)

	if err := srv.Run(ctx); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
