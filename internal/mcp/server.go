package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/apollo-mcp/internal/config"
	"github.com/honeycarbs/apollo-mcp/internal/mcp/tools"
	"github.com/honeycarbs/apollo-mcp/pkg/logging"
)

const (
	serverName    = "apollo-lead-gen"
	serverVersion = "1.0.0"
)

// Server wraps an MCP SDK server with a stdio or streamable HTTP transport
type Server struct {
	logger *logging.Logger
	config config.Config

	mcp     *sdkmcp.Server
	router  *Router
	metrics *Metrics

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs a new MCP server
func NewServer(log *logging.Logger, cfg config.Config) *Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	mcpServer := sdkmcp.NewServer(impl, nil)
	metrics := NewMetrics()

	s := &Server{
		logger:  log,
		config:  cfg,
		mcp:     mcpServer,
		router:  NewRouter(mcpServer, log.Named("router"), metrics),
		metrics: metrics,
	}

	s.srv = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// RegisterTool exposes tool to MCP clients
func (s *Server) RegisterTool(tool tools.Tool) error {
	return s.router.Register(tool)
}

// ToolNames lists registered tools
func (s *Server) ToolNames() []string {
	return s.router.Names()
}

// MCP returns the underlying SDK server
func (s *Server) MCP() *sdkmcp.Server {
	return s.mcp
}

// Handler builds the HTTP routes used by the http transport
func (s *Server) Handler() http.Handler {
	streamHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s.mcp
	}, nil)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Handle(s.config.HTTPPath, streamHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.Handler())

	return r
}

// Run serves the configured transport and blocks until it stops
func (s *Server) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	switch s.config.Transport {
	case config.TransportHTTP:
		return s.runHTTP()
	case config.TransportStdio:
		return s.runStdio(ctx)
	default:
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}
}

func (s *Server) runStdio(ctx context.Context) error {
	s.logger.Info("Apollo.io MCP server running on stdio", "tools", s.ToolNames())

	err := s.mcp.Run(ctx, &sdkmcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdio server: %w", err)
	}

	return nil
}

func (s *Server) runHTTP() error {
	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr, "path", s.config.HTTPPath, "tools", s.ToolNames())

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops the HTTP listener; stdio sessions end with their context
func (s *Server) Shutdown(ctx context.Context) error {
	if s.config.Transport != config.TransportHTTP {
		return nil
	}

	s.logger.Info("shutdown requested for MCP HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
