package mcp

import (
	"github.com/honeycarbs/apollo-mcp/internal/mcp/tools"
	"github.com/honeycarbs/apollo-mcp/pkg/logging"
)

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll installs every tool the resources support on server
func (r *ToolRegistry) RegisterAll(server *Server, res *Resources) error {
	deps := tools.Deps{
		Leads:         res.Leads,
		Graph:         res.Graph,
		SheetDefaults: res.SheetDefaults,
	}
	// keep Sheets a nil interface when the client is absent
	if res.Sheets != nil {
		deps.Sheets = res.Sheets
	}

	if err := tools.RegisterAll(server, deps); err != nil {
		return err
	}

	r.logger.Info("tools registered",
		"tools", server.ToolNames(),
		"lead_recording", res.Recording,
		"leads_graph", deps.Graph != nil,
		"leads_export", deps.Sheets != nil,
	)
	return nil
}
