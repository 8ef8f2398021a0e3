package tools

import (
	"fmt"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

// Registrar describes the subset of MCP server needed to register tools.
type Registrar interface {
	RegisterTool(Tool) error
}

// Deps are the collaborators tools are built from. Graph and Sheets may be nil.
type Deps struct {
	Leads         lead.Service
	Graph         lead.Lookup
	Sheets        SheetsWriter
	SheetDefaults SheetDefaults
}

// RegisterAll installs the Apollo tools, plus leads_graph and leads_export
// when their backends are set.
func RegisterAll(r Registrar, deps Deps) error {
	if deps.Leads == nil {
		return fmt.Errorf("tools: lead service is required")
	}

	defaultTools := []Tool{
		NewOrganizationSearch(deps.Leads),
		NewPeopleSearch(deps.Leads),
		NewPeopleEnrichment(deps.Leads),
		NewOrganizationEnrichment(deps.Leads),
	}

	if deps.Graph != nil {
		defaultTools = append(defaultTools, NewLeadsGraph(deps.Graph))
	}
	if deps.Sheets != nil {
		defaultTools = append(defaultTools, NewLeadsExport(deps.Sheets, deps.SheetDefaults))
	}

	for _, tool := range defaultTools {
		if err := r.RegisterTool(tool); err != nil {
			return err
		}
	}

	return nil
}
