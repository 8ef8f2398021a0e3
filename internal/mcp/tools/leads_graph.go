package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

var leadsGraphInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"organization_id": { "type": "string", "description": "Apollo organization ID" },
		"domain": { "type": "string", "description": "Exact company domain, case-insensitive" },
		"name": { "type": "string", "description": "Substring of the company name, case-insensitive" },
		"limit": { "type": "integer", "minimum": 1, "maximum": 100, "description": "Maximum organizations to return (default 25)" }
	}
}`)

// LeadsGraph reads back leads recorded from earlier Apollo calls. Without
// filters it reports node totals.
type LeadsGraph struct {
	lookup lead.Lookup
}

func NewLeadsGraph(lookup lead.Lookup) *LeadsGraph {
	return &LeadsGraph{lookup: lookup}
}

func (t *LeadsGraph) Name() string {
	return "leads_graph"
}

func (t *LeadsGraph) Description() string {
	return "Look up organizations and people recorded from earlier Apollo searches and enrichments, without spending Apollo credits."
}

func (t *LeadsGraph) InputSchema() json.RawMessage {
	return leadsGraphInputSchema
}

func (t *LeadsGraph) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var q lead.LookupQuery
	if len(args) > 0 && string(args) != "null" {
		if err := json.Unmarshal(args, &q); err != nil {
			return nil, fmt.Errorf("invalid leads_graph arguments: %w", err)
		}
	}

	q.OrganizationID = strings.TrimSpace(q.OrganizationID)
	q.Domain = strings.TrimSpace(q.Domain)
	q.Name = strings.TrimSpace(q.Name)

	res, err := t.lookup.Lookup(ctx, q.Normalize())
	if err != nil {
		return nil, err
	}
	if !q.Empty() && res.Organizations == nil {
		res.Organizations = []lead.RecordedOrganization{}
	}
	return res, nil
}
