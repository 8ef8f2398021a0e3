package tools

import (
	"encoding/json"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

var organizationSearchInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"q_organization_keyword_tags": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Keywords to search for (e.g., [\"hvac\", \"heating\", \"cooling\"])"
		},
		"organization_locations": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Locations to filter by (e.g., [\"North Carolina\", \"Atlanta, GA\"])"
		},
		"organization_num_employees_ranges": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Employee count ranges (e.g., [\"10,50\", \"50,100\"])"
		},
		"revenue_range": {
			"type": "object",
			"properties": {
				"min": { "type": "number", "description": "Minimum revenue" },
				"max": { "type": "number", "description": "Maximum revenue" }
			}
		},
		"page": {
			"type": "number",
			"description": "Page number for pagination (default: 1)"
		},
		"per_page": {
			"type": "number",
			"description": "Results per page (default: 25, max: 100)"
		}
	}
}`)

// NewOrganizationSearch builds the organization_search tool
func NewOrganizationSearch(svc lead.Service) Tool {
	return &forwardTool{
		op:          lead.OpOrganizationSearch,
		description: `Search for companies/organizations in Apollo.io database. Use keywords like "hvac", "heating", "cooling" to find HVAC businesses. Filter by location, employee count, and revenue.`,
		schema:      organizationSearchInputSchema,
		service:     svc,
	}
}
