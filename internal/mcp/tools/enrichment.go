package tools

import (
	"encoding/json"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

var (
	peopleEnrichmentInputSchema = json.RawMessage(`{
		"type": "object",
		"properties": {
			"email": {
				"type": "string",
				"description": "Email address of the person"
			},
			"id": {
				"type": "string",
				"description": "Apollo.io person ID"
			}
		}
	}`)

	organizationEnrichmentInputSchema = json.RawMessage(`{
		"type": "object",
		"properties": {
			"domain": {
				"type": "string",
				"description": "Company domain (e.g., \"acmehvac.com\")"
			},
			"id": {
				"type": "string",
				"description": "Apollo.io organization ID"
			}
		}
	}`)
)

// NewPeopleEnrichment builds the people_enrichment tool
func NewPeopleEnrichment(svc lead.Service) Tool {
	return &forwardTool{
		op:          lead.OpPeopleEnrichment,
		description: "Get detailed information about a specific person using their email or Apollo.io ID.",
		schema:      peopleEnrichmentInputSchema,
		service:     svc,
	}
}

// NewOrganizationEnrichment builds the organization_enrichment tool
func NewOrganizationEnrichment(svc lead.Service) Tool {
	return &forwardTool{
		op:          lead.OpOrganizationEnrichment,
		description: "Get detailed information about a specific organization using their domain or Apollo.io ID.",
		schema:      organizationEnrichmentInputSchema,
		service:     svc,
	}
}
