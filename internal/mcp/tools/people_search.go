package tools

import (
	"encoding/json"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

var peopleSearchInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"q_keywords": {
			"type": "string",
			"description": "Keywords to search in person profiles"
		},
		"person_titles": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Job titles to search for (e.g., [\"owner\", \"ceo\", \"president\"])"
		},
		"person_seniorities": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Seniority levels (e.g., [\"owner\", \"founder\", \"c_suite\", \"vp\"])"
		},
		"q_organization_keyword_tags": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Company keywords (e.g., [\"hvac\", \"heating\"])"
		},
		"organization_locations": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Company locations"
		},
		"contact_email_status": {
			"type": "array",
			"items": { "type": "string" },
			"description": "Email status filter (e.g., [\"verified\", \"likely_to_engage\"])"
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

// NewPeopleSearch builds the people_search tool
func NewPeopleSearch(svc lead.Service) Tool {
	return &forwardTool{
		op:          lead.OpPeopleSearch,
		description: "Search for people/contacts in Apollo.io database. Find decision makers by job title, seniority level, and company criteria.",
		schema:      peopleSearchInputSchema,
		service:     svc,
	}
}
