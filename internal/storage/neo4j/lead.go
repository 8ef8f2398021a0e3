package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

// Ensure LeadRepository implements lead.Recorder
var _ lead.Recorder = (*LeadRepository)(nil)

// Ensure LeadRepository implements lead.Lookup
var _ lead.Lookup = (*LeadRepository)(nil)

// transactor is the subset of pkg/neo4j.Client used by the repository
type transactor interface {
	ExecuteWrite(ctx context.Context, work func(tx neo4j.ManagedTransaction) error) error
	ExecuteRead(ctx context.Context, work func(tx neo4j.ManagedTransaction) error) error
}

// LeadRepository records Apollo organizations and people as a graph
type LeadRepository struct {
	client transactor
}

// NewLeadRepository creates a LeadRepository with a Neo4j client
func NewLeadRepository(client transactor) *LeadRepository {
	return &LeadRepository{
		client: client,
	}
}

const upsertOrganizationsQuery = `
	UNWIND $organizations AS org
	MERGE (o:Organization {apolloId: org.id})
	SET o.name = org.name,
	    o.domain = org.domain,
	    o.websiteUrl = org.websiteUrl,
	    o.linkedinUrl = org.linkedinUrl,
	    o.phone = org.phone,
	    o.industry = org.industry,
	    o.employees = org.employees,
	    o.city = org.city,
	    o.state = org.state,
	    o.country = org.country,
	    o.lastSeenAt = datetime({epochMillis: $fetchedAt}),
	    o.lastSeenBy = $operation
`

const upsertPeopleQuery = `
	UNWIND $people AS person
	MERGE (p:Person {apolloId: person.id})
	SET p.name = person.name,
	    p.firstName = person.firstName,
	    p.lastName = person.lastName,
	    p.title = person.title,
	    p.seniority = person.seniority,
	    p.email = person.email,
	    p.emailStatus = person.emailStatus,
	    p.linkedinUrl = person.linkedinUrl,
	    p.city = person.city,
	    p.state = person.state,
	    p.country = person.country,
	    p.lastSeenAt = datetime({epochMillis: $fetchedAt}),
	    p.lastSeenBy = $operation
	WITH p, person
	FOREACH (_ IN CASE WHEN person.organizationId <> '' THEN [1] ELSE [] END |
		MERGE (o:Organization {apolloId: person.organizationId})
		ON CREATE SET o.name = person.organizationName
		MERGE (p)-[:WORKS_AT]->(o)
	)
`

// Record merges the batch into the graph in a single write transaction
func (r *LeadRepository) Record(ctx context.Context, batch lead.Batch) error {
	if batch.Empty() {
		return nil
	}

	common := map[string]any{
		"fetchedAt": batch.FetchedAt.UnixMilli(),
		"operation": string(batch.Operation),
	}

	err := r.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) error {
		if len(batch.Organizations) > 0 {
			if err := run(ctx, tx, upsertOrganizationsQuery, common, "organizations", organizationRows(batch.Organizations)); err != nil {
				return err
			}
		}
		if len(batch.People) > 0 {
			if err := run(ctx, tx, upsertPeopleQuery, common, "people", personRows(batch.People)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("neo4j: record leads: %w", err)
	}

	return nil
}

func run(ctx context.Context, tx neo4j.ManagedTransaction, query string, common map[string]any, key string, rows []map[string]any) error {
	params := make(map[string]any, len(common)+1)
	for k, v := range common {
		params[k] = v
	}
	params[key] = rows

	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = result.Consume(ctx)
	return err
}

func organizationRows(orgs []lead.Organization) []map[string]any {
	rows := make([]map[string]any, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, map[string]any{
			"id":          o.ID,
			"name":        o.Name,
			"domain":      o.Domain,
			"websiteUrl":  o.WebsiteURL,
			"linkedinUrl": o.LinkedInURL,
			"phone":       o.Phone,
			"industry":    o.Industry,
			"employees":   int64(o.EmployeeCount),
			"city":        o.City,
			"state":       o.State,
			"country":     o.Country,
		})
	}
	return rows
}

func personRows(people []lead.Person) []map[string]any {
	rows := make([]map[string]any, 0, len(people))
	for _, p := range people {
		rows = append(rows, map[string]any{
			"id":               p.ID,
			"name":             p.Name,
			"firstName":        p.FirstName,
			"lastName":         p.LastName,
			"title":            p.Title,
			"seniority":        p.Seniority,
			"email":            p.Email,
			"emailStatus":      p.EmailStatus,
			"linkedinUrl":      p.LinkedInURL,
			"city":             p.City,
			"state":            p.State,
			"country":          p.Country,
			"organizationId":   p.OrganizationID,
			"organizationName": p.OrganizationName,
		})
	}
	return rows
}
