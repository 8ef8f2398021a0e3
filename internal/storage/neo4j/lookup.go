package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
)

const lookupOrganizationsQuery = `
	MATCH (o:Organization)
	WHERE ($id = '' OR o.apolloId = $id)
	  AND ($domain = '' OR toLower(o.domain) = toLower($domain))
	  AND ($name = '' OR toLower(o.name) CONTAINS toLower($name))
	OPTIONAL MATCH (p:Person)-[:WORKS_AT]->(o)
	WITH o, collect(DISTINCT p) AS people
	ORDER BY o.lastSeenAt DESC
	LIMIT $limit
	RETURN o, people
`

const countLeadsQuery = `
	OPTIONAL MATCH (o:Organization)
	WITH count(o) AS organizations
	OPTIONAL MATCH (p:Person)
	WITH organizations, count(p) AS people
	OPTIONAL MATCH (:Person)-[w:WORKS_AT]->(:Organization)
	RETURN organizations, people, count(w) AS worksAt
`

// Lookup returns recorded organizations matching q, or node totals when q
// has no filter
func (r *LeadRepository) Lookup(ctx context.Context, q lead.LookupQuery) (lead.LookupResult, error) {
	q = q.Normalize()

	var out lead.LookupResult
	err := r.client.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) error {
		if q.Empty() {
			counts, err := countLeads(ctx, tx)
			out.NodeCounts = counts
			return err
		}

		orgs, err := lookupOrganizations(ctx, tx, q)
		out.Organizations = orgs
		return err
	})
	if err != nil {
		return lead.LookupResult{}, fmt.Errorf("neo4j: lookup leads: %w", err)
	}

	return out, nil
}

func countLeads(ctx context.Context, tx neo4j.ManagedTransaction) (map[string]int64, error) {
	result, err := tx.Run(ctx, countLeadsQuery, nil)
	if err != nil {
		return nil, err
	}
	record, err := result.Single(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, 3)
	for key, label := range map[string]string{
		"organizations": "Organization",
		"people":        "Person",
		"worksAt":       "WORKS_AT",
	} {
		if v, ok := record.Get(key); ok {
			counts[label], _ = v.(int64)
		}
	}
	return counts, nil
}

func lookupOrganizations(ctx context.Context, tx neo4j.ManagedTransaction, q lead.LookupQuery) ([]lead.RecordedOrganization, error) {
	result, err := tx.Run(ctx, lookupOrganizationsQuery, map[string]any{
		"id":     q.OrganizationID,
		"domain": q.Domain,
		"name":   q.Name,
		"limit":  int64(q.Limit),
	})
	if err != nil {
		return nil, err
	}

	var orgs []lead.RecordedOrganization
	for result.Next(ctx) {
		record := result.Record()

		raw, _ := record.Get("o")
		node, ok := raw.(neo4j.Node)
		if !ok {
			continue
		}
		org := recordedOrganization(node.Props)

		if rawPeople, ok := record.Get("people"); ok {
			items, _ := rawPeople.([]any)
			for _, item := range items {
				if p, ok := item.(neo4j.Node); ok {
					org.People = append(org.People, personFromProps(p.Props, org.Organization))
				}
			}
		}

		orgs = append(orgs, org)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}

func recordedOrganization(props map[string]any) lead.RecordedOrganization {
	org := lead.RecordedOrganization{
		Organization: lead.Organization{
			ID:            str(props, "apolloId"),
			Name:          str(props, "name"),
			Domain:        str(props, "domain"),
			WebsiteURL:    str(props, "websiteUrl"),
			LinkedInURL:   str(props, "linkedinUrl"),
			Phone:         str(props, "phone"),
			Industry:      str(props, "industry"),
			City:          str(props, "city"),
			State:         str(props, "state"),
			Country:       str(props, "country"),
			EmployeeCount: float64(integer(props, "employees")),
		},
		LastSeenBy: str(props, "lastSeenBy"),
		People:     []lead.Person{},
	}
	if t, ok := props["lastSeenAt"].(time.Time); ok {
		org.LastSeenAt = t.UTC()
	}
	return org
}

func personFromProps(props map[string]any, org lead.Organization) lead.Person {
	return lead.Person{
		ID:               str(props, "apolloId"),
		Name:             str(props, "name"),
		FirstName:        str(props, "firstName"),
		LastName:         str(props, "lastName"),
		Title:            str(props, "title"),
		Seniority:        str(props, "seniority"),
		Email:            str(props, "email"),
		EmailStatus:      str(props, "emailStatus"),
		LinkedInURL:      str(props, "linkedinUrl"),
		City:             str(props, "city"),
		State:            str(props, "state"),
		Country:          str(props, "country"),
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	}
}

func str(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func integer(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}
