package lead

import (
	"context"
	"time"
)

const (
	DefaultLookupLimit = 25
	MaxLookupLimit     = 100
)

// LookupQuery selects previously recorded organizations. An empty query asks
// for graph totals only.
type LookupQuery struct {
	OrganizationID string `json:"organization_id,omitempty"`
	Domain         string `json:"domain,omitempty"`
	Name           string `json:"name,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

// Empty reports whether no filter is set
func (q LookupQuery) Empty() bool {
	return q.OrganizationID == "" && q.Domain == "" && q.Name == ""
}

// Normalize clamps Limit into [1, MaxLookupLimit]
func (q LookupQuery) Normalize() LookupQuery {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultLookupLimit
	case q.Limit > MaxLookupLimit:
		q.Limit = MaxLookupLimit
	}
	return q
}

// RecordedOrganization is an organization as stored in the lead graph,
// with the people known to work there
type RecordedOrganization struct {
	Organization
	People     []Person  `json:"people"`
	LastSeenAt time.Time `json:"last_seen_at,omitzero"`
	LastSeenBy string    `json:"last_seen_by,omitempty"`
}

// LookupResult is either a list of organizations or node totals
type LookupResult struct {
	Organizations []RecordedOrganization `json:"organizations,omitzero"`
	NodeCounts    map[string]int64       `json:"node_counts,omitempty"`
}

// Lookup reads recorded leads back
type Lookup interface {
	Lookup(ctx context.Context, q LookupQuery) (LookupResult, error)
}
