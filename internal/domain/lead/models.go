package lead

import (
	"time"

	"github.com/honeycarbs/apollo-mcp/pkg/apollo"
)

// Operation identifies one upstream Apollo call
type Operation string

const (
	OpOrganizationSearch     Operation = "organization_search"
	OpPeopleSearch           Operation = "people_search"
	OpPeopleEnrichment       Operation = "people_enrichment"
	OpOrganizationEnrichment Operation = "organization_enrichment"
)

var operationPaths = map[Operation]string{
	OpOrganizationSearch:     apollo.PathOrganizationSearch,
	OpPeopleSearch:           apollo.PathPeopleSearch,
	OpPeopleEnrichment:       apollo.PathPeopleMatch,
	OpOrganizationEnrichment: apollo.PathOrganizationEnrich,
}

// Path returns the API path for op and whether op is known
func (op Operation) Path() (string, bool) {
	p, ok := operationPaths[op]
	return p, ok
}

// Organization is a company record returned by Apollo
type Organization struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Domain        string  `json:"primary_domain"`
	WebsiteURL    string  `json:"website_url"`
	LinkedInURL   string  `json:"linkedin_url"`
	Phone         string  `json:"phone"`
	Industry      string  `json:"industry"`
	EmployeeCount float64 `json:"estimated_num_employees"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
}

// Person is a contact record returned by Apollo
type Person struct {
	ID               string        `json:"id"`
	FirstName        string        `json:"first_name"`
	LastName         string        `json:"last_name"`
	Name             string        `json:"name"`
	Title            string        `json:"title"`
	Email            string        `json:"email"`
	EmailStatus      string        `json:"email_status"`
	Seniority        string        `json:"seniority"`
	LinkedInURL      string        `json:"linkedin_url"`
	City             string        `json:"city"`
	State            string        `json:"state"`
	Country          string        `json:"country"`
	OrganizationID   string        `json:"organization_id"`
	OrganizationName string        `json:"organization_name"`
	Organization     *Organization `json:"organization,omitempty"`
}

// Pagination mirrors Apollo's pagination block
type Pagination struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalEntries int `json:"total_entries"`
	TotalPages   int `json:"total_pages"`
}

// Batch is the set of leads found in one upstream response
type Batch struct {
	Operation     Operation
	Organizations []Organization
	People        []Person
	Pagination    *Pagination
	FetchedAt     time.Time
}

// Empty reports whether the batch carries no leads
func (b Batch) Empty() bool {
	return len(b.Organizations) == 0 && len(b.People) == 0
}
