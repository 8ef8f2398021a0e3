package lead

import (
	"encoding/json"
	"fmt"
	"time"
)

type envelope struct {
	Organizations []Organization `json:"organizations"`
	Accounts      []Organization `json:"accounts"`
	People        []Person       `json:"people"`
	Contacts      []Person       `json:"contacts"`
	Person        *Person        `json:"person"`
	Organization  *Organization  `json:"organization"`
	Pagination    *Pagination    `json:"pagination"`
}

// Extract collects the organizations and people found in an Apollo payload.
// Records without an Apollo id are dropped; duplicates keep the first copy.
func Extract(op Operation, payload json.RawMessage, fetchedAt time.Time) (Batch, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Batch{}, fmt.Errorf("lead: decode %s payload: %w", op, err)
	}

	batch := Batch{
		Operation:  op,
		Pagination: env.Pagination,
		FetchedAt:  fetchedAt,
	}

	seenOrgs := make(map[string]struct{})
	addOrg := func(o Organization) {
		if o.ID == "" {
			return
		}
		if _, ok := seenOrgs[o.ID]; ok {
			return
		}
		seenOrgs[o.ID] = struct{}{}
		batch.Organizations = append(batch.Organizations, o)
	}

	seenPeople := make(map[string]struct{})
	addPerson := func(p Person) {
		if p.ID == "" {
			return
		}
		if _, ok := seenPeople[p.ID]; ok {
			return
		}
		seenPeople[p.ID] = struct{}{}

		if p.Organization != nil {
			if p.OrganizationID == "" {
				p.OrganizationID = p.Organization.ID
			}
			if p.OrganizationName == "" {
				p.OrganizationName = p.Organization.Name
			}
			addOrg(*p.Organization)
			p.Organization = nil
		}
		if p.Name == "" && (p.FirstName != "" || p.LastName != "") {
			p.Name = joinName(p.FirstName, p.LastName)
		}

		batch.People = append(batch.People, p)
	}

	for _, o := range env.Organizations {
		addOrg(o)
	}
	for _, o := range env.Accounts {
		addOrg(o)
	}
	if env.Organization != nil {
		addOrg(*env.Organization)
	}

	for _, p := range env.People {
		addPerson(p)
	}
	for _, p := range env.Contacts {
		addPerson(p)
	}
	if env.Person != nil {
		addPerson(*env.Person)
	}

	return batch, nil
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
