package apollo

import (
	"net/http"
	"time"
)

// Endpoint paths relative to the API base URL
const (
	PathOrganizationSearch = "/mixed_companies/search"
	PathPeopleSearch       = "/mixed_people/search"
	PathPeopleMatch        = "/people/match"
	PathOrganizationEnrich = "/organizations/enrich"
)

// Config defines Apollo API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration // ignored when HTTPClient is set
	UserAgent  string
}

// Client posts requests to the Apollo.io REST API
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type errorBody struct {
	Message any `json:"message"`
}
