package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Transport names accepted by MCP_TRANSPORT
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string
	Transport string // stdio (default) or http
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 8080
	HTTPPath  string // streamable endpoint, default /mcp
	Apollo    struct {
		APIKey  string
		BaseURL string
		Timeout time.Duration
	}
	Neo4j struct {
		URI      string
		Username string
		Password string
		Database string
	} // optional lead graph
	Sheets struct {
		CredentialsPath string
		SpreadsheetID   string
		Tab             string
	} // optional leads_export target
}

// Load populates config from environment variables. Files in envFiles (or
// ./.env when none are given) seed variables that are not already set.
// Only malformed values fail here; call Validate once overrides are applied.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && (len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		LogLevel:  "info",
		Transport: TransportStdio,
		Host:      "0.0.0.0",
		Port:      "8080",
		HTTPPath:  "/mcp",
	}
	cfg.Apollo.BaseURL = "https://api.apollo.io/v1"
	cfg.Apollo.Timeout = 30 * time.Second
	cfg.Sheets.Tab = "Leads"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		cfg.Transport = strings.ToLower(v)
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("MCP_HTTP_PATH"); v != "" {
		cfg.HTTPPath = v
	}

	cfg.Apollo.APIKey = strings.TrimSpace(os.Getenv("APOLLO_API_KEY"))
	if v := os.Getenv("APOLLO_API_BASE"); v != "" {
		cfg.Apollo.BaseURL = v
	}
	if v := os.Getenv("APOLLO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid APOLLO_TIMEOUT %q: %w", v, err)
		}
		cfg.Apollo.Timeout = d
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")
	cfg.Neo4j.Database = os.Getenv("NEO4J_DATABASE")

	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = os.Getenv("LEADS_SPREADSHEET_ID")
	if v := os.Getenv("LEADS_SHEET_TAB"); v != "" {
		cfg.Sheets.Tab = v
	}

	return cfg, nil
}

// Validate reports missing credentials and inconsistent settings
func (c Config) Validate() error {
	var missingVars []string

	if c.Apollo.APIKey == "" {
		missingVars = append(missingVars, "APOLLO_API_KEY")
	}

	if c.Neo4j.URI != "" {
		if c.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}
		if c.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unsupported MCP_TRANSPORT %q (want %s or %s)", c.Transport, TransportStdio, TransportHTTP)
	}

	if !strings.HasPrefix(c.HTTPPath, "/") {
		return fmt.Errorf("MCP_HTTP_PATH must start with /: %q", c.HTTPPath)
	}

	return nil
}

// Neo4jEnabled reports whether the lead graph should be wired
func (c Config) Neo4jEnabled() bool {
	return c.Neo4j.URI != ""
}

// SheetsEnabled reports whether leads_export should be wired
func (c Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != ""
}
