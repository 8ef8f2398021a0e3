package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"LOG_LEVEL", "MCP_TRANSPORT", "MCP_HOST", "PORT", "MCP_HTTP_PATH",
	"APOLLO_API_KEY", "APOLLO_API_BASE", "APOLLO_TIMEOUT",
	"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD", "NEO4J_DATABASE",
	"GOOGLE_SHEETS_CREDENTIALS_PATH", "LEADS_SPREADSHEET_ID", "LEADS_SHEET_TAB",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APOLLO_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/mcp", cfg.HTTPPath)
	assert.Equal(t, "secret", cfg.Apollo.APIKey)
	assert.Equal(t, "https://api.apollo.io/v1", cfg.Apollo.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Apollo.Timeout)
	assert.Equal(t, "Leads", cfg.Sheets.Tab)
	assert.False(t, cfg.Neo4jEnabled())
	assert.False(t, cfg.SheetsEnabled())
}

func TestLoadMissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.EqualError(t, cfg.Validate(), "missing required environment variables: APOLLO_API_KEY")
}

func TestLoadDefersValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("APOLLO_API_KEY", "secret")
	t.Setenv("MCP_TRANSPORT", "bogus")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bogus", cfg.Transport)
	require.Error(t, cfg.Validate())

	cfg.Transport = TransportStdio
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APOLLO_API_KEY", "secret")
	t.Setenv("APOLLO_API_BASE", "http://localhost:9999/v1")
	t.Setenv("APOLLO_TIMEOUT", "5s")
	t.Setenv("MCP_TRANSPORT", "HTTP")
	t.Setenv("PORT", "9090")
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "pw")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("LEADS_SHEET_TAB", "HVAC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Apollo.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Apollo.Timeout)
	assert.True(t, cfg.Neo4jEnabled())
	assert.True(t, cfg.SheetsEnabled())
	assert.Equal(t, "HVAC", cfg.Sheets.Tab)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "bad timeout",
			env:     map[string]string{"APOLLO_TIMEOUT": "soon"},
			wantErr: `invalid APOLLO_TIMEOUT "soon"`,
		},
		{
			name:    "bad transport",
			env:     map[string]string{"MCP_TRANSPORT": "websocket"},
			wantErr: `unsupported MCP_TRANSPORT "websocket"`,
		},
		{
			name:    "neo4j without credentials",
			env:     map[string]string{"NEO4J_URI": "neo4j://localhost"},
			wantErr: "missing required environment variables: NEO4J_USERNAME, NEO4J_PASSWORD",
		},
		{
			name:    "relative http path",
			env:     map[string]string{"MCP_HTTP_PATH": "mcp"},
			wantErr: "MCP_HTTP_PATH must start with /",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APOLLO_API_KEY", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if err == nil {
				err = cfg.Validate()
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("APOLLO_API_KEY"))
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), "apollo.env")
	require.NoError(t, os.WriteFile(path, []byte("APOLLO_API_KEY=from-file\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Apollo.APIKey)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
