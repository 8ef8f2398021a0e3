package mcp

import (
	"context"

	"github.com/honeycarbs/apollo-mcp/internal/config"
	"github.com/honeycarbs/apollo-mcp/internal/domain/lead"
	"github.com/honeycarbs/apollo-mcp/internal/mcp/tools"
	storage "github.com/honeycarbs/apollo-mcp/internal/storage/neo4j"
	"github.com/honeycarbs/apollo-mcp/pkg/apollo"
	"github.com/honeycarbs/apollo-mcp/pkg/logging"
	n4j "github.com/honeycarbs/apollo-mcp/pkg/neo4j"
	"github.com/honeycarbs/apollo-mcp/pkg/sheets"
)

// Resources are the collaborators tools are built from
type Resources struct {
	Leads         lead.Service
	Graph         lead.Lookup    // nil when Neo4j is not configured
	Sheets        *sheets.Client // nil when leads_export is disabled
	SheetDefaults tools.SheetDefaults
	Recording     bool // leads are mirrored into Neo4j
}

// provideApolloConfig extracts Apollo config from main config
func provideApolloConfig(cfg config.Config) apollo.Config {
	return apollo.Config{
		APIKey:  cfg.Apollo.APIKey,
		BaseURL: cfg.Apollo.BaseURL,
		Timeout: cfg.Apollo.Timeout,
	}
}

// provideNeo4jClient connects to Neo4j when configured. A failed connection
// disables recording instead of failing startup.
func provideNeo4jClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*n4j.Client, func(), error) {
	noop := func() {}
	if !cfg.Neo4jEnabled() {
		return nil, noop, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		logger.Warn("failed to initialize Neo4j client, lead recording disabled", "err", err)
		return nil, noop, nil
	}

	logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)
	return client, func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("failed to close Neo4j client", "err", err)
		}
	}, nil
}

// provideLeadRepository returns nil when no graph is available
func provideLeadRepository(client *n4j.Client) *storage.LeadRepository {
	if client == nil {
		return nil
	}
	return storage.NewLeadRepository(client)
}

// provideLeadRecorder keeps the recorder a nil interface without a repository
func provideLeadRecorder(repo *storage.LeadRepository) lead.Recorder {
	if repo == nil {
		return nil
	}
	return repo
}

// provideLeadLookup keeps the lookup a nil interface without a repository
func provideLeadLookup(repo *storage.LeadRepository) lead.Lookup {
	if repo == nil {
		return nil
	}
	return repo
}

// provideLeadService builds the forwarding service
func provideLeadService(client *apollo.Client, recorder lead.Recorder, logger *logging.Logger) (lead.Service, error) {
	opts := []lead.Option{
		lead.WithClient(client),
		lead.WithLogger(logger.Named("leads")),
	}
	if recorder != nil {
		opts = append(opts, lead.WithRecorder(recorder))
	}
	return lead.NewService(opts...)
}

// provideSheetsClient returns nil when Sheets is not configured or unreachable
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) *sheets.Client {
	if !cfg.SheetsEnabled() {
		return nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client, leads_export disabled", "err", err)
		return nil
	}

	logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.Sheets.SpreadsheetID, "tab", cfg.Sheets.Tab)
	return client
}

// newResources creates Resources struct
func newResources(leads lead.Service, graph lead.Lookup, sheetsClient *sheets.Client, recorder lead.Recorder, cfg config.Config) *Resources {
	return &Resources{
		Leads:  leads,
		Graph:  graph,
		Sheets: sheetsClient,
		SheetDefaults: tools.SheetDefaults{
			SpreadsheetID: cfg.Sheets.SpreadsheetID,
			Tab:           cfg.Sheets.Tab,
		},
		Recording: recorder != nil,
	}
}
