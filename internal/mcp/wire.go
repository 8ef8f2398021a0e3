//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/apollo-mcp/internal/config"
	"github.com/honeycarbs/apollo-mcp/pkg/apollo"
	"github.com/honeycarbs/apollo-mcp/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Infrastructure - Apollo
		provideApolloConfig,
		apollo.NewClient,

		// Infrastructure - optional sinks
		provideNeo4jClient,
		provideLeadRepository,
		provideLeadRecorder,
		provideLeadLookup,
		provideSheetsClient,

		// Services
		provideLeadService,

		newResources,
	)

	return nil, nil, nil
}
