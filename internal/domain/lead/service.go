package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/honeycarbs/apollo-mcp/pkg/logging"
)

// Poster sends a raw JSON body to an Apollo endpoint
type Poster interface {
	Post(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error)
}

type Service interface {
	// Forward sends args to the endpoint behind op and returns the upstream
	// payload unchanged
	Forward(ctx context.Context, op Operation, args json.RawMessage) (json.RawMessage, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	client   Poster
	recorder Recorder
	logger   *logging.Logger
	clock    func() time.Time
}

// WithClient sets the upstream client
func WithClient(client Poster) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithRecorder sets an optional lead sink
func WithRecorder(recorder Recorder) Option {
	return func(c *config) {
		c.recorder = recorder
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:  time.Now,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.client == nil {
		return nil, fmt.Errorf("lead.Service: client is required")
	}

	return &service{
		client:   cfg.client,
		recorder: cfg.recorder,
		logger:   cfg.logger,
		clock:    cfg.clock,
	}, nil
}

type service struct {
	client   Poster
	recorder Recorder
	logger   *logging.Logger
	clock    func() time.Time
}

func (s *service) Forward(ctx context.Context, op Operation, args json.RawMessage) (json.RawMessage, error) {
	path, ok := op.Path()
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	payload, err := s.client.Post(ctx, path, args)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.record(ctx, op, payload)
	}

	return payload, nil
}

// record never fails the call; sink errors are only logged
func (s *service) record(ctx context.Context, op Operation, payload json.RawMessage) {
	batch, err := Extract(op, payload, s.clock().UTC())
	if err != nil {
		s.logger.Warn("lead extraction failed", "operation", op, "err", err)
		return
	}

	if batch.Pagination != nil {
		s.logger.Debug("apollo pagination",
			"operation", op,
			"page", batch.Pagination.Page,
			"total_entries", batch.Pagination.TotalEntries,
		)
	}

	if batch.Empty() {
		return
	}

	if err := s.recorder.Record(ctx, batch); err != nil {
		s.logger.Warn("lead recording failed",
			"operation", op,
			"organizations", len(batch.Organizations),
			"people", len(batch.People),
			"err", err,
		)
		return
	}

	s.logger.Debug("leads recorded",
		"operation", op,
		"organizations", len(batch.Organizations),
		"people", len(batch.People),
	)
}
