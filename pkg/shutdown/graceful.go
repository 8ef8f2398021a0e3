package shutdown

import (
	"context"
	"time"

	"github.com/honeycarbs/apollo-mcp/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until ctx is done, then stops s within timeout.
// ctx is normally produced by signal.NotifyContext.
func Graceful(ctx context.Context, s Stoppable, timeout time.Duration, log *logging.Logger) error {
	<-ctx.Done()
	log.Info("shutdown signal received", "cause", context.Cause(ctx))

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := s.Shutdown(stopCtx); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
		return err
	}

	log.Info("graceful shutdown completed successfully")
	return nil
}
