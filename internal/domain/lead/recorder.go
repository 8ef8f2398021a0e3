package lead

import (
	"context"
	"errors"
)

// Recorder persists leads returned by Apollo
type Recorder interface {
	// Record merges the batch into storage keyed by Apollo id
	Record(ctx context.Context, batch Batch) error
}

// Recorders fans a batch out to every recorder and joins their errors
type Recorders []Recorder

func (rs Recorders) Record(ctx context.Context, batch Batch) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.Record(ctx, batch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
