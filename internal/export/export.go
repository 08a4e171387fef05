// Package export serializes the full ledger to external sinks.
package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ledger/internal/core"
)

// Sink receives a full dump of the ledger in store order.
type Sink interface {
	Name() string
	Write(ctx context.Context, records []core.ExpenseRecord) error
}

// Export writes records to every sink concurrently. The first failure
// cancels the context the remaining sinks observe.
func Export(ctx context.Context, records []core.ExpenseRecord, sinks ...Sink) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sink := range sinks {
		g.Go(func() error {
			if err := sink.Write(ctx, records); err != nil {
				return fmt.Errorf("%s sink: %w", sink.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
