// Package archive maintains the long-lived store of imported access-log
// rows and its retention policy.
package archive

import (
	"context"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/store"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

// Archive wraps an EventStore with the operations the CLI and the
// report API need.
type Archive struct {
	store store.EventStore
}

func New(st store.EventStore) *Archive {
	return &Archive{store: st}
}

// Import appends a batch of records, stamped with the current time.
// Records are archived verbatim; nothing is validated or excluded here.
func (a *Archive) Import(ctx context.Context, recs []types.Record) (int64, error) {
	return a.store.ImportEvents(ctx, recs, time.Now().UTC())
}

// Snapshot returns all archived records in import order, ready to feed
// the aggregators.
func (a *Archive) Snapshot(ctx context.Context) ([]types.Record, error) {
	return a.store.ListEvents(ctx)
}

// PruneOlderThan deletes rows imported before the cutoff.
func (a *Archive) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return a.store.PruneOlderThan(ctx, cutoff)
}
