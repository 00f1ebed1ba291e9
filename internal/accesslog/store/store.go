package store

import (
	"context"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

// EventStore persists imported access-log rows so reports can be run
// across many import batches.  Rows are archived verbatim; the
// aggregators apply their own inclusion rules at report time, so even
// defective rows (no unit, bad timestamp) are kept.
type EventStore interface {
	// ImportEvents appends a batch of records stamped with importedAt.
	// Returns the number of rows archived.
	ImportEvents(ctx context.Context, recs []types.Record, importedAt time.Time) (int64, error)

	// ListEvents returns all archived records in import order.
	ListEvents(ctx context.Context) ([]types.Record, error)

	// PruneOlderThan deletes rows imported before cutoff and returns
	// the number deleted.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
