package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
	dbpkg "github.com/rezangit/building-access-analyzer/internal/db"
)

// EventStore archives imported access-log rows in SQLite.  All writes
// funnel through the single-writer worker; reads go straight to the
// connection.
type EventStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewEventStore(db *sql.DB, writer *dbpkg.Worker) *EventStore {
	return &EventStore{db: db, writer: writer}
}

func (s *EventStore) ImportEvents(ctx context.Context, recs []types.Record, importedAt time.Time) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}
	if importedAt.IsZero() {
		importedAt = time.Now().UTC()
	}
	importedMs := importedAt.UTC().UnixMilli()

	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO access_events(
  unit_number, card_batch, card_number, access_timestamp, imported_at_ms
) VALUES (?, ?, ?, ?, ?);
`)
		if err != nil {
			return fmt.Errorf("ImportEvents prepare: %w", err)
		}
		defer stmt.Close()

		for _, rec := range recs {
			// Raw column values, not the trimmed accessors: the archive
			// round-trips rows exactly as loaded.
			if _, err := stmt.ExecContext(ctx,
				rec[types.FieldFirstName],
				rec[types.FieldBatch],
				rec[types.FieldNumber],
				rec[types.FieldTimestamp],
				importedMs,
			); err != nil {
				return fmt.Errorf("ImportEvents insert: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int64(len(recs)), nil
}

func (s *EventStore) ListEvents(ctx context.Context) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT unit_number, card_batch, card_number, access_timestamp
FROM access_events
ORDER BY id;
`)
	if err != nil {
		return nil, fmt.Errorf("ListEvents query: %w", err)
	}
	defer rows.Close()

	var out []types.Record
	for rows.Next() {
		var unit, batch, number, ts string
		if err := rows.Scan(&unit, &batch, &number, &ts); err != nil {
			return nil, fmt.Errorf("ListEvents scan: %w", err)
		}
		out = append(out, types.Record{
			types.FieldFirstName: unit,
			types.FieldBatch:     batch,
			types.FieldNumber:    number,
			types.FieldTimestamp: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEvents rows: %w", err)
	}
	return out, nil
}

// PruneOlderThan deletes archive rows imported before the cutoff.
// Uses the idx_access_events_imported index for the range scan.
func (s *EventStore) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cutoffMs := cutoff.UTC().UnixMilli()

	var deleted int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
DELETE FROM access_events
WHERE imported_at_ms < ?;
`, cutoffMs)
		if err != nil {
			return fmt.Errorf("PruneOlderThan: %w", err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	return deleted, err
}
