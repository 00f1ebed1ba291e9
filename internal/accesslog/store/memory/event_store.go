package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

type entry struct {
	rec        types.Record
	importedAt time.Time
}

// EventStore is an in-memory event archive for tests and dev runs.
type EventStore struct {
	mu      sync.Mutex
	entries []entry
}

func NewEventStore() *EventStore {
	return &EventStore{}
}

func (s *EventStore) ImportEvents(_ context.Context, recs []types.Record, importedAt time.Time) (int64, error) {
	if importedAt.IsZero() {
		importedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		s.entries = append(s.entries, entry{rec: rec, importedAt: importedAt})
	}
	return int64(len(recs)), nil
}

func (s *EventStore) ListEvents(_ context.Context) ([]types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Record, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.rec
	}
	return out, nil
}

func (s *EventStore) PruneOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	var deleted int64
	for _, e := range s.entries {
		if e.importedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return deleted, nil
}
