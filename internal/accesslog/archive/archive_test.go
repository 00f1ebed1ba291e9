package archive_test

import (
	"context"
	"testing"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/archive"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/report"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/store/memory"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

func rec(unit, batch, number, ts string) types.Record {
	return types.Record{
		types.FieldFirstName: unit,
		types.FieldBatch:     batch,
		types.FieldNumber:    number,
		types.FieldTimestamp: ts,
	}
}

func TestArchive_ImportThenSnapshot(t *testing.T) {
	arch := archive.New(memory.NewEventStore())
	ctx := context.Background()

	n, err := arch.Import(ctx, []types.Record{
		rec("unit101", "210", "54321", "2023-05-15T08:30:00"),
		rec("unit102", "220", "65432", "2023-05-15T09:15:00"),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported, got %d", n)
	}

	got, err := arch.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].UnitNumber() != "unit101" {
		t.Errorf("expected unit101 first, got %q", got[0].UnitNumber())
	}
}

func TestArchive_SnapshotAccumulatesAcrossImports(t *testing.T) {
	arch := archive.New(memory.NewEventStore())
	ctx := context.Background()

	if _, err := arch.Import(ctx, []types.Record{rec("unit101", "210", "54321", "")}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := arch.Import(ctx, []types.Record{rec("unit102", "220", "65432", "")}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	got, err := arch.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected reports to span both imports, got %d records", len(got))
	}
}

func TestArchive_SnapshotFeedsAggregators(t *testing.T) {
	arch := archive.New(memory.NewEventStore())
	ctx := context.Background()

	if _, err := arch.Import(ctx, []types.Record{
		rec("unit104", "240", "87654", "2023-05-15T14:20:00"),
		rec("unit104", "250", "98765", "2023-05-15T14:25:00"),
	}); err != nil {
		t.Fatalf("Import: %v", err)
	}

	records, err := arch.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	fob := report.UnitFobs(records)
	want := report.FobHeader + "\nunit104,240-87654; 250-98765"
	if got := fob.Render(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
