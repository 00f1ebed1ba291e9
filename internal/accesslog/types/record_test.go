package types_test

import (
	"testing"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

func TestField_MissingColumn_EmptyString(t *testing.T) {
	rec := types.Record{}

	if got := rec.Field(types.FieldBatch); got != "" {
		t.Errorf("expected empty string for missing column, got %q", got)
	}
}

func TestField_TrimsWhitespace(t *testing.T) {
	rec := types.Record{types.FieldFirstName: "  unit101 \t"}

	if got := rec.UnitNumber(); got != "unit101" {
		t.Errorf("expected trimmed unit101, got %q", got)
	}
}

func TestFobID_BothSides(t *testing.T) {
	rec := types.Record{types.FieldBatch: "210", types.FieldNumber: "54321"}

	if got := rec.FobID(); got != "210-54321" {
		t.Errorf("expected 210-54321, got %q", got)
	}
}

func TestFobID_EmptySidesKeepSeparator(t *testing.T) {
	cases := []struct {
		batch, number, want string
	}{
		{"", "54321", "-54321"},
		{"210", "", "210-"},
		{"", "", "-"},
	}
	for _, c := range cases {
		rec := types.Record{types.FieldBatch: c.batch, types.FieldNumber: c.number}
		if got := rec.FobID(); got != c.want {
			t.Errorf("batch=%q number=%q: expected %q, got %q", c.batch, c.number, c.want, got)
		}
	}
}

func TestAccessTime_Valid(t *testing.T) {
	rec := types.Record{types.FieldTimestamp: "2023-05-15T08:30:00"}

	got, ok := rec.AccessTime()
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2023, 5, 15, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAccessTime_Invalid(t *testing.T) {
	for _, ts := range []string{"", "   ", "yesterday", "2023-05-15", "15:04:05"} {
		rec := types.Record{types.FieldTimestamp: ts}
		if _, ok := rec.AccessTime(); ok {
			t.Errorf("timestamp %q: expected parse failure", ts)
		}
	}
}

func TestEventRequest_Record_RoundTrip(t *testing.T) {
	req := types.EventRequest{
		UnitNumber:      "unit101",
		CardBatch:       "210",
		CardNumber:      "54321",
		AccessTimestamp: "2023-05-15T08:30:00",
	}

	rec := req.Record()
	if rec.UnitNumber() != "unit101" {
		t.Errorf("expected unit101, got %q", rec.UnitNumber())
	}
	if rec.FobID() != "210-54321" {
		t.Errorf("expected 210-54321, got %q", rec.FobID())
	}
	if _, ok := rec.AccessTime(); !ok {
		t.Error("expected timestamp to parse")
	}
}
