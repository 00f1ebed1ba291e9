package sink_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/sink"
)

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "nested", "out.csv")

	if err := sink.WriteFile(path, "header\nrow"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "header\nrow" {
		t.Errorf("expected content written verbatim, got %q", got)
	}
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := sink.WriteFile(path, "first"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := sink.WriteFile(path, "second"); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestTimestampedPath_Pattern(t *testing.T) {
	at := time.Date(2023, 5, 15, 14, 30, 45, 0, time.UTC)

	got := sink.TimestampedPath("reports", "unit_fob", at)
	want := filepath.Join("reports", "unit_fob_report_20230515_143045.csv")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
