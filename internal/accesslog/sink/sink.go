// Package sink writes rendered reports to their destinations.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteFile writes content to path, creating parent directories as
// needed.  The file handle is closed on every exit path.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// TimestampedPath builds a run-stamped report filename inside dir,
// e.g. reports/unit_fob_report_20260830_141502.csv.
func TimestampedPath(dir, prefix string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_report_%s.csv", prefix, t.Format("20060102_150405")))
}
