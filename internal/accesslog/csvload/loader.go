// Package csvload reads access-control CSV exports into record sequences.
// Loading is a pure function of the input; it performs no aggregation and
// holds no state, so the reports stay testable without touching the
// filesystem.
package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

// Load reads the CSV file at path and returns one Record per data row.
// The first row is the header.  A missing or unreadable file returns an
// error; callers are expected to log it and continue with an empty
// sequence rather than abort.
func Load(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}

// Parse decodes CSV from r.  Each data row is zipped against the header
// row by position; short rows leave trailing columns unset and surplus
// cells are dropped.  An input with no header yields an empty sequence.
func Parse(r io.Reader) ([]types.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are a data defect, not a load failure

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	var out []types.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(out)+2, err)
		}

		rec := make(types.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		out = append(out, rec)
	}

	return out, nil
}
