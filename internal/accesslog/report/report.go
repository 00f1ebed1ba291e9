// Package report implements the two aggregate reports derived from the
// access log: the fob-to-unit mapping and the busiest access hour per
// unit.  Aggregation is a pure function of the input records; rendering
// and sinks live elsewhere.
package report

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Row is one unit's line in a report: the unit number plus the report's
// detail column ("; "-joined fob ids or hours).
type Row struct {
	Unit   string
	Detail string
}

// Report is a fixed header line plus one row per unit, units in
// ascending bytewise order.  Immutable once produced.
type Report struct {
	Header string
	Rows   []Row
}

// Render produces the CSV text of the report: header first, then one
// unit,detail line per row.  No trailing newline, mirroring the upstream
// export format.
func (r Report) Render() string {
	lines := make([]string, 0, len(r.Rows)+1)
	lines = append(lines, r.Header)
	for _, row := range r.Rows {
		lines = append(lines, row.Unit+","+row.Detail)
	}
	return strings.Join(lines, "\n")
}

// Table renders the report as a bordered terminal table for console
// display.  File output always uses Render.
func (r Report) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	// Keep the report's column titles verbatim.
	tw.Style().Format.Header = text.FormatDefault

	cols := strings.SplitN(r.Header, ",", 2)
	if len(cols) == 2 {
		tw.AppendHeader(table.Row{cols[0], cols[1]})
	} else {
		tw.AppendHeader(table.Row{r.Header})
	}

	for _, row := range r.Rows {
		tw.AppendRow(table.Row{row.Unit, row.Detail})
	}
	return tw.Render()
}
