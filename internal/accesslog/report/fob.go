package report

import (
	"sort"
	"strings"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

// FobHeader is the first line of the fob report, present even when no
// record qualifies.
const FobHeader = "Unit Number (First Name),Fob IDs (CardBatch-CardNumber)"

// UnitFobs maps each unit to the distinct credential ids observed for
// it.  Records without a unit number are excluded entirely.  Duplicate
// (batch, number) pairs for a unit collapse to one entry.
func UnitFobs(records []types.Record) Report {
	unitFobs := make(map[string]map[string]struct{})

	for _, rec := range records {
		unit := rec.UnitNumber()
		if unit == "" {
			continue
		}

		fobs, ok := unitFobs[unit]
		if !ok {
			fobs = make(map[string]struct{})
			unitFobs[unit] = fobs
		}
		fobs[rec.FobID()] = struct{}{}
	}

	rep := Report{Header: FobHeader}
	for _, unit := range sortedKeys(unitFobs) {
		ids := make([]string, 0, len(unitFobs[unit]))
		for id := range unitFobs[unit] {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		rep.Rows = append(rep.Rows, Row{Unit: unit, Detail: strings.Join(ids, "; ")})
	}
	return rep
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
