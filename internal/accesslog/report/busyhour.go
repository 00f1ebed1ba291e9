package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/types"
)

// BusyHeader is the first line of the busy-hour report, present even
// when no record qualifies.
const BusyHeader = "Unit Number (First Name),Busiest Time(s) (Hour:Minute)"

// BusyHours maps each unit to the hour-of-day bucket(s) with the most
// recorded accesses.  A record contributes only when it has a unit
// number and a parseable timestamp; a unit with no parseable timestamp
// at all is omitted from the report, not rendered with an empty field.
// Tied maximal hours are listed ascending.
func BusyHours(records []types.Record) Report {
	hist := make(map[string]map[int]int)

	for _, rec := range records {
		unit := rec.UnitNumber()
		if unit == "" {
			continue
		}
		t, ok := rec.AccessTime()
		if !ok {
			continue
		}

		hours, ok := hist[unit]
		if !ok {
			hours = make(map[int]int)
			hist[unit] = hours
		}
		hours[t.Hour()]++
	}

	rep := Report{Header: BusyHeader}
	for _, unit := range sortedKeys(hist) {
		rep.Rows = append(rep.Rows, Row{Unit: unit, Detail: busiestHours(hist[unit])})
	}
	return rep
}

// busiestHours renders every hour achieving the histogram's maximum
// count as "H:00" (no leading zero; minute detail is not preserved),
// ascending, joined with "; ".
func busiestHours(hours map[int]int) string {
	max := 0
	for _, n := range hours {
		if n > max {
			max = n
		}
	}

	var tied []int
	for h, n := range hours {
		if n == max {
			tied = append(tied, h)
		}
	}
	sort.Ints(tied)

	out := make([]string, 0, len(tied))
	for _, h := range tied {
		out = append(out, strconv.Itoa(h)+":00")
	}
	return strings.Join(out, "; ")
}
