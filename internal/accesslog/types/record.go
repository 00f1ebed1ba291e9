package types

import (
	"strings"
	"time"
)

// Canonical column names in the access-control export.  Extra columns
// (UnitID, CardLastName, door ids, ...) are carried in the Record but
// ignored by the reports.
const (
	FieldFirstName = "CardFirstName"
	FieldBatch     = "CardBatch"
	FieldNumber    = "CardNumber"
	FieldTimestamp = "AccessTimestamp"
)

// TimestampLayout is the local datetime format the access-control system
// writes.  No timezone suffix; anything that deviates fails the parse.
const TimestampLayout = "2006-01-02T15:04:05"

// Record is one row of the access log, keyed by column name.  Records are
// built once by the loader and treated as read-only afterwards.
type Record map[string]string

// Field returns the trimmed value of the named column.  A missing column
// reads as the empty string; every consumer goes through this accessor so
// the missing-field-is-empty contract is enforced in one place.
func (r Record) Field(name string) string {
	return strings.TrimSpace(r[name])
}

// UnitNumber is the grouping key for both reports: the trimmed
// first-name column.  Empty means the record belongs to no unit.
func (r Record) UnitNumber() string {
	return r.Field(FieldFirstName)
}

// FobID derives the credential identifier batch-number.  Either side may
// be empty; "-54321" and "210-" are valid ids and two records match iff
// both sides match exactly.
func (r Record) FobID() string {
	return r.Field(FieldBatch) + "-" + r.Field(FieldNumber)
}

// AccessTime parses the record's timestamp.  Returns false for an empty
// or malformed value; callers skip such records rather than erroring.
func (r Record) AccessTime() (time.Time, bool) {
	raw := r.Field(FieldTimestamp)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
