// Package relation implements immutable in-memory relations and the
// operators that compose queries over them: filter, project, sort, group and
// aggregate, equi-join and set operations.
//
// A Relation is a value. Operators never modify their inputs; each returns a
// freshly built Relation, so a Relation may be shared freely between callers
// and goroutines once constructed.
package relation

import (
	"sort"
	"strings"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/errors"
)

// Relation is an ordered sequence of records.
// declared lists fields known from a table schema, so an empty relation still
// knows its columns.
type Relation struct {
	name     string
	declared []string
	records  []data.Record
}

// Load creates a Relation over a copy of records
func Load(records []data.Record) Relation {
	rs := make([]data.Record, len(records))
	copy(rs, records)
	return Relation{records: rs}
}

// FromMaps builds a Relation from plain maps, one record per map
func FromMaps(rows ...map[string]any) Relation {
	rs := make([]data.Record, len(rows))
	for i, m := range rows {
		rs[i] = data.NewRecord(m)
	}
	return Relation{records: rs}
}

// Of builds a Relation from records given inline
func Of(records ...data.Record) Relation {
	return Load(records)
}

// wrap takes ownership of rs; only for slices built inside this package
func wrap(name string, rs []data.Record) Relation {
	return Relation{name: name, records: rs}
}

// derive builds a relation of the same shape as r over rs (takes ownership)
func (r Relation) derive(rs []data.Record) Relation {
	return Relation{name: r.name, declared: r.declared, records: rs}
}

// Named returns the same relation carrying a name used in errors and logs
func (r Relation) Named(name string) Relation {
	return Relation{name: name, declared: r.declared, records: r.records}
}

// WithFields returns the same relation with declared field names, typically
// the columns of the table it was loaded from. Declared fields count as
// present for field checks and appear in outer-join placeholders even when
// the relation is empty.
func (r Relation) WithFields(fields ...string) Relation {
	declared := make([]string, len(fields))
	copy(declared, fields)
	return Relation{name: r.name, declared: declared, records: r.records}
}

// Name returns the relation name (may be empty)
func (r Relation) Name() string {
	return r.name
}

// Len returns the number of records
func (r Relation) Len() int {
	return len(r.records)
}

// IsEmpty reports whether the relation has no records
func (r Relation) IsEmpty() bool {
	return len(r.records) == 0
}

// Records returns a copy of the record slice
func (r Relation) Records() []data.Record {
	out := make([]data.Record, len(r.records))
	copy(out, r.records)
	return out
}

// At returns the i-th record
func (r Relation) At(i int) data.Record {
	return r.records[i]
}

// Fields returns the union of declared field names and field names across
// all records, sorted
func (r Relation) Fields() []string {
	seen := make(map[string]bool)
	for _, f := range r.declared {
		seen[f] = true
	}
	for _, rec := range r.records {
		for _, f := range rec.Fields() {
			seen[f] = true
		}
	}
	names := make([]string, 0, len(seen))
	for f := range seen {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// HasField reports whether field is declared or at least one record carries it
func (r Relation) HasField(field string) bool {
	for _, f := range r.declared {
		if f == field {
			return true
		}
	}
	for _, rec := range r.records {
		if rec.Has(field) {
			return true
		}
	}
	return false
}

// requireField fails with InvalidFieldError when the relation is non-empty
// and no record carries field. An empty relation has no schema to check.
func (r Relation) requireField(field, op string) error {
	if len(r.records) == 0 || r.HasField(field) {
		return nil
	}
	return errors.NewFieldNotFound(r.name, field, op)
}

// String renders the relation one record per line
func (r Relation) String() string {
	var b strings.Builder
	if r.name != "" {
		b.WriteString(r.name)
		b.WriteString(" ")
	}
	b.WriteString("[")
	for i, rec := range r.records {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n  ")
		b.WriteString(rec.String())
	}
	if len(r.records) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

// Equal reports whether a and b hold equal records in the same order
func Equal(a, b Relation) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.records {
		if !a.records[i].Equal(b.records[i]) {
			return false
		}
	}
	return true
}

// EqualInAnyOrder reports whether a and b hold the same multiset of records
func EqualInAnyOrder(a, b Relation) bool {
	if a.Len() != b.Len() {
		return false
	}
	counts := make(map[string]int, a.Len())
	for _, rec := range a.records {
		counts[rec.Key()]++
	}
	for _, rec := range b.records {
		k := rec.Key()
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}
