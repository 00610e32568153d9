package data

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Record represents a single row
// Key = field name, Value = scalar value. A Record is never modified after
// construction; every method that changes content returns a new Record.
type Record struct {
	fields map[string]any
}

// NewRecord creates a Record from the given map.
// The map is copied and its values normalized, so later changes to m are not
// observed by the record.
func NewRecord(m map[string]any) Record {
	fields := make(map[string]any, len(m))
	for k, v := range m {
		fields[k] = Normalize(v)
	}
	return Record{fields: fields}
}

// R is shorthand for NewRecord, handy in fixtures and expectations
func R(m map[string]any) Record {
	return NewRecord(m)
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r.fields)
}

// IsZero reports whether the record has no fields
func (r Record) IsZero() bool {
	return len(r.fields) == 0
}

// Get returns the value of field, or Missing when the record does not carry it
func (r Record) Get(field string) any {
	v, ok := r.fields[field]
	if !ok {
		return Missing
	}
	return v
}

// Lookup returns the value of field and whether it was present
func (r Record) Lookup(field string) (any, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Has reports whether the record carries field (a null value counts)
func (r Record) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Fields returns the field names in sorted order
func (r Record) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying field map
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		m[k] = v
	}
	return m
}

// With returns a copy of the record with field set to value
func (r Record) With(field string, value any) Record {
	m := r.Map()
	m[field] = Normalize(value)
	return Record{fields: m}
}

// Without returns a copy of the record without the given fields
func (r Record) Without(fields ...string) Record {
	m := r.Map()
	for _, f := range fields {
		delete(m, f)
	}
	return Record{fields: m}
}

// Rename returns a copy of the record with field old renamed to new.
// Renaming an absent field returns the record unchanged.
func (r Record) Rename(old, new string) Record {
	v, ok := r.fields[old]
	if !ok {
		return r
	}
	m := r.Map()
	delete(m, old)
	m[new] = v
	return Record{fields: m}
}

// Pick returns a new record holding only the named fields that r carries
func (r Record) Pick(fields ...string) Record {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := r.fields[f]; ok {
			m[f] = v
		}
	}
	return Record{fields: m}
}

// Merge combines two records. Fields of r win over fields of other.
func (r Record) Merge(other Record) Record {
	m := other.Map()
	for k, v := range r.fields {
		m[k] = v
	}
	return Record{fields: m}
}

// Equal reports whether both records carry the same fields with the same
// values. Unlike value Equal, null fields compare equal to null fields here:
// two records are the same row if they print the same.
func (r Record) Equal(other Record) bool {
	return r.Key() == other.Key()
}

// Key returns a canonical string identifying the record's content.
// Records with equal keys are considered duplicates by Distinct.
func (r Record) Key() string {
	var b strings.Builder
	for _, f := range r.Fields() {
		v := r.fields[f]
		fmt.Fprintf(&b, "%q=%T:%#v;", f, Key(v), Key(v))
	}
	return b.String()
}

// String returns a deterministic representation for debugging and diffs
func (r Record) String() string {
	parts := make([]string, 0, len(r.fields))
	for _, f := range r.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, Format(r.fields[f])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON implements json.Marshaler interface
// Dates are written in DateLayout form.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		switch x := v.(type) {
		case missing:
			continue
		case time.Time:
			out[k] = x.Format(DateLayout)
		default:
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler interface
// Whole numbers decode as int64, other numbers as float64.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	for k, v := range m {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				m[k] = i
			} else if f, err := n.Float64(); err == nil {
				m[k] = f
			} else {
				return fmt.Errorf("field %s: invalid number %s", k, n)
			}
		}
	}
	*r = NewRecord(m)
	return nil
}
