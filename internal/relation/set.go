package relation

import "github.com/leengari/relq/internal/domain/data"

// UnionAll concatenates a and b. The records need not share a schema;
// downstream operators must tolerate heterogeneous records.
func UnionAll(a, b Relation) Relation {
	rs := make([]data.Record, 0, a.Len()+b.Len())
	rs = append(rs, a.records...)
	rs = append(rs, b.records...)
	name := a.name
	if name != b.name {
		name = ""
	}
	return wrap(name, rs)
}

// Union concatenates a and b and drops duplicate records
func Union(a, b Relation) Relation {
	return UnionAll(a, b).Distinct()
}

// DistinctBy keeps the first record (in input order) for each distinct value
// of field and drops later duplicates
func (r Relation) DistinctBy(field string) (Relation, error) {
	if err := r.requireField(field, "distinct"); err != nil {
		return Relation{}, err
	}
	seen := make(map[any]bool)
	var result []data.Record
	for _, rec := range r.records {
		k := data.Key(rec.Get(field))
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, rec)
	}
	return r.derive(result), nil
}

// Distinct drops records equal to an earlier record, field for field
func (r Relation) Distinct() Relation {
	seen := make(map[string]bool)
	var result []data.Record
	for _, rec := range r.records {
		k := rec.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, rec)
	}
	return r.derive(result)
}
