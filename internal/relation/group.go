package relation

import (
	"fmt"
	"log/slog"

	"github.com/leengari/relq/internal/aggregate"
	"github.com/leengari/relq/internal/domain/data"
)

// Group is one partition produced by GroupBy
type Group struct {
	Key  any      // shared value of the grouping field (data.Missing for records without it)
	Rows Relation // members, in input order
}

// Len returns the group cardinality
func (g Group) Len() int {
	return g.Rows.Len()
}

// Groups is the result of GroupBy, ordered by first occurrence of each key
type Groups struct {
	field  string
	groups []Group
}

// GroupBy partitions the relation by the distinct values of key.
// Within a group the input order is preserved.
func (r Relation) GroupBy(key string) (Groups, error) {
	if err := r.requireField(key, "group by"); err != nil {
		return Groups{}, err
	}

	index := make(map[any]int)
	var buckets [][]data.Record
	var keys []any
	for _, rec := range r.records {
		v := rec.Get(key)
		k := data.Key(v)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, nil)
			keys = append(keys, v)
		}
		buckets[i] = append(buckets[i], rec)
	}

	groups := make([]Group, len(buckets))
	for i, rs := range buckets {
		groups[i] = Group{Key: keys[i], Rows: r.derive(rs)}
	}

	slog.Debug("grouped relation",
		slog.String("relation", r.name),
		slog.String("key", key),
		slog.Int("rows", len(r.records)),
		slog.Int("groups", len(groups)),
	)

	return Groups{field: key, groups: groups}, nil
}

// Field returns the grouping field
func (g Groups) Field() string {
	return g.field
}

// Len returns the number of groups
func (g Groups) Len() int {
	return len(g.groups)
}

// List returns the groups in first-occurrence order
func (g Groups) List() []Group {
	out := make([]Group, len(g.groups))
	copy(out, g.groups)
	return out
}

// Get returns the group with the given key
func (g Groups) Get(key any) (Group, bool) {
	k := data.Key(key)
	for _, grp := range g.groups {
		if data.Key(grp.Key) == k {
			return grp, true
		}
	}
	return Group{}, false
}

// Having keeps the groups for which pred is true.
// pred sees whole groups, so it can test cardinality before any aggregation.
func (g Groups) Having(pred func(Group) bool) Groups {
	var kept []Group
	for _, grp := range g.groups {
		if pred(grp) {
			kept = append(kept, grp)
		}
	}
	return Groups{field: g.field, groups: kept}
}

// Flatten concatenates all groups back into a single relation
func (g Groups) Flatten() Relation {
	var rs []data.Record
	name := ""
	for _, grp := range g.groups {
		rs = append(rs, grp.Rows.records...)
		name = grp.Rows.name
	}
	return wrap(name, rs)
}

// Reducer is one aggregate computed per group
type Reducer struct {
	Op    aggregate.Op
	Field string // input field (ignored by OpCount)
	As    string // output field name
}

// CountAs counts the records of each group
func CountAs(as string) Reducer { return Reducer{Op: aggregate.OpCount, As: as} }

// SumOf sums field per group
func SumOf(field, as string) Reducer { return Reducer{Op: aggregate.OpSum, Field: field, As: as} }

// AverageOf averages field per group
func AverageOf(field, as string) Reducer {
	return Reducer{Op: aggregate.OpAverage, Field: field, As: as}
}

// MaxOf takes the greatest value of field per group
func MaxOf(field, as string) Reducer { return Reducer{Op: aggregate.OpMax, Field: field, As: as} }

// MinOf takes the least value of field per group
func MinOf(field, as string) Reducer { return Reducer{Op: aggregate.OpMin, Field: field, As: as} }

// Aggregate produces one record per group: {keyName: group key, r.As: value...}.
// keyName defaults to the grouping field. The first reducer error aborts the
// whole call; no partial result is returned.
func (g Groups) Aggregate(keyName string, reducers ...Reducer) (Relation, error) {
	if keyName == "" {
		keyName = g.field
	}

	out := make([]data.Record, 0, len(g.groups))
	for _, grp := range g.groups {
		fields := map[string]any{keyName: grp.Key}
		for _, red := range reducers {
			v, err := aggregate.Apply(red.Op, grp.Rows.records, red.Field)
			if err != nil {
				return Relation{}, fmt.Errorf("%s(%s) for %s = %s: %w",
					red.Op, red.Field, g.field, data.Format(grp.Key), grp.Rows.annotate(err))
			}
			fields[red.As] = v
		}
		out = append(out, data.NewRecord(fields))
	}
	return wrap("", out), nil
}
