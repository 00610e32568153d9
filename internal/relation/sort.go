package relation

import (
	"slices"

	"github.com/leengari/relq/internal/domain/data"
)

// Direction of a sort key
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// SortKey is one (field, direction) pair of a multi-key sort
type SortKey struct {
	Field     string
	Direction Direction
}

// Asc sorts by field in ascending order
func Asc(field string) SortKey {
	return SortKey{Field: field, Direction: Ascending}
}

// Desc sorts by field in descending order
func Desc(field string) SortKey {
	return SortKey{Field: field, Direction: Descending}
}

// SortBy returns the records ordered by keys.
// Ties on a key are broken by the next key; records equal on every key keep
// their input order. Comparison is numeric for numbers, lexicographic for
// strings and chronological for dates (see data.Compare). A key absent from
// every record of a non-empty relation is an InvalidFieldError.
func (r Relation) SortBy(keys ...SortKey) (Relation, error) {
	for _, k := range keys {
		if err := r.requireField(k.Field, "sort"); err != nil {
			return Relation{}, err
		}
	}
	return r.SortFunc(func(a, b data.Record) int {
		for _, k := range keys {
			c := data.Compare(a.Get(k.Field), b.Get(k.Field))
			if c == 0 {
				continue
			}
			if k.Direction == Descending {
				return -c
			}
			return c
		}
		return 0
	}), nil
}

// SortFunc orders the records with a three-way comparator, stably
func (r Relation) SortFunc(cmp func(a, b data.Record) int) Relation {
	result := r.Records()
	slices.SortStableFunc(result, cmp)
	return r.derive(result)
}
