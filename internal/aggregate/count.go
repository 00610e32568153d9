package aggregate

import (
	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/errors"
)

// Count is the number of records sharing one key value
type Count struct {
	Key any
	N   int
}

// Counts is the result of CountByKey, in first-occurrence order of the keys
type Counts struct {
	entries []Count
	index   map[any]int
}

// Entries returns the counts in first-occurrence order
func (c Counts) Entries() []Count {
	out := make([]Count, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of distinct keys
func (c Counts) Len() int {
	return len(c.entries)
}

// Get returns the count for key (0 when the key never occurred)
func (c Counts) Get(key any) int {
	i, ok := c.index[data.Key(key)]
	if !ok {
		return 0
	}
	return c.entries[i].N
}

// Keys returns the keys whose count satisfies pred, in first-occurrence order
func (c Counts) Keys(pred func(key any, n int) bool) []any {
	var out []any
	for _, e := range c.entries {
		if pred == nil || pred(e.Key, e.N) {
			out = append(out, e.Key)
		}
	}
	return out
}

// CountByKey counts the records of rs per distinct value of r[key].
// Records that do not carry key are counted under data.Missing.
func CountByKey(rs []data.Record, key string) (Counts, error) {
	c := Counts{index: make(map[any]int)}
	present := false
	for _, r := range rs {
		v := r.Get(key)
		if !data.IsMissing(v) {
			present = true
		}
		k := data.Key(v)
		i, ok := c.index[k]
		if !ok {
			i = len(c.entries)
			c.index[k] = i
			c.entries = append(c.entries, Count{Key: v})
		}
		c.entries[i].N++
	}
	if len(rs) > 0 && !present {
		return Counts{}, errors.NewFieldNotFound("", key, "count")
	}
	return c, nil
}
