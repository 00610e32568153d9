package predicate

import (
	"strings"

	"github.com/leengari/relq/internal/domain/data"
)

// Func is a function that tests whether a record matches certain criteria
type Func func(data.Record) bool

// All matches every record
func All() Func {
	return func(data.Record) bool { return true }
}

// Field builds a predicate from a test on a single field value.
// Records without the field, or holding null, never match.
func Field(field string, test func(v any) bool) Func {
	return func(r data.Record) bool {
		v := r.Get(field)
		if data.IsNull(v) {
			return false
		}
		return test(v)
	}
}

// compare builds a comparison predicate: ok decides from the three-way result.
// Values of different kinds never match.
func compare(field string, target any, ok func(c int) bool) Func {
	return Field(field, func(v any) bool {
		if !data.Comparable(v, target) {
			return false
		}
		return ok(data.Compare(v, target))
	})
}

// Eq matches records where field = value
func Eq(field string, value any) Func {
	return Field(field, func(v any) bool { return data.Equal(v, value) })
}

// Ne matches records where field <> value (null never matches)
func Ne(field string, value any) Func {
	return compare(field, value, func(c int) bool { return c != 0 })
}

// Gt matches records where field > value
func Gt(field string, value any) Func {
	return compare(field, value, func(c int) bool { return c > 0 })
}

// Ge matches records where field >= value
func Ge(field string, value any) Func {
	return compare(field, value, func(c int) bool { return c >= 0 })
}

// Lt matches records where field < value
func Lt(field string, value any) Func {
	return compare(field, value, func(c int) bool { return c < 0 })
}

// Le matches records where field <= value
func Le(field string, value any) Func {
	return compare(field, value, func(c int) bool { return c <= 0 })
}

// Between matches lo < field < hi (both bounds exclusive)
func Between(field string, lo, hi any) Func {
	return And(Gt(field, lo), Lt(field, hi))
}

// In matches records whose field equals one of values
func In(field string, values ...any) Func {
	return Field(field, func(v any) bool {
		for _, want := range values {
			if data.Equal(v, want) {
				return true
			}
		}
		return false
	})
}

// HasPrefix matches string fields starting with prefix
func HasPrefix(field, prefix string) Func {
	return Field(field, func(v any) bool {
		s, ok := v.(string)
		return ok && strings.HasPrefix(s, prefix)
	})
}

// And matches when every predicate matches
func And(preds ...Func) Func {
	return func(r data.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches
func Or(preds ...Func) Func {
	return func(r data.Record) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate
func Not(pred Func) Func {
	return func(r data.Record) bool {
		return !pred(r)
	}
}
