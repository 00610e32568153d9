// Package aggregate implements the numeric reductions used by queries:
// max, min, sum, average and count-by-key, over plain value sequences or
// over a named field of a sequence of records.
package aggregate

import (
	"cmp"

	"github.com/leengari/relq/internal/domain/errors"
)

// Number is the set of element types the arithmetic reductions accept
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Max returns the greatest element of s
func Max[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, errors.NewEmptyInput("max", "")
	}
	acc := s[0]
	for _, v := range s[1:] {
		if v > acc {
			acc = v
		}
	}
	return acc, nil
}

// Min returns the least element of s
func Min[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, errors.NewEmptyInput("min", "")
	}
	acc := s[0]
	for _, v := range s[1:] {
		if v < acc {
			acc = v
		}
	}
	return acc, nil
}

// Sum returns the arithmetic sum of s, 0 when s is empty
func Sum[T Number](s []T) T {
	var acc T
	for _, v := range s {
		acc += v
	}
	return acc
}

// Average returns sum(s) / len(s)
func Average[T Number](s []T) (float64, error) {
	if len(s) == 0 {
		return 0, errors.NewEmptyInput("average", "")
	}
	var acc float64
	for _, v := range s {
		acc += float64(v)
	}
	return acc / float64(len(s)), nil
}
