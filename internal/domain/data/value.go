package data

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the textual form of date values in fixtures and output
const DateLayout = "2006-01-02"

type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing is returned when a record does not carry the requested field.
// It is unequal to every value, itself included, and never takes part in
// numeric aggregation.
var Missing any = missing{}

// IsMissing reports whether v is the Missing marker
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// IsNull reports whether v is an explicit null or the Missing marker
func IsNull(v any) bool {
	return v == nil || IsMissing(v)
}

// Normalize converts the integer and float kinds a caller may hand in to the
// two numeric representations the engine works with (int64 and float64).
// Unsigned values above math.MaxInt64 become float64.
// Dates are truncated to UTC midnight. Other values are returned unchanged.
func Normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return fromUint64(x)
	case float32:
		return float64(x)
	case time.Time:
		return Date(x.Year(), x.Month(), x.Day())
	default:
		return v
	}
}

// fromUint64 keeps unsigned values beyond the int64 range as float64 so they
// still order above every int64
func fromUint64(x uint64) any {
	if x > math.MaxInt64 {
		return float64(x)
	}
	return int64(x)
}

// Date builds a date value
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a date value
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// MustDate is ParseDate for literals known to be valid
func MustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ToFloat returns the numeric value of v
func ToFloat(v any) (float64, bool) {
	switch x := Normalize(v).(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is an integer or float value
func IsNumeric(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// kind ranks values of different types so Compare is total
type kind int

const (
	kindMissing kind = iota
	kindNull
	kindNumber
	kindString
	kindDate
	kindOther
)

func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case missing:
		return kindMissing
	case int64, float64:
		return kindNumber
	case string:
		return kindString
	case time.Time:
		return kindDate
	default:
		return kindOther
	}
}

// Compare is a three-way comparison returning -1, 0 or +1.
// Numbers compare numerically across int64/float64, strings lexicographically
// and dates chronologically. Values of different kinds are ordered
// Missing < null < number < string < date < anything else.
func Compare(a, b any) int {
	a, b = Normalize(a), Normalize(b)
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	switch ka {
	case kindNumber:
		if ai, ok := a.(int64); ok {
			if bi, ok := b.(int64); ok {
				return compareOrdered(ai, bi)
			}
		}
		af, _ := ToFloat(a)
		bf, _ := ToFloat(b)
		return compareOrdered(af, bf)
	case kindString:
		return strings.Compare(a.(string), b.(string))
	case kindDate:
		return a.(time.Time).Compare(b.(time.Time))
	case kindOther:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	default:
		return 0
	}
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two values are equal under join/filter semantics.
// Null and Missing are unequal to everything, themselves included.
func Equal(a, b any) bool {
	if IsNull(a) || IsNull(b) {
		return false
	}
	a, b = Normalize(a), Normalize(b)
	if kindOf(a) != kindOf(b) {
		return false
	}
	return Compare(a, b) == 0
}

type dateKey string

// Key returns a comparable representation of v suitable for map keys.
// Integral floats collapse onto int64 so that 81 and 81.0 share a key.
func Key(v any) any {
	switch x := Normalize(v).(type) {
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) && math.Abs(x) < 1<<53 {
			return int64(x)
		}
		return x
	case time.Time:
		return dateKey(x.Format(DateLayout))
	case int64, string, nil, missing:
		return x
	default:
		return fmt.Sprintf("%T:%v", x, x)
	}
}

// Format renders a value for display
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case missing:
		return ""
	case time.Time:
		return x.Format(DateLayout)
	case float64:
		if x == math.Trunc(x) {
			return fmt.Sprintf("%.0f", x)
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}

// Comparable reports whether a and b are non-null values of the same kind,
// i.e. whether an ordering comparison between them is meaningful
func Comparable(a, b any) bool {
	if IsNull(a) || IsNull(b) {
		return false
	}
	return kindOf(Normalize(a)) == kindOf(Normalize(b))
}
