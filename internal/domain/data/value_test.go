package data_test

import (
	"math"
	"testing"
	"time"

	"github.com/leengari/relq/internal/domain/data"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"int vs float", int64(3), 2.5, 1},
		{"int equals float", 81, 81.0, 0},
		{"strings", "95031", "95033", -1},
		{"dates", data.MustDate("1999-09-01"), data.MustDate("1975-10-02"), 1},
		{"null before number", nil, 0, -1},
		{"missing before null", data.Missing, nil, -1},
		{"number before string", 100, "1", -1},
		{"string before date", "z", data.MustDate("2000-01-01"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := data.Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestEqual_NullSemantics(t *testing.T) {
	if data.Equal(nil, nil) {
		t.Error("null must not equal null")
	}
	if data.Equal(data.Missing, data.Missing) {
		t.Error("missing must not equal missing")
	}
	if !data.Equal(1, 1.0) {
		t.Error("1 must equal 1.0")
	}
	if data.Equal("1", 1) {
		t.Error("\"1\" must not equal 1")
	}
}

func TestKey(t *testing.T) {
	if data.Key(81.0) != data.Key(int64(81)) {
		t.Error("integral float and int must share a key")
	}
	if data.Key(81.5) == data.Key(int64(81)) {
		t.Error("81.5 and 81 must not share a key")
	}
	if data.Key("1999-09-01") == data.Key(data.MustDate("1999-09-01")) {
		t.Error("date and string must not share a key")
	}
}

func TestNormalize(t *testing.T) {
	if _, ok := data.Normalize(int32(5)).(int64); !ok {
		t.Error("int32 must normalize to int64")
	}
	if _, ok := data.Normalize(float32(1.5)).(float64); !ok {
		t.Error("float32 must normalize to float64")
	}

	local := time.Date(1999, 9, 1, 15, 30, 0, 0, time.FixedZone("X", 8*3600))
	if got := data.Normalize(local); !got.(time.Time).Equal(data.MustDate("1999-09-01")) {
		t.Errorf("date must be truncated to UTC midnight, got %v", got)
	}
}

func TestNormalize_LargeUnsigned(t *testing.T) {
	if got := data.Normalize(uint64(42)); got != int64(42) {
		t.Errorf("Expected int64(42), got %#v", got)
	}
	if got := data.Normalize(uint64(math.MaxInt64)); got != int64(math.MaxInt64) {
		t.Errorf("Expected int64 at the boundary, got %#v", got)
	}

	big := data.Normalize(uint64(math.MaxUint64))
	if f, ok := big.(float64); !ok || f <= 0 {
		t.Errorf("Expected positive float64, got %#v", big)
	}
	if c := data.Compare(uint64(math.MaxUint64), int64(0)); c != 1 {
		t.Errorf("Expected MaxUint64 > 0, got %d", c)
	}
	if c := data.Compare(^uint64(0), int64(math.MaxInt64)); c != 1 {
		t.Errorf("Expected max uint64 > MaxInt64, got %d", c)
	}
	if got := data.Normalize(uint(7)); got != int64(7) {
		t.Errorf("Expected uint to become int64(7), got %#v", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{data.Missing, ""},
		{int64(42), "42"},
		{81.0, "81"},
		{81.5, "81.5"},
		{data.MustDate("1976-01-23"), "1976-01-23"},
		{"王丽", "王丽"},
	}
	for _, tt := range tests {
		if got := data.Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := data.ParseDate("1999/09/01"); err == nil {
		t.Error("expected error for malformed date")
	}
}
