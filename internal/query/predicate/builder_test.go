package predicate_test

import (
	"testing"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/query/predicate"
)

func TestComparisons(t *testing.T) {
	rec := data.R(map[string]any{
		"degree": 85,
		"cno":    "3-105",
		"born":   data.MustDate("1976-02-20"),
		"cname":  nil,
	})

	tests := []struct {
		name string
		pred predicate.Func
		want bool
	}{
		{"eq", predicate.Eq("cno", "3-105"), true},
		{"eq float", predicate.Eq("degree", 85.0), true},
		{"ne", predicate.Ne("cno", "3-245"), true},
		{"gt", predicate.Gt("degree", 85), false},
		{"ge", predicate.Ge("degree", 85), true},
		{"lt", predicate.Lt("degree", 90), true},
		{"le", predicate.Le("degree", 84), false},
		{"between exclusive", predicate.Between("degree", 60, 85), false},
		{"between", predicate.Between("degree", 60, 86), true},
		{"in", predicate.In("degree", 81, 85, 88), true},
		{"not in", predicate.In("degree", 81, 88), false},
		{"prefix", predicate.HasPrefix("cno", "3-"), true},
		{"date", predicate.Lt("born", data.MustDate("1977-01-01")), true},
		{"mixed kinds", predicate.Gt("cno", 1), false},
		{"null eq", predicate.Eq("cname", nil), false},
		{"null ne", predicate.Ne("cname", "x"), false},
		{"missing", predicate.Ge("grade", 0), false},
		{"all", predicate.All(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(rec); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombinators(t *testing.T) {
	rec := data.R(map[string]any{"class": "95033", "ssex": "女"})

	if !predicate.And(predicate.Eq("class", "95033"), predicate.Eq("ssex", "女"))(rec) {
		t.Error("And should match")
	}
	if predicate.And(predicate.Eq("class", "95033"), predicate.Eq("ssex", "男"))(rec) {
		t.Error("And should not match")
	}
	if !predicate.Or(predicate.Eq("class", "95031"), predicate.Eq("ssex", "女"))(rec) {
		t.Error("Or should match")
	}
	if !predicate.Not(predicate.Eq("class", "95031"))(rec) {
		t.Error("Not should match")
	}
	if !predicate.And()(rec) || predicate.Or()(rec) {
		t.Error("empty And is true and empty Or is false")
	}
}

func TestField_CustomTest(t *testing.T) {
	born1975 := predicate.Field("born", func(v any) bool {
		return v.(interface{ Year() int }).Year() == 1975
	})

	if !born1975(data.R(map[string]any{"born": data.MustDate("1975-10-02")})) {
		t.Error("expected 1975 birthday to match")
	}
	if born1975(data.R(map[string]any{"born": nil})) {
		t.Error("null must never reach the test")
	}
}
