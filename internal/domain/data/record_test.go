package data_test

import (
	"encoding/json"
	"testing"

	"github.com/leengari/relq/internal/domain/data"
)

func TestRecord_GetMissing(t *testing.T) {
	r := data.R(map[string]any{"sno": 101, "cname": nil})

	if !data.IsMissing(r.Get("degree")) {
		t.Error("absent field must read as Missing")
	}
	if r.Get("cname") != nil {
		t.Error("explicit null must read as nil")
	}
	if !r.Has("cname") || r.Has("degree") {
		t.Error("Has must count null fields and only those")
	}
	if r.Get("sno") != int64(101) {
		t.Errorf("expected int64(101), got %T", r.Get("sno"))
	}
}

func TestRecord_Immutable(t *testing.T) {
	m := map[string]any{"a": 1}
	r := data.NewRecord(m)
	m["a"] = 2

	if r.Get("a") != int64(1) {
		t.Error("record observed a change to its source map")
	}

	r2 := r.With("b", 2)
	if r.Has("b") || !r2.Has("b") {
		t.Error("With must return a new record")
	}

	r3 := r2.Without("a").Rename("b", "c")
	if r3.Len() != 1 || r3.Get("c") != int64(2) {
		t.Errorf("unexpected record %v", r3)
	}
	if r2.Len() != 2 {
		t.Error("Without/Rename modified the receiver")
	}
}

func TestRecord_MergeReceiverWins(t *testing.T) {
	left := data.R(map[string]any{"sno": 1, "name": "left"})
	right := data.R(map[string]any{"sno": 2, "cno": "3-105"})

	merged := left.Merge(right)
	if merged.Get("sno") != int64(1) || merged.Get("cno") != "3-105" {
		t.Errorf("unexpected merge result %v", merged)
	}
}

func TestRecord_EqualAndString(t *testing.T) {
	a := data.R(map[string]any{"x": 1, "y": nil})
	b := data.R(map[string]any{"y": nil, "x": 1.0})

	if !a.Equal(b) {
		t.Errorf("%v must equal %v", a, b)
	}
	if a.Equal(data.R(map[string]any{"x": 1})) {
		t.Error("null field must not equal an absent field")
	}
	if got := a.String(); got != "{x: 1, y: NULL}" {
		t.Errorf("String() = %q", got)
	}
}

func TestRecord_Pick(t *testing.T) {
	r := data.R(map[string]any{"a": 1, "b": 2})
	p := r.Pick("a", "z")

	if p.Len() != 1 || !p.Has("a") {
		t.Errorf("unexpected pick %v", p)
	}
}

func TestRecord_JSON(t *testing.T) {
	r := data.R(map[string]any{"sno": 108, "avg": 81.5, "born": data.MustDate("1999-09-01")})

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"avg":81.5,"born":"1999-09-01","sno":108}` {
		t.Errorf("unexpected JSON %s", b)
	}

	var back data.Record
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Get("sno") != int64(108) || back.Get("avg") != 81.5 {
		t.Errorf("unexpected decode %v", back)
	}
}
