package relation_test

import (
	"errors"
	"testing"

	"github.com/leengari/relq/internal/aggregate"
	"github.com/leengari/relq/internal/domain/data"
	qerrors "github.com/leengari/relq/internal/domain/errors"
	"github.com/leengari/relq/internal/relation"
	"github.com/leengari/relq/internal/testutil"
)

func TestGroupBy_FirstOccurrenceOrder(t *testing.T) {
	groups, err := testutil.Scores().GroupBy("cno")
	testutil.AssertNoError(t, err, "GroupBy cno")

	if groups.Field() != "cno" {
		t.Errorf("Expected field cno, got %s", groups.Field())
	}

	want := []struct {
		key string
		n   int
	}{
		{"3-245", 3},
		{"3-105", 6},
		{"6-166", 2},
		{"6-106", 1},
	}
	list := groups.List()
	if len(list) != len(want) {
		t.Fatalf("Expected %d groups, got %d", len(want), len(list))
	}
	for i, w := range want {
		if list[i].Key != w.key || list[i].Len() != w.n {
			t.Errorf("group %d: expected %s/%d, got %v/%d", i, w.key, w.n, list[i].Key, list[i].Len())
		}
	}

	g, ok := groups.Get("6-166")
	if !ok {
		t.Fatal("Expected group 6-166")
	}
	assertSnos(t, g.Rows, []int64{101, 108}, "group 6-166")
}

func TestGroupBy_FlattenIsPermutation(t *testing.T) {
	scores := testutil.Scores()
	groups, err := scores.GroupBy("sno")
	testutil.AssertNoError(t, err, "GroupBy sno")

	testutil.AssertRelationsEqualInAnyOrder(t, groups.Flatten(), scores, "flatten(groupBy)")
}

func TestGroupBy_MissingKeysShareAGroup(t *testing.T) {
	r := relation.FromMaps(
		map[string]any{"k": "a"},
		map[string]any{"x": 1},
		map[string]any{"x": 2},
	)
	groups, err := r.GroupBy("k")
	testutil.AssertNoError(t, err, "GroupBy with missing keys")

	if groups.Len() != 2 {
		t.Fatalf("Expected 2 groups, got %d", groups.Len())
	}
	if !data.IsMissing(groups.List()[1].Key) || groups.List()[1].Len() != 2 {
		t.Errorf("Expected missing-key group of 2, got %v", groups.List()[1])
	}
}

func TestGroupBy_InvalidField(t *testing.T) {
	_, err := testutil.Scores().GroupBy("grade")
	if !errors.Is(err, qerrors.ErrInvalidField) {
		t.Errorf("Expected invalid field error, got %v", err)
	}
}

func TestGroups_HavingAndAggregate(t *testing.T) {
	groups, err := testutil.Scores().GroupBy("cno")
	testutil.AssertNoError(t, err, "GroupBy cno")

	big := groups.Having(func(g relation.Group) bool { return g.Len() >= 5 })
	result, err := big.Aggregate("", relation.AverageOf("degree", "average"), relation.CountAs("n"))
	testutil.AssertNoError(t, err, "Aggregate")

	expected := relation.FromMaps(
		map[string]any{"cno": "3-105", "average": 81.5, "n": 6},
	)
	testutil.AssertRelationsEqual(t, result, expected, "having count >= 5")
}

func TestGroups_AggregateAllOps(t *testing.T) {
	groups, err := testutil.Scores().GroupBy("sno")
	testutil.AssertNoError(t, err, "GroupBy sno")

	result, err := groups.Aggregate("student",
		relation.SumOf("degree", "total"),
		relation.MaxOf("degree", "best"),
		relation.MinOf("degree", "worst"),
	)
	testutil.AssertNoError(t, err, "Aggregate")

	rec, err := result.Lookup("student", 101)
	testutil.AssertNoError(t, err, "Lookup 101")
	if rec.Get("total") != 149.0 || rec.Get("best") != int64(85) || rec.Get("worst") != int64(64) {
		t.Errorf("unexpected aggregate row %v", rec)
	}
}

func TestGroups_AggregateErrorAborts(t *testing.T) {
	r := relation.FromMaps(
		map[string]any{"k": "a", "v": 1},
		map[string]any{"k": "b", "v": "oops"},
	)
	groups, err := r.GroupBy("k")
	testutil.AssertNoError(t, err, "GroupBy")

	result, err := groups.Aggregate("", relation.Reducer{Op: aggregate.OpSum, Field: "v", As: "s"})
	if !errors.Is(err, qerrors.ErrInvalidField) {
		t.Fatalf("Expected invalid field error, got %v", err)
	}
	testutil.AssertRowCount(t, result.Len(), 0, "aborted aggregate")
}
