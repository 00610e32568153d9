package relation_test

import (
	"errors"
	"testing"

	qerrors "github.com/leengari/relq/internal/domain/errors"
	"github.com/leengari/relq/internal/relation"
	"github.com/leengari/relq/internal/testutil"
)

func TestUnionAll_Heterogeneous(t *testing.T) {
	teachers, err := testutil.Teachers().Select(relation.As("tname", "name"), relation.As("tsex", "sex"))
	testutil.AssertNoError(t, err, "select teachers")
	students, err := testutil.Students().Select(relation.As("sname", "name"), relation.As("class", "class"))
	testutil.AssertNoError(t, err, "select students")

	all := relation.UnionAll(teachers, students)

	testutil.AssertRowCount(t, all.Len(), 10, "UnionAll")
	testutil.AssertColumnExists(t, all.At(0), "sex", "teacher row")
	testutil.AssertColumnNotExists(t, all.At(9), "sex", "student row")

	// sorting tolerates records without the key
	_, err = all.SortBy(relation.Asc("class"))
	testutil.AssertNoError(t, err, "sort heterogeneous")
}

func TestUnion_DropsDuplicates(t *testing.T) {
	a := relation.FromMaps(map[string]any{"x": 1}, map[string]any{"x": 2})
	b := relation.FromMaps(map[string]any{"x": 2}, map[string]any{"x": 3})

	testutil.AssertRowCount(t, relation.UnionAll(a, b).Len(), 4, "UnionAll")
	testutil.AssertRelationsEqual(t, relation.Union(a, b),
		relation.FromMaps(map[string]any{"x": 1}, map[string]any{"x": 2}, map[string]any{"x": 3}),
		"Union")
}

func TestUnionAll_KeepsCommonName(t *testing.T) {
	s := testutil.Scores()
	if got := relation.UnionAll(s, s).Name(); got != "scores" {
		t.Errorf("Expected name scores, got %q", got)
	}
	if got := relation.UnionAll(s, testutil.Courses()).Name(); got != "" {
		t.Errorf("Expected empty name, got %q", got)
	}
}

func TestDistinctBy_FirstWins(t *testing.T) {
	result, err := testutil.Students().DistinctBy("class")
	testutil.AssertNoError(t, err, "DistinctBy class")

	assertSnos(t, result, []int64{108, 105}, "DistinctBy class")

	again, err := result.DistinctBy("class")
	testutil.AssertNoError(t, err, "DistinctBy twice")
	testutil.AssertRelationsEqual(t, again, result, "DistinctBy idempotence")
}

func TestDistinctBy_InvalidField(t *testing.T) {
	_, err := testutil.Students().DistinctBy("grade")
	if !errors.Is(err, qerrors.ErrInvalidField) {
		t.Errorf("Expected invalid field error, got %v", err)
	}
}

func TestDistinct_DatesAndStringsDiffer(t *testing.T) {
	r := relation.FromMaps(
		map[string]any{"d": "1999-09-01"},
		map[string]any{"d": testutil.Students().At(0).Get("sbirthday")},
	)
	testutil.AssertRowCount(t, r.Distinct().Len(), 2, "Distinct string vs date")
}
