package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/relation"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a record has the expected number of fields
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a field exists in a record
func AssertColumnExists(t *testing.T, rec data.Record, column, context string) {
	t.Helper()
	if !rec.Has(column) {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertColumnNotExists checks if a field does not exist in a record
func AssertColumnNotExists(t *testing.T, rec data.Record, column, context string) {
	t.Helper()
	if rec.Has(column) {
		t.Errorf("%s: did not expect column '%s' to exist", context, column)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertNullValue checks if a value is an explicit null
func AssertNullValue(t *testing.T, value any, context string) {
	t.Helper()
	if value != nil {
		t.Errorf("%s: expected NULL value, got: %v", context, value)
	}
}

// AssertRelationsEqual checks that two relations hold equal records in the same order
func AssertRelationsEqual(t *testing.T, actual, expected relation.Relation, context string) {
	t.Helper()
	if relation.Equal(actual, expected) {
		return
	}
	t.Errorf("%s: relations differ (-expected +actual):\n%s",
		context, cmp.Diff(lines(expected, false), lines(actual, false)))
}

// AssertRelationsEqualInAnyOrder checks that two relations hold the same multiset of records
func AssertRelationsEqualInAnyOrder(t *testing.T, actual, expected relation.Relation, context string) {
	t.Helper()
	if relation.EqualInAnyOrder(actual, expected) {
		return
	}
	t.Errorf("%s: relations differ in content (-expected +actual):\n%s",
		context, cmp.Diff(lines(expected, true), lines(actual, true)))
}

// lines renders each record on its own line, sorted when order is irrelevant
func lines(r relation.Relation, sorted bool) []string {
	out := make([]string, r.Len())
	for i, rec := range r.Records() {
		out[i] = rec.String()
	}
	if sorted {
		sort.Strings(out)
	}
	return out
}

// AssertNotNullValue checks if a value is not an explicit null
func AssertNotNullValue(t *testing.T, value any, context string) {
	t.Helper()
	if value == nil {
		t.Errorf("%s: expected non-NULL value, got nil", context)
	}
}
