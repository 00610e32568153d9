package relation

import (
	"log/slog"

	"github.com/leengari/relq/internal/domain/data"
)

// JoinType represents the type of JOIN operation
type JoinType int

const (
	JoinInner JoinType = iota // Returns only matching pairs
	JoinLeft                  // Returns all left records, null placeholder for unmatched right
	JoinRight                 // Returns all right records, null placeholder for unmatched left
	JoinFull                  // Returns all records of both sides, null placeholder where no match
)

// String returns the string representation of the JOIN type
func (jt JoinType) String() string {
	switch jt {
	case JoinInner:
		return "INNER JOIN"
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL OUTER JOIN"
	default:
		return "UNKNOWN JOIN"
	}
}

// CombineFunc builds an output record from a matched (or placeholder) pair
type CombineFunc func(left, right data.Record) data.Record

// MergeRecords is the default CombineFunc: all fields of both records, the
// left record winning on name clashes
func MergeRecords(left, right data.Record) data.Record {
	return left.Merge(right)
}

// EquiJoin pairs every left record l with every right record r such that
// l[leftKey] equals r[rightKey] and emits combine(l, r).
//
// Outer joins pair unmatched records with a placeholder that carries every
// field of the other side (see Relation.Fields) set to null, so combine can
// read e.g. right.Get("cname") and get an explicit null instead of a dropped
// row. An empty side only knows its fields when they were declared with
// WithFields; otherwise its placeholder is empty and reads give Missing.
// Null and missing keys never match. combine defaults to MergeRecords.
func EquiJoin(left, right Relation, leftKey, rightKey string, jt JoinType, combine CombineFunc) (Relation, error) {
	if err := left.requireField(leftKey, jt.String()); err != nil {
		return Relation{}, err
	}
	if err := right.requireField(rightKey, jt.String()); err != nil {
		return Relation{}, err
	}
	if combine == nil {
		combine = MergeRecords
	}

	slog.Debug("starting join",
		slog.String("type", jt.String()),
		slog.String("left", left.name),
		slog.String("right", right.name),
		slog.String("left_key", leftKey),
		slog.String("right_key", rightKey),
		slog.Int("left_rows", left.Len()),
		slog.Int("right_rows", right.Len()),
	)

	hashIndex := buildJoinIndex(right, rightKey)

	var results []data.Record
	matchedRight := make(map[int]bool)
	unmatchedLeft := 0

	// Phase 1: probe left records, keeping left order
	var rightNull data.Record
	if jt == JoinLeft || jt == JoinFull {
		rightNull = nullRecord(right.Fields())
	}
	for _, leftRec := range left.records {
		positions := probe(hashIndex, leftRec.Get(leftKey))
		if len(positions) == 0 {
			unmatchedLeft++
			if jt == JoinLeft || jt == JoinFull {
				results = append(results, combine(leftRec, rightNull))
			}
			continue
		}
		for _, pos := range positions {
			matchedRight[pos] = true
			results = append(results, combine(leftRec, right.records[pos]))
		}
	}

	// Phase 2: unmatched right records with a null left side
	if jt == JoinRight || jt == JoinFull {
		leftNull := nullRecord(left.Fields())
		for pos, rightRec := range right.records {
			if !matchedRight[pos] {
				results = append(results, combine(leftNull, rightRec))
			}
		}
	}

	slog.Debug("join completed",
		slog.String("type", jt.String()),
		slog.Int("result_rows", len(results)),
		slog.Int("unmatched_left_rows", unmatchedLeft),
		slog.Int("unmatched_right_rows", right.Len()-len(matchedRight)),
	)

	return wrap("", results), nil
}

// SemiJoin returns the left records that have at least one match in right
func SemiJoin(left, right Relation, leftKey, rightKey string) (Relation, error) {
	return existenceJoin(left, right, leftKey, rightKey, true)
}

// AntiJoin returns the left records that have no match in right
func AntiJoin(left, right Relation, leftKey, rightKey string) (Relation, error) {
	return existenceJoin(left, right, leftKey, rightKey, false)
}

func existenceJoin(left, right Relation, leftKey, rightKey string, keep bool) (Relation, error) {
	op := "anti join"
	if keep {
		op = "semi join"
	}
	if err := left.requireField(leftKey, op); err != nil {
		return Relation{}, err
	}
	if err := right.requireField(rightKey, op); err != nil {
		return Relation{}, err
	}

	hashIndex := buildJoinIndex(right, rightKey)
	return left.Filter(func(rec data.Record) bool {
		return (len(probe(hashIndex, rec.Get(leftKey))) > 0) == keep
	}), nil
}

// buildJoinIndex creates a hash index over the join column of r.
// Null and missing values are left out so they never match.
func buildJoinIndex(r Relation, field string) map[any][]int {
	hashIndex := make(map[any][]int)
	for i, rec := range r.records {
		value := rec.Get(field)
		if data.IsNull(value) {
			continue
		}
		k := data.Key(value)
		hashIndex[k] = append(hashIndex[k], i)
	}
	return hashIndex
}

func probe(hashIndex map[any][]int, value any) []int {
	if data.IsNull(value) {
		return nil
	}
	return hashIndex[data.Key(value)]
}

// nullRecord is the placeholder for "no match": every field set to null
func nullRecord(fields []string) data.Record {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f] = nil
	}
	return data.NewRecord(m)
}
