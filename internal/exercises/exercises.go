// Package exercises holds the catalog of school queries. Each exercise is a
// pure function of the school relations, composed from relation operators.
package exercises

import (
	"fmt"
	"strings"
	"time"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/fixture"
	"github.com/leengari/relq/internal/relation"
)

// Env is everything an exercise may read
type Env struct {
	School fixture.School
	AsOf   time.Time // reference date for age computations
}

// Result is either a relation or a single scalar value
type Result struct {
	Rows    relation.Relation
	Value   any
	Scalar  bool
	Ordered bool // Rows carry a requested ordering
}

// Len returns the number of result rows (1 for a scalar)
func (r Result) Len() int {
	if r.Scalar {
		return 1
	}
	return r.Rows.Len()
}

// String renders the result for logs and test failures
func (r Result) String() string {
	if r.Scalar {
		return data.Format(r.Value)
	}
	return r.Rows.String()
}

// Exercise is one catalogued query
type Exercise struct {
	ID       string
	Title    string
	Question string // the question as originally posed
	Run      func(Env) (Result, error)
}

// Catalog returns every exercise in catalog order
func Catalog() []Exercise {
	var all []Exercise
	all = append(all, basic...)
	all = append(all, joined...)
	all = append(all, combined...)
	all = append(all, supplemented...)
	return all
}

// Lookup finds an exercise by full ID or by its short prefix ("q07")
func Lookup(id string) (Exercise, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, ex := range Catalog() {
		if ex.ID == id || strings.HasPrefix(ex.ID, id+"-") {
			return ex, true
		}
	}
	return Exercise{}, false
}

// Select resolves ids with Lookup; no ids selects the whole catalog
func Select(ids ...string) ([]Exercise, error) {
	if len(ids) == 0 {
		return Catalog(), nil
	}
	out := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		ex, ok := Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown exercise %q", id)
		}
		out = append(out, ex)
	}
	return out, nil
}

func table(r relation.Relation, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Rows: r}, nil
}

func sorted(r relation.Relation, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Rows: r, Ordered: true}, nil
}

func scalar(v any, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Value: data.Normalize(v), Scalar: true}, nil
}

// keep builds a join combiner that takes the named fields from the left
// record and the right record
func keep(leftFields []string, rightFields ...string) relation.CombineFunc {
	return func(l, r data.Record) data.Record {
		return l.Pick(leftFields...).Merge(r.Pick(rightFields...))
	}
}

// age is the number of whole years between birthday and asOf
func age(birthday, asOf time.Time) int64 {
	years := asOf.Year() - birthday.Year()
	if asOf.Month() < birthday.Month() ||
		(asOf.Month() == birthday.Month() && asOf.Day() < birthday.Day()) {
		years--
	}
	return int64(years)
}
