package relation

import (
	"fmt"
	"log/slog"

	"github.com/leengari/relq/internal/aggregate"
	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/errors"
)

// Filter returns the records for which pred is true, in original order
func (r Relation) Filter(pred func(data.Record) bool) Relation {
	var result []data.Record
	for _, rec := range r.records {
		if pred(rec) {
			result = append(result, rec)
		}
	}
	return r.derive(result)
}

// Project replaces each record with shape(record), preserving order.
// shape may synthesize fields the input does not have, e.g. by looking a
// value up in another relation.
func (r Relation) Project(shape func(data.Record) data.Record) Relation {
	result := make([]data.Record, len(r.records))
	for i, rec := range r.records {
		result[i] = shape(rec)
	}
	return wrap(r.name, result)
}

// Select projects the relation onto the given columns.
// A column absent from every record of a non-empty relation is an
// InvalidFieldError; a record lacking a column simply omits it.
// A relation with declared fields declares the output names.
func (r Relation) Select(cols ...ColumnRef) (Relation, error) {
	proj := NewProjectionWithColumns(cols...)
	if err := proj.Validate(r); err != nil {
		return Relation{}, err
	}
	result := r.Project(proj.Apply)
	if len(r.declared) > 0 {
		result = result.WithFields(proj.OutputNames()...)
	}
	return result, nil
}

// SelectFields is Select without aliases
func (r Relation) SelectFields(fields ...string) (Relation, error) {
	cols := make([]ColumnRef, len(fields))
	for i, f := range fields {
		cols[i] = Col(f)
	}
	return r.Select(cols...)
}

// First returns the first record matching pred, or NoMatchError
func (r Relation) First(pred func(data.Record) bool) (data.Record, error) {
	for _, rec := range r.records {
		if pred(rec) {
			return rec, nil
		}
	}
	return data.Record{}, errors.NewNoMatch(r.name, "predicate")
}

// Lookup returns the first record whose field equals value, or NoMatchError
func (r Relation) Lookup(field string, value any) (data.Record, error) {
	if err := r.requireField(field, "lookup"); err != nil {
		return data.Record{}, err
	}
	for _, rec := range r.records {
		if data.Equal(rec.Get(field), value) {
			return rec, nil
		}
	}
	return data.Record{}, errors.NewNoMatch(r.name, fmt.Sprintf("%s = %s", field, data.Format(value)))
}

// Count returns the number of records
func (r Relation) Count() int {
	return len(r.records)
}

// Sum sums field over the relation (records without field contribute 0)
func (r Relation) Sum(field string) (float64, error) {
	v, err := aggregate.SumField(r.records, field)
	return v, r.annotate(err)
}

// Average averages field over the relation
func (r Relation) Average(field string) (float64, error) {
	v, err := aggregate.AverageField(r.records, field)
	return v, r.annotate(err)
}

// Max returns the greatest value of field
func (r Relation) Max(field string) (any, error) {
	v, err := aggregate.MaxField(r.records, field)
	return v, r.annotate(err)
}

// Min returns the least value of field
func (r Relation) Min(field string) (any, error) {
	v, err := aggregate.MinField(r.records, field)
	return v, r.annotate(err)
}

// Numbers returns the numeric values of field, skipping records without it
func (r Relation) Numbers(field string) ([]float64, error) {
	if err := r.requireField(field, "numbers"); err != nil {
		return nil, err
	}
	v, err := aggregate.Values(r.records, field)
	return v, r.annotate(err)
}

// CountBy counts records per distinct value of key
func (r Relation) CountBy(key string) (aggregate.Counts, error) {
	c, err := aggregate.CountByKey(r.records, key)
	return c, r.annotate(err)
}

// annotate fills in the relation name on field errors raised by the aggregator
func (r Relation) annotate(err error) error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*errors.InvalidFieldError); ok && fe.Relation == "" {
		fe.Relation = r.name
	}
	slog.Debug("aggregate failed",
		slog.String("relation", r.name),
		slog.Int("rows", len(r.records)),
		slog.Any("error", err),
	)
	return err
}
