package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by errors.Is against the typed errors below
var (
	ErrEmptyInput   = errors.New("empty input")
	ErrInvalidField = errors.New("invalid field")
	ErrNoMatch      = errors.New("no match")
)

// EmptyInputError is returned by an aggregate that has no neutral value
// (max, min, average) when it is given zero elements
type EmptyInputError struct {
	Op    string // aggregate name, e.g. "max"
	Field string // field aggregated over (empty for plain value sequences)
}

func (e *EmptyInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s of %s: empty input", e.Op, e.Field)
	}
	return fmt.Sprintf("%s: empty input", e.Op)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// InvalidFieldError reports a field reference that cannot be resolved in a
// context that requires it (sort keys, join keys, group keys, projections)
// or a field holding a value of the wrong type for the operation
type InvalidFieldError struct {
	Relation string // relation name (may be empty)
	Field    string // offending field
	Op       string // operator that rejected the field
	Reason   string // human-readable explanation (optional)
}

func (e *InvalidFieldError) Error() string {
	var parts []string

	target := e.Field
	if e.Relation != "" {
		target = e.Relation + "." + e.Field
	}
	parts = append(parts, fmt.Sprintf("invalid field %s", target))

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Op))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// NoMatchError is returned by lookups that expect a record and find none
type NoMatchError struct {
	Relation  string // relation searched (may be empty)
	Criterion string // description of what was looked for
}

func (e *NoMatchError) Error() string {
	if e.Relation != "" {
		return fmt.Sprintf("no record in %s matches %s", e.Relation, e.Criterion)
	}
	return fmt.Sprintf("no record matches %s", e.Criterion)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

func NewEmptyInput(op, field string) *EmptyInputError {
	return &EmptyInputError{Op: op, Field: field}
}

func NewFieldNotFound(relation, field, op string) *InvalidFieldError {
	return &InvalidFieldError{
		Relation: relation,
		Field:    field,
		Op:       op,
		Reason:   "field absent from every record",
	}
}

func NewFieldTypeMismatch(relation, field, op string, value interface{}) *InvalidFieldError {
	return &InvalidFieldError{
		Relation: relation,
		Field:    field,
		Op:       op,
		Reason:   fmt.Sprintf("value %v (%T) is not numeric", value, value),
	}
}

func NewNoMatch(relation, criterion string) *NoMatchError {
	return &NoMatchError{Relation: relation, Criterion: criterion}
}

// ConstraintError represents a fixture row that does not fit its table schema
// (not_null, type_mismatch)
type ConstraintError struct {
	Table      string      // table name
	Column     string      // column name
	Value      interface{} // offending value (may be nil)
	Constraint string      // "not_null", "type_mismatch"
	Reason     string      // human-readable explanation (optional)
	RowIndex   int         // row number (0-based) where violation occurred (-1 if unknown)
}

func (e *ConstraintError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

func NewNotNullViolation(table, column string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Constraint: "not_null",
		Reason:     "missing required value",
		RowIndex:   rowIndex,
	}
}

func NewTypeMismatch(table, column string, value interface{}, expectedType string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected %s, got %T", expectedType, value),
		RowIndex:   rowIndex,
	}
}
