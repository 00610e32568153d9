package schema

import (
	"fmt"
	"math"
	"time"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/errors"
)

type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
	ColumnTypeDate  ColumnType = "DATE"
)

// Valid reports whether t is one of the supported column types
func (t ColumnType) Valid() bool {
	switch t {
	case ColumnTypeInt, ColumnTypeFloat, ColumnTypeText, ColumnTypeDate:
		return true
	}
	return false
}

type Column struct {
	Name    string     `json:"name"`
	Type    ColumnType `json:"type"`
	NotNull bool       `json:"not_null"`
}

// TableSchema represents table metadata (from meta.json)
type TableSchema struct {
	TableName string
	Columns   []Column
}

// FieldNames returns the column names in declaration order
func (s *TableSchema) FieldNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name, or nil
func (s *TableSchema) Column(name string) *Column {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i]
		}
	}
	return nil
}

// Validate checks that the schema itself is well formed
func (s *TableSchema) Validate() error {
	if s.TableName == "" {
		return fmt.Errorf("table schema has no name")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", s.TableName)
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("table %s has a column without a name", s.TableName)
		}
		if seen[c.Name] {
			return fmt.Errorf("table %s: duplicate column %s", s.TableName, c.Name)
		}
		seen[c.Name] = true
		if !c.Type.Valid() {
			return fmt.Errorf("table %s: column %s has unsupported type %q", s.TableName, c.Name, c.Type)
		}
	}
	return nil
}

// Coerce converts a raw row (as decoded from JSON or scanned from SQL) into a
// Record that fits the schema.
// - JSON numbers arrive as float64 and become int64 for INT columns
// - DATE columns accept YYYY-MM-DD strings and time.Time values
// - SQL drivers may hand TEXT back as []byte
// Columns not declared in the schema are dropped. An explicit null stays
// null; an absent nullable column stays absent.
func (s *TableSchema) Coerce(raw map[string]any, rowIndex int) (data.Record, error) {
	out := make(map[string]any, len(s.Columns))
	for _, col := range s.Columns {
		val, exists := raw[col.Name]
		if !exists || val == nil {
			if col.NotNull {
				return data.Record{}, errors.NewNotNullViolation(s.TableName, col.Name, rowIndex)
			}
			if exists {
				out[col.Name] = nil
			}
			continue
		}

		v, err := coerceValue(val, col.Type)
		if err != nil {
			return data.Record{}, errors.NewTypeMismatch(s.TableName, col.Name, val, string(col.Type), rowIndex)
		}
		out[col.Name] = v
	}
	return data.NewRecord(out), nil
}

func coerceValue(val any, t ColumnType) (any, error) {
	if b, ok := val.([]byte); ok {
		val = string(b)
	}
	val = data.Normalize(val)

	switch t {
	case ColumnTypeInt:
		switch v := val.(type) {
		case int64:
			return v, nil
		case float64:
			// JSON numbers come as float64
			if v == math.Trunc(v) {
				return int64(v), nil
			}
		}
	case ColumnTypeFloat:
		if f, ok := data.ToFloat(val); ok {
			return f, nil
		}
	case ColumnTypeText:
		if s, ok := val.(string); ok {
			return s, nil
		}
	case ColumnTypeDate:
		switch v := val.(type) {
		case time.Time:
			return v, nil
		case string:
			return data.ParseDate(v)
		}
	}
	return nil, fmt.Errorf("cannot convert %T to %s", val, t)
}
