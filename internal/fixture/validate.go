package fixture

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/leengari/relq/internal/domain/schema"
)

// jsonTypes maps column types to JSON Schema types
var jsonTypes = map[schema.ColumnType]string{
	schema.ColumnTypeInt:   "integer",
	schema.ColumnTypeFloat: "number",
	schema.ColumnTypeText:  "string",
	schema.ColumnTypeDate:  "string",
}

// rowsSchema builds the JSON Schema a table's data.json must satisfy:
// an array of objects whose properties follow the declared column types
func rowsSchema(s *schema.TableSchema) map[string]any {
	properties := make(map[string]any, len(s.Columns))
	var required []any
	for _, col := range s.Columns {
		prop := map[string]any{}
		if col.NotNull {
			prop["type"] = jsonTypes[col.Type]
			required = append(required, col.Name)
		} else {
			prop["type"] = []any{jsonTypes[col.Type], "null"}
		}
		if col.Type == schema.ColumnTypeDate {
			prop["pattern"] = `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`
		}
		properties[col.Name] = prop
	}

	row := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		row["required"] = required
	}

	return map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   s.TableName,
		"type":    "array",
		"items":   row,
	}
}

// validateRows checks raw data.json content against the table schema
func validateRows(s *schema.TableSchema, raw []byte) error {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(rowsSchema(s)))
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", s.TableName, err)
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error for %s: %w", s.TableName, err)
	}

	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("%w: table %s: %s", ErrInvalidData, s.TableName, strings.Join(errs, "; "))
	}

	return nil
}
