package cli

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/schema"
	"github.com/leengari/relq/internal/exercises"
	"github.com/leengari/relq/internal/relation"
)

// PrintResult renders an exercise result: a scalar on one line, a relation
// as a table
func PrintResult(w io.Writer, res exercises.Result) error {
	if res.Scalar {
		_, err := fmt.Fprintln(w, data.Format(res.Value))
		return err
	}
	return PrintRelation(w, res.Rows, res.Rows.Fields(), nil)
}

// PrintRelation renders r as a table with the given column order. When ts is
// set, headers show the column type.
func PrintRelation(w io.Writer, r relation.Relation, columns []string, ts *schema.TableSchema) error {
	if len(columns) == 0 {
		_, err := fmt.Fprintf(w, "(%d rows)\n", r.Len())
		return err
	}

	// Header - show type if metadata available
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col
		if ts != nil {
			if c := ts.Column(col); c != nil {
				header[i] = fmt.Sprintf("%s (%s)", col, c.Type)
			}
		}
	}

	tableData := pterm.TableData{header}
	for _, rec := range r.Records() {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = data.Format(rec.Get(col))
		}
		tableData = append(tableData, row)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n(%d rows)\n", out, r.Len())
	return err
}
