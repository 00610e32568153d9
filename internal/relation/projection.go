package relation

import "github.com/leengari/relq/internal/domain/data"

// ColumnRef represents a column reference in a projection
// Can carry an alias (e.g. "tname AS name")
type ColumnRef struct {
	Column string // Field name in the input (e.g., "sname")
	Alias  string // Optional output name (e.g., "name")
}

// Col references a column by name
func Col(name string) ColumnRef {
	return ColumnRef{Column: name}
}

// As references a column under a different output name
func As(name, alias string) ColumnRef {
	return ColumnRef{Column: name, Alias: alias}
}

// OutputName returns the alias if set, the column name otherwise
func (c ColumnRef) OutputName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Column
}

// Projection represents which columns to keep
type Projection struct {
	Columns []ColumnRef // Specific columns to select
}

// NewProjectionWithColumns creates a projection for specific columns
func NewProjectionWithColumns(columns ...ColumnRef) *Projection {
	return &Projection{Columns: columns}
}

// Validate checks that every projected column exists somewhere in r
func (p *Projection) Validate(r Relation) error {
	for _, c := range p.Columns {
		if err := r.requireField(c.Column, "select"); err != nil {
			return err
		}
	}
	return nil
}

// Apply projects a single record
// Returns a new record containing only the requested columns
func (p *Projection) Apply(rec data.Record) data.Record {
	projected := make(map[string]any, len(p.Columns))
	for _, c := range p.Columns {
		value, exists := rec.Lookup(c.Column)
		if !exists {
			// heterogeneous relations: not every record carries every column
			continue
		}
		projected[c.OutputName()] = value
	}
	return data.NewRecord(projected)
}

// OutputNames returns the names the projected records carry
func (p *Projection) OutputNames() []string {
	names := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		names[i] = c.OutputName()
	}
	return names
}
