// Package fixture loads the named relations that queries run against.
//
// A Provider hands out relations by name. Datasets can be read from JSON
// files on any fs.FS (the embedded seed by default, or a directory on disk)
// or from a SQL database, and are validated against their declared schema on
// the way in.
package fixture

import (
	"errors"
	"fmt"

	"github.com/leengari/relq/internal/domain/schema"
	"github.com/leengari/relq/internal/relation"
)

// ErrUnknownTable is returned when a provider has no relation of the requested name
var ErrUnknownTable = errors.New("unknown table")

// ErrInvalidData is returned when fixture rows do not validate against their table schema
var ErrInvalidData = errors.New("invalid fixture data")

// Provider supplies named relations
type Provider interface {
	Relation(name string) (relation.Relation, error)
}

// Dataset is an in-memory Provider: a set of named relations with their schemas
type Dataset struct {
	Name    string
	order   []string
	tables  map[string]relation.Relation
	schemas map[string]*schema.TableSchema
}

// NewDataset creates an empty dataset
func NewDataset(name string) *Dataset {
	return &Dataset{
		Name:    name,
		tables:  make(map[string]relation.Relation),
		schemas: make(map[string]*schema.TableSchema),
	}
}

// Add registers a relation under its schema's table name, replacing any
// previous relation of that name
func (d *Dataset) Add(s *schema.TableSchema, r relation.Relation) {
	if _, exists := d.tables[s.TableName]; !exists {
		d.order = append(d.order, s.TableName)
	}
	d.tables[s.TableName] = r.Named(s.TableName)
	d.schemas[s.TableName] = s
}

// Relation implements Provider
func (d *Dataset) Relation(name string) (relation.Relation, error) {
	r, ok := d.tables[name]
	if !ok {
		return relation.Relation{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return r, nil
}

// Schema returns the schema a table was loaded with
func (d *Dataset) Schema(name string) (*schema.TableSchema, bool) {
	s, ok := d.schemas[name]
	return s, ok
}

// Tables returns the table names in load order
func (d *Dataset) Tables() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}
