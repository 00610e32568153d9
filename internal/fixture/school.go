package fixture

import (
	"fmt"

	"github.com/leengari/relq/internal/domain/errors"
	"github.com/leengari/relq/internal/domain/schema"
	"github.com/leengari/relq/internal/relation"
)

// Table schemas of the school dataset
var (
	StudentsSchema = &schema.TableSchema{
		TableName: "students",
		Columns: []schema.Column{
			{Name: "sno", Type: schema.ColumnTypeInt, NotNull: true},
			{Name: "sname", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "ssex", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "sbirthday", Type: schema.ColumnTypeDate},
			{Name: "class", Type: schema.ColumnTypeInt},
		},
	}
	TeachersSchema = &schema.TableSchema{
		TableName: "teachers",
		Columns: []schema.Column{
			{Name: "tno", Type: schema.ColumnTypeInt, NotNull: true},
			{Name: "tname", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "tsex", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "tbirthday", Type: schema.ColumnTypeDate},
			{Name: "prof", Type: schema.ColumnTypeText},
			{Name: "depart", Type: schema.ColumnTypeText, NotNull: true},
		},
	}
	CoursesSchema = &schema.TableSchema{
		TableName: "courses",
		Columns: []schema.Column{
			{Name: "cno", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "cname", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "tno", Type: schema.ColumnTypeInt, NotNull: true},
		},
	}
	ScoresSchema = &schema.TableSchema{
		TableName: "scores",
		Columns: []schema.Column{
			{Name: "sno", Type: schema.ColumnTypeInt, NotNull: true},
			{Name: "cno", Type: schema.ColumnTypeText, NotNull: true},
			{Name: "degree", Type: schema.ColumnTypeInt},
		},
	}
)

// SchoolSchemas returns the four school table schemas in load order
func SchoolSchemas() []*schema.TableSchema {
	return []*schema.TableSchema{StudentsSchema, TeachersSchema, CoursesSchema, ScoresSchema}
}

// School binds the four relations the exercises query
type School struct {
	Students relation.Relation
	Teachers relation.Relation
	Courses  relation.Relation
	Scores   relation.Relation
}

// NewSchool fetches the school relations from p and checks that every
// non-empty relation carries the columns of its schema. The bound relations
// declare their schema columns, so empty tables still yield null columns in
// outer joins.
func NewSchool(p Provider) (School, error) {
	var s School
	targets := []struct {
		schema *schema.TableSchema
		dst    *relation.Relation
	}{
		{StudentsSchema, &s.Students},
		{TeachersSchema, &s.Teachers},
		{CoursesSchema, &s.Courses},
		{ScoresSchema, &s.Scores},
	}

	for _, t := range targets {
		rel, err := p.Relation(t.schema.TableName)
		if err != nil {
			return School{}, err
		}
		if !rel.IsEmpty() {
			for _, col := range t.schema.FieldNames() {
				if !rel.HasField(col) {
					return School{}, fmt.Errorf("school: %w",
						errors.NewFieldNotFound(t.schema.TableName, col, "bind"))
				}
			}
		}
		*t.dst = rel.Named(t.schema.TableName).WithFields(t.schema.FieldNames()...)
	}
	return s, nil
}
