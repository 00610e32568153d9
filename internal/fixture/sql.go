package fixture

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/schema"
	"github.com/leengari/relq/internal/relation"
)

// sqlTypes maps column types to SQLite storage classes.
// Dates are stored as YYYY-MM-DD text.
var sqlTypes = map[schema.ColumnType]string{
	schema.ColumnTypeInt:   "INTEGER",
	schema.ColumnTypeFloat: "REAL",
	schema.ColumnTypeText:  "TEXT",
	schema.ColumnTypeDate:  "TEXT",
}

// OpenSQLite opens a SQLite database through the pure-Go modernc driver
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// an in-memory database lives and dies with its connection
	db.SetMaxOpenConns(1)
	return db, nil
}

// LoadSQL reads the given tables from db. Each table must have the declared
// columns; rows are read in rowid order.
func LoadSQL(ctx context.Context, db *sql.DB, logger *slog.Logger, schemas ...*schema.TableSchema) (*Dataset, error) {
	ds := NewDataset("sql")
	for _, ts := range schemas {
		rel, err := loadSQLTable(ctx, db, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %s: %w", ts.TableName, err)
		}
		ds.Add(ts, rel)

		logger.Info("table loaded",
			slog.String("table", ts.TableName),
			slog.Int("rows", rel.Len()),
			slog.String("source", "sql"),
		)
	}
	return ds, nil
}

func loadSQLTable(ctx context.Context, db *sql.DB, ts *schema.TableSchema) (relation.Relation, error) {
	names := ts.FieldNames()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", quoteAll(names), quote(ts.TableName))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return relation.Relation{}, err
	}
	defer rows.Close()

	var records []data.Record
	for i := 0; rows.Next(); i++ {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for j := range values {
			ptrs[j] = &values[j]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return relation.Relation{}, err
		}

		raw := make(map[string]any, len(names))
		for j, name := range names {
			raw[name] = values[j]
		}
		rec, err := ts.Coerce(raw, i)
		if err != nil {
			return relation.Relation{}, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return relation.Relation{}, err
	}

	return relation.Load(records), nil
}

// WriteSQL (re)creates every table of ds in db and inserts its rows, in one
// transaction
func WriteSQL(ctx context.Context, db *sql.DB, ds *Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, name := range ds.Tables() {
		ts, _ := ds.Schema(name)
		rel, _ := ds.Relation(name)
		if err := writeSQLTable(ctx, tx, ts, rel); err != nil {
			return fmt.Errorf("failed to write table %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func writeSQLTable(ctx context.Context, tx *sql.Tx, ts *schema.TableSchema, rel relation.Relation) error {
	defs := make([]string, len(ts.Columns))
	for i, col := range ts.Columns {
		def := quote(col.Name) + " " + sqlTypes[col.Type]
		if col.NotNull {
			def += " NOT NULL"
		}
		defs[i] = def
	}

	stmts := []string{
		"DROP TABLE IF EXISTS " + quote(ts.TableName),
		fmt.Sprintf("CREATE TABLE %s (%s)", quote(ts.TableName), strings.Join(defs, ", ")),
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	names := ts.FieldNames()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insert, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(ts.TableName), quoteAll(names), placeholders))
	if err != nil {
		return err
	}
	defer insert.Close()

	for _, rec := range rel.Records() {
		args := make([]any, len(names))
		for i, name := range names {
			args[i] = sqlValue(rec.Get(name))
		}
		if _, err := insert.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

func sqlValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(data.DateLayout)
	default:
		if data.IsNull(v) {
			return nil
		}
		return v
	}
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func quoteAll(idents []string) string {
	quoted := make([]string, len(idents))
	for i, id := range idents {
		quoted[i] = quote(id)
	}
	return strings.Join(quoted, ", ")
}
