package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/domain/schema"
	"github.com/leengari/relq/internal/relation"
)

// LoadTable reads dir/meta.json and dir/data.json from fsys.
// A table without data.json loads as an empty relation.
func LoadTable(fsys fs.FS, dir string, logger *slog.Logger) (*schema.TableSchema, relation.Relation, error) {
	metaPath := path.Join(dir, "meta.json")
	dataPath := path.Join(dir, "data.json")

	metaBytes, err := fs.ReadFile(fsys, metaPath)
	if err != nil {
		return nil, relation.Relation{}, err
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, relation.Relation{}, fmt.Errorf("parse %s: %w", metaPath, err)
	}

	ts := &schema.TableSchema{
		TableName: meta.Name,
		Columns:   make([]schema.Column, 0, len(meta.Columns)),
	}
	for _, c := range meta.Columns {
		ts.Columns = append(ts.Columns, schema.Column{
			Name:    c.Name,
			Type:    schema.ColumnType(c.Type),
			NotNull: c.NotNull,
		})
	}
	if err := ts.Validate(); err != nil {
		return nil, relation.Relation{}, err
	}

	var records []data.Record
	dataBytes, err := fs.ReadFile(fsys, dataPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no rows yet
	case err != nil:
		return nil, relation.Relation{}, err
	default:
		if err := validateRows(ts, dataBytes); err != nil {
			return nil, relation.Relation{}, err
		}

		var rows []map[string]any
		if err := json.Unmarshal(dataBytes, &rows); err != nil {
			return nil, relation.Relation{}, fmt.Errorf("parse %s: %w", dataPath, err)
		}

		records = make([]data.Record, 0, len(rows))
		for i, row := range rows {
			rec, err := ts.Coerce(row, i)
			if err != nil {
				return nil, relation.Relation{}, err
			}
			records = append(records, rec)
		}
	}

	if meta.RowCount > 0 && int64(len(records)) != meta.RowCount {
		logger.Warn("row count differs from meta",
			slog.String("table", meta.Name),
			slog.Int64("expected", meta.RowCount),
			slog.Int("actual", len(records)),
		)
	}

	logger.Info("table loaded",
		slog.String("table", meta.Name),
		slog.Int("rows", len(records)),
	)

	return ts, relation.Load(records).Named(meta.Name), nil
}
