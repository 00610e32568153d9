package fixture

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
)

// LoadFS loads the dataset rooted at dir in fsys.
// Tables listed in meta.json are loaded in that order; without a list every
// subdirectory is loaded as a table.
func LoadFS(fsys fs.FS, dir string, logger *slog.Logger) (*Dataset, error) {
	metaPath := path.Join(dir, "meta.json")

	raw, err := fs.ReadFile(fsys, metaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read database meta: %w", err)
	}

	var meta DatabaseMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse database meta: %w", err)
	}

	tables := meta.Tables
	if len(tables) == 0 {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read database directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				tables = append(tables, entry.Name())
			}
		}
	}

	ds := NewDataset(meta.Name)
	for _, name := range tables {
		ts, rel, err := LoadTable(fsys, path.Join(dir, name), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %s: %w", name, err)
		}
		ds.Add(ts, rel)
	}

	logger.Info("Database loaded successfully",
		slog.String("name", ds.Name),
		slog.String("path", dir),
		slog.Int("table_count", len(ds.order)),
	)

	return ds, nil
}
