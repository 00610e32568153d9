package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/relq/databases"
)

// Source selects where a dataset is read from
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceDir      Source = "dir"
	SourceSQLite   Source = "sqlite"
)

// Valid reports whether s is a known source kind
func (s Source) Valid() bool {
	switch s {
	case SourceEmbedded, SourceDir, SourceSQLite:
		return true
	}
	return false
}

// EmbeddedRoot is the directory of the school dataset inside databases.Content
const EmbeddedRoot = "school"

// Options describe a fixture source
type Options struct {
	Source Source
	Dir    string // dataset directory for SourceDir (contains meta.json)
	DSN    string // data source name for SourceSQLite
}

// Open loads the dataset described by opts fully into memory
func Open(ctx context.Context, opts Options, logger *slog.Logger) (*Dataset, error) {
	switch opts.Source {
	case SourceEmbedded, "":
		return LoadFS(databases.Content, EmbeddedRoot, logger)
	case SourceDir:
		if opts.Dir == "" {
			return nil, fmt.Errorf("fixture source %s requires a directory", opts.Source)
		}
		return LoadFS(os.DirFS(opts.Dir), ".", logger)
	case SourceSQLite:
		if opts.DSN == "" {
			return nil, fmt.Errorf("fixture source %s requires a DSN", opts.Source)
		}
		db, err := OpenSQLite(opts.DSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return LoadSQL(ctx, db, logger, SchoolSchemas()...)
	default:
		return nil, fmt.Errorf("unknown fixture source %q", opts.Source)
	}
}
