package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/godilite/windrose/internal/dataset"
	dbbuilder "github.com/godilite/windrose/pkg/database"
	_ "github.com/mattn/go-sqlite3"
)

// ErrUnsupportedSource is returned for data files of an unknown kind.
var ErrUnsupportedSource = errors.New("unsupported data source")

// FileLoader reads a rating dataset from a JSON or SQLite file, picked by
// file extension.
type FileLoader struct {
	driver      string
	pingTimeout time.Duration
}

// NewFileLoader returns a loader using the sqlite3 driver for database files.
func NewFileLoader() *FileLoader {
	return &FileLoader{driver: "sqlite3", pingTimeout: 2 * time.Second}
}

// Load reads the dataset at path. A missing file yields an error wrapping
// os.ErrNotExist.
func (l *FileLoader) Load(ctx context.Context, path string) (*dataset.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return l.loadJSON(path)
	case ".db", ".sqlite", ".sqlite3":
		return l.loadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}
}

func (l *FileLoader) loadJSON(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := dataset.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return d, nil
}

func (l *FileLoader) loadSQLite(ctx context.Context, path string) (*dataset.Dataset, error) {
	db, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(l.driver),
		dbbuilder.WithDataSource(dbbuilder.SQLiteFileDSN(path, true)),
		dbbuilder.WithMaxOpenConns(1),
		dbbuilder.WithPingTimeout(l.pingTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	d, err := NewRatingRepository(db).Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return d, nil
}
