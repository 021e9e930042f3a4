// Package store persists tracker state to a local file, either as the JSON
// document or as a SQLite database.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rcliao/cycletrack/internal/model"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrNoData is returned by Load when the data file does not exist yet.
var ErrNoData = errors.New("no data file")

// ReadError is returned by Load when the data file exists but cannot be read
// or parsed. Nothing from the file is recovered.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is returned by Save when the state could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Snapshot is the persisted form of the tracker state.
type Snapshot struct {
	Cycles   []model.Date
	Symptoms map[model.Date]model.SymptomRecord
}

// Store defines the persistence interface.
type Store interface {
	// Load reads the whole state. It returns ErrNoData when nothing has been
	// saved yet and a *ReadError when the file is unusable.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored state with snap.
	Save(ctx context.Context, snap *Snapshot) error

	// Path returns the data file location.
	Path() string

	// Close releases any held resources.
	Close() error
}

// Open returns the store for path. An empty backend is inferred from the
// file extension: .db, .sqlite and .sqlite3 use SQLite, anything else JSON.
func Open(path, backend string) (Store, error) {
	if backend == "" {
		backend = InferBackend(path)
	}
	switch backend {
	case BackendJSON:
		return NewJSONStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("unknown backend %q (valid: json, sqlite)", backend)
}

// InferBackend picks a backend name from the file extension.
func InferBackend(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	}
	return BackendJSON
}
