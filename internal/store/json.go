package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// JSONStore keeps the state in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store for the JSON file at path. Nothing is touched
// on disk until Load or Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, &ReadError{Path: s.path, Err: err}
	}
	snap, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	return snap, nil
}

// Save writes the whole document to a temp file beside the target and renames
// it into place.
func (s *JSONStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := s.save(snap); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

func (s *JSONStore) save(snap *Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *JSONStore) Close() error { return nil }
