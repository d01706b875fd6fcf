// Package file provides a store.Store that keeps each key in its own file
// under a data directory. It is the default backend: two small JSON blobs do
// not warrant a database, and the files are trivially inspectable.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists each key as <dir>/<key>.json.
// Keys are restricted to a safe character set so they can never escape dir.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file.New: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get reads the file for key. A missing file means the key was never set.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("file.Store.Get: read %q: %w", key, err)
	}
	return string(b), true, nil
}

// Set writes value atomically: to a temp file in the same directory first,
// then renamed over the target, so a crash mid-write cannot leave a torn blob.
func (s *Store) Set(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("file.Store.Set: temp file for %q: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("file.Store.Set: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file.Store.Set: close %q: %w", key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file.Store.Set: rename %q: %w", key, err)
	}
	return nil
}

// path validates key and maps it to its backing file.
func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", fmt.Errorf("file store: invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
