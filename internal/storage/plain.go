package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/setavenger/neon-desktop/internal/logging"
)

// FileStore writes each record as "<name>.json" into a directory.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore stores each record as <name>.json in dir
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Get(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := afero.ReadFile(s.fs, s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		logging.L.Err(err).Str("record", name).Msg("failed to load record file")
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Set(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(name), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
