package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBStore maps record names directly onto LevelDB keys.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates the leveldb directory at path
func OpenLevelDB(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb: %w", err)
	}
	return &LevelDBStore{db: db}, nil
}

func (s *LevelDBStore) Get(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.db.Get([]byte(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (s *LevelDBStore) Set(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := s.db.Put([]byte(name), data, nil); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Close closes the database
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
