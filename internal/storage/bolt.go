package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asdine/storm/v3"
	bolt "go.etcd.io/bbolt"

	"github.com/setavenger/neon-desktop/internal/logging"
)

const settingsBucketName = "settings"

// BoltStore keeps every record in a single storm bucket.
type BoltStore struct {
	db *storm.DB
}

// OpenBolt opens or creates the bolt database at path
func OpenBolt(path string) (*BoltStore, error) {
	db, err := storm.Open(path, storm.BoltOptions(0600, &bolt.Options{Timeout: time.Second}))
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			logging.L.Error().Str("path", path).Msg("settings db is in use by another process")
			return nil, fmt.Errorf("store in use by another process: %w", err)
		}
		return nil, fmt.Errorf("failed to open settings db: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Get(settingsBucketName, name, out)
	if errors.Is(err, storm.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

func (s *BoltStore) Set(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.Set(settingsBucketName, name, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Close releases the database file lock
func (s *BoltStore) Close() error {
	return s.db.Close()
}
