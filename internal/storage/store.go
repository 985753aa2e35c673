// Package storage handles the saving and retrieving of the applications data
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Record names used by the application.
const (
	RecordKeys     = "keys"
	RecordSettings = "settings"
)

// ErrNotFound is returned by Get when no record with the given name was stored yet.
var ErrNotFound = errors.New("record not found")

// Store is a persistent key-value store addressed by record name.
// Values are JSON encoded by every backend.
type Store interface {
	Get(ctx context.Context, name string, out any) error
	Set(ctx context.Context, name string, value any) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBolt    = "bolt"
	BackendLevelDB = "leveldb"
	BackendFile    = "file"
	BackendMemory  = "memory"
)

// Open opens the store backend named by backend inside dataDir.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case BackendBolt, "":
		return OpenBolt(filepath.Join(dataDir, "settings.db"))
	case BackendLevelDB:
		return OpenLevelDB(filepath.Join(dataDir, "settings.ldb"))
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), dataDir), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
