package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/storage"
)

func TestOpenWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	env, err := Open(Options{DataDir: dir, StoreBackend: storage.BackendMemory})
	require.NoError(t, err)
	defer env.Store.Close()

	assert.FileExists(t, filepath.Join(dir, "neon.toml"))
	assert.Equal(t, dir, env.Config.DataDir)
	assert.Equal(t, storage.BackendMemory, env.Config.StoreBackend)
	assert.Equal(t, configs.DefaultExplorer, env.State.Settings().BlockExplorer)
}

func TestOpenUsesConfiguredDefaults(t *testing.T) {
	dir := t.TempDir()
	conf := "store_backend = 'file'\ndefault_explorer = 'Antchain'\ndefault_currency = 'eur'\ndefault_network = '2'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neon.toml"), []byte(conf), 0600))

	env, err := Open(Options{DataDir: dir})
	require.NoError(t, err)
	defer env.Store.Close()

	rec := env.State.Settings()
	assert.Equal(t, configs.ExplorerAntChain, rec.BlockExplorer)
	assert.Equal(t, "eur", rec.Currency)
	assert.Equal(t, configs.NetworkTestNet, rec.NetworkID)
	assert.Equal(t, rec, env.Defaults)

	require.NoError(t, env.Store.Set(context.Background(), storage.RecordKeys, map[string]string{"a": "b"}))
	assert.FileExists(t, filepath.Join(dir, "keys.json"))
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(Options{DataDir: t.TempDir(), StoreBackend: "redis"})
	assert.Error(t, err)
}
