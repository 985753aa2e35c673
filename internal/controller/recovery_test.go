package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setavenger/neon-desktop/internal/keys"
	"github.com/setavenger/neon-desktop/internal/state"
	"github.com/setavenger/neon-desktop/internal/storage"
)

func storedKeys(t *testing.T, s storage.Store) keys.KeyMap {
	t.Helper()
	var m keys.KeyMap
	require.NoError(t, s.Get(context.Background(), storage.RecordKeys, &m))
	return m
}

func TestImportScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Set(ctx, storage.RecordKeys, keys.KeyMap{"wallet1": "Kx...ab"}))
	env.ctrl.LoadKeys(ctx)

	require.NoError(t, afero.WriteFile(env.fs, "/import.json",
		[]byte(`{"wallet1": "Kx...NEW", "wallet2": "Kx...cd"}`), 0600))
	env.dialogs.openPath = "/import.json"

	require.NoError(t, env.ctrl.ImportKeys(ctx))

	want := keys.KeyMap{"wallet1": "Kx...NEW", "wallet2": "Kx...cd"}
	assert.Equal(t, want, env.state.Keys())
	assert.Equal(t, want, storedKeys(t, env.store))
	assert.Empty(t, env.notices.errs)
	assert.Equal(t, []string{"Imported 2 wallet keys"}, env.notices.infos)
}

func TestImportKeepsEntriesOnlyInStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Set(ctx, storage.RecordKeys, keys.KeyMap{"a": "1", "b": "2"}))

	require.NoError(t, afero.WriteFile(env.fs, "/k.json", []byte(`{"b":"20","c":"3"}`), 0600))
	env.dialogs.openPath = "/k.json"

	require.NoError(t, env.ctrl.ImportKeys(ctx))
	assert.Equal(t, keys.KeyMap{"a": "1", "b": "20", "c": "3"}, storedKeys(t, env.store))
}

func TestImportIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, afero.WriteFile(env.fs, "/k.json", []byte(`{"w":"k"}`), 0600))
	env.dialogs.openPath = "/k.json"

	require.NoError(t, env.ctrl.ImportKeys(ctx))
	assert.Equal(t, keys.KeyMap{"w": "k"}, storedKeys(t, env.store))
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestEnv(t)
	m := keys.KeyMap{
		"main":    "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617",
		"savings": "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
		"ünï":     "Kx...ab",
	}
	src.state.SetKeys(m)
	src.dialogs.savePath = "/backup/keys.json"
	require.NoError(t, src.ctrl.ExportKeys(ctx))

	content, err := afero.ReadFile(src.fs, "/backup/keys.json")
	require.NoError(t, err)

	dst := newTestEnv(t)
	require.NoError(t, afero.WriteFile(dst.fs, "/keys.json", content, 0600))
	dst.dialogs.openPath = "/keys.json"
	require.NoError(t, dst.ctrl.ImportKeys(ctx))

	assert.Equal(t, m, dst.state.Keys())
	assert.Equal(t, m, storedKeys(t, dst.store))
}

func TestExportWritesFilterAndMode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.state.SetKeys(keys.KeyMap{"w": "k"})
	env.dialogs.savePath = "/out.json"
	require.NoError(t, afero.WriteFile(env.fs, "/out.json", []byte("old content that is longer"), 0644))

	require.NoError(t, env.ctrl.ExportKeys(ctx))

	assert.Equal(t, RecoveryFileFilter, env.dialogs.saveFilter)
	data, err := afero.ReadFile(env.fs, "/out.json")
	require.NoError(t, err)
	assert.Equal(t, `{"w":"k"}`, string(data))

	require.Len(t, env.notices.infos, 1)
	assert.Contains(t, env.notices.infos[0], "The file has been successfully saved")
	assert.Contains(t, env.notices.infos[0], keys.Checksum(data))
}

func TestExportEmptyMap(t *testing.T) {
	env := newTestEnv(t)
	env.dialogs.savePath = "/empty.json"

	require.NoError(t, env.ctrl.ExportKeys(context.Background()))

	data, err := afero.ReadFile(env.fs, "/empty.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.Len(t, env.notices.infos, 1)
	assert.Empty(t, env.notices.errs)
}

func TestExportWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	env.ctrl.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())
	env.dialogs.savePath = "/out.json"

	err := env.ctrl.ExportKeys(context.Background())
	require.Error(t, err)

	require.Len(t, env.notices.errs, 1)
	assert.True(t, strings.HasPrefix(env.notices.errs[0].Error(), "An error occurred creating the file "))
	assert.Empty(t, env.notices.infos)
	_, ok := env.store.Raw(storage.RecordKeys)
	assert.False(t, ok)
}

func TestExportWriteFailureRemovesCreatedFile(t *testing.T) {
	env := newTestEnv(t)
	env.state.SetKeys(keys.KeyMap{"w": "k"})
	mem := afero.NewMemMapFs()
	// the save dialog has already created the file
	require.NoError(t, afero.WriteFile(mem, "/out.json", nil, 0600))
	env.ctrl.fs = failingWriteFs{mem}
	env.dialogs.savePath = "/out.json"

	err := env.ctrl.ExportKeys(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, "An error occurred creating the file "+errDiskFull.Error(), err.Error())

	exists, err := afero.Exists(mem, "/out.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCancelledDialogsLeaveStoreUntouched(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.ctrl.Start(ctx)
	require.NoError(t, env.store.Set(ctx, storage.RecordKeys, keys.KeyMap{"w": "k"}))
	require.NoError(t, env.store.Set(ctx, storage.RecordSettings, state.DefaultSettings()))
	keysBefore, _ := env.store.Raw(storage.RecordKeys)
	settingsBefore, _ := env.store.Raw(storage.RecordSettings)

	assert.ErrorIs(t, env.ctrl.ExportKeys(ctx), ErrCancelled)
	assert.ErrorIs(t, env.ctrl.ImportKeys(ctx), ErrCancelled)

	keysAfter, _ := env.store.Raw(storage.RecordKeys)
	settingsAfter, _ := env.store.Raw(storage.RecordSettings)
	assert.Equal(t, keysBefore, keysAfter)
	assert.Equal(t, settingsBefore, settingsAfter)
	assert.Empty(t, env.notices.infos)
	assert.Empty(t, env.notices.errs)
	assert.Equal(t, 1, env.dialogs.saveCalls)
	assert.Equal(t, 1, env.dialogs.openCalls)
}

func TestDialogFailureIsReturned(t *testing.T) {
	env := newTestEnv(t)
	env.dialogs.err = errors.New("no display")

	assert.EqualError(t, env.ctrl.ExportKeys(context.Background()), "no display")
	assert.EqualError(t, env.ctrl.ImportKeys(context.Background()), "no display")
	assert.Empty(t, env.notices.errs)
}

func TestImportReadFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Set(ctx, storage.RecordKeys, keys.KeyMap{"w": "k"}))
	before, _ := env.store.Raw(storage.RecordKeys)
	env.dialogs.openPath = "/does/not/exist.json"

	require.Error(t, env.ctrl.ImportKeys(ctx))

	require.Len(t, env.notices.errs, 1)
	assert.Contains(t, env.notices.errs[0].Error(), "An error occurred reading the file")
	after, _ := env.store.Raw(storage.RecordKeys)
	assert.Equal(t, before, after)
}

func TestImportMalformedFile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Set(ctx, storage.RecordKeys, keys.KeyMap{"w": "k"}))
	before, _ := env.store.Raw(storage.RecordKeys)

	require.NoError(t, afero.WriteFile(env.fs, "/bad.json", []byte(`["not", "a", "map"]`), 0600))
	env.dialogs.openPath = "/bad.json"

	err := env.ctrl.ImportKeys(ctx)
	assert.ErrorIs(t, err, keys.ErrMalformedRecoveryFile)
	require.Len(t, env.notices.errs, 1)
	assert.ErrorIs(t, env.notices.errs[0], keys.ErrMalformedRecoveryFile)

	after, _ := env.store.Raw(storage.RecordKeys)
	assert.Equal(t, before, after)
	assert.Empty(t, env.state.Keys())
}

func TestImportStoreReadFailure(t *testing.T) {
	env := newTestEnv(t)
	env.ctrl.store = brokenStore{Memory: env.store}
	require.NoError(t, afero.WriteFile(env.fs, "/k.json", []byte(`{"w":"k"}`), 0600))
	env.dialogs.openPath = "/k.json"

	err := env.ctrl.ImportKeys(context.Background())
	assert.ErrorIs(t, err, errBroken)
	require.Len(t, env.notices.errs, 1)
	_, ok := env.store.Raw(storage.RecordKeys)
	assert.False(t, ok)
}

func TestImportPersistFailureIsSilent(t *testing.T) {
	env := newTestEnv(t)
	env.store.FailSet = errors.New("read-only store")
	require.NoError(t, afero.WriteFile(env.fs, "/k.json", []byte(`{"w":"k"}`), 0600))
	env.dialogs.openPath = "/k.json"

	require.NoError(t, env.ctrl.ImportKeys(context.Background()))
	assert.Equal(t, keys.KeyMap{"w": "k"}, env.state.Keys())
	assert.Empty(t, env.notices.errs)
}
