package controller

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/setavenger/neon-desktop/internal/state"
	"github.com/setavenger/neon-desktop/internal/storage"
)

type fakeDialogs struct {
	savePath   string
	openPath   string
	err        error
	saveFilter FileFilter
	saveCalls  int
	openCalls  int
}

func (d *fakeDialogs) SaveFile(_ context.Context, filter FileFilter) (string, error) {
	d.saveCalls++
	d.saveFilter = filter
	if d.err != nil {
		return "", d.err
	}
	if d.savePath == "" {
		return "", ErrCancelled
	}
	return d.savePath, nil
}

func (d *fakeDialogs) OpenFile(context.Context) (string, error) {
	d.openCalls++
	if d.err != nil {
		return "", d.err
	}
	if d.openPath == "" {
		return "", ErrCancelled
	}
	return d.openPath, nil
}

type fakeNotices struct {
	mu    sync.Mutex
	infos []string
	errs  []error
}

func (n *fakeNotices) Info(_, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, message)
}

func (n *fakeNotices) Error(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, err)
}

// fakeModals answers every modal with the configured resolution. A nil
// resolution closes the channel, like a window closed by the user.
type fakeModals struct {
	confirm     *Resolution[bool]
	privateNets *Resolution[[]state.PrivateNetwork]
	tokens      *Resolution[[]state.Token]

	confirmReqs []ConfirmRequest
	privateReqs []PrivateNetRequest
	tokenReqs   []TokenRequest
}

func resolve[T any](r *Resolution[T]) <-chan Resolution[T] {
	ch := make(chan Resolution[T], 1)
	if r == nil {
		close(ch)
		return ch
	}
	ch <- *r
	return ch
}

func (m *fakeModals) Confirm(_ context.Context, req ConfirmRequest) <-chan Resolution[bool] {
	m.confirmReqs = append(m.confirmReqs, req)
	return resolve(m.confirm)
}

func (m *fakeModals) EditPrivateNetworks(_ context.Context, req PrivateNetRequest) <-chan Resolution[[]state.PrivateNetwork] {
	m.privateReqs = append(m.privateReqs, req)
	return resolve(m.privateNets)
}

func (m *fakeModals) EditTokens(_ context.Context, req TokenRequest) <-chan Resolution[[]state.Token] {
	m.tokenReqs = append(m.tokenReqs, req)
	return resolve(m.tokens)
}

// brokenStore fails every Get with a non not-found error.
type brokenStore struct {
	*storage.Memory
}

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string, any) error { return errBroken }

type testEnv struct {
	ctrl    *Settings
	store   *storage.Memory
	state   *state.State
	fs      afero.Fs
	dialogs *fakeDialogs
	notices *fakeNotices
	modals  *fakeModals
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:   storage.NewMemory(),
		state:   state.New(state.DefaultSettings()),
		fs:      afero.NewMemMapFs(),
		dialogs: &fakeDialogs{},
		notices: &fakeNotices{},
		modals:  &fakeModals{},
	}
	ctrl, err := New(Deps{
		Store:   env.store,
		State:   env.state,
		FS:      env.fs,
		Dialogs: env.dialogs,
		Notices: env.notices,
		Modals:  env.modals,
	})
	require.NoError(t, err)
	env.ctrl = ctrl
	return env
}

// blockingStore holds the first settings write until release is closed.
type blockingStore struct {
	*storage.Memory
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newBlockingStore(m *storage.Memory) *blockingStore {
	return &blockingStore{Memory: m, entered: make(chan struct{}), release: make(chan struct{})}
}

func (s *blockingStore) Set(ctx context.Context, name string, value any) error {
	if name == storage.RecordSettings {
		first := false
		s.once.Do(func() { first = true })
		if first {
			close(s.entered)
			<-s.release
		}
	}
	return s.Memory.Set(ctx, name, value)
}

var errDiskFull = errors.New("no space left on device")

// failingWriteFs creates files normally but fails every write to them.
type failingWriteFs struct {
	afero.Fs
}

func (fs failingWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return failingWriteFile{f}, nil
}

type failingWriteFile struct {
	afero.File
}

func (failingWriteFile) Write([]byte) (int, error) { return 0, errDiskFull }
