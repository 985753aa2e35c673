// Package controller is the interface between GUI and underlying data types handled outside
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/spf13/afero"

	"github.com/setavenger/neon-desktop/internal/logging"
	"github.com/setavenger/neon-desktop/internal/state"
	"github.com/setavenger/neon-desktop/internal/storage"
)

// Deps are the collaborators of Settings. All fields are required.
type Deps struct {
	Store   storage.Store
	State   *state.State
	FS      afero.Fs
	Dialogs FileDialogs
	Notices Notifier
	Modals  Modals

	// Defaults replace unknown values found in a stored settings record.
	Defaults state.SettingsRecord
}

// Settings drives the settings screen: key map management, key recovery
// files and settings persistence.
type Settings struct {
	store    storage.Store
	state    *state.State
	fs       afero.Fs
	dialogs  FileDialogs
	notices  Notifier
	modals   Modals
	defaults state.SettingsRecord

	// persistMu orders settings writes, see Start.
	persistMu sync.Mutex
}

// New validates d and returns a controller. Call Start before using it.
func New(d Deps) (*Settings, error) {
	if d.Store == nil || d.State == nil || d.FS == nil {
		return nil, errors.New("controller: store, state and fs are required")
	}
	if d.Dialogs == nil || d.Notices == nil || d.Modals == nil {
		return nil, errors.New("controller: dialogs, notices and modals are required")
	}
	defaults := d.Defaults
	if defaults.BlockExplorer == "" {
		defaults = state.DefaultSettings()
	}
	return &Settings{
		store:    d.Store,
		state:    d.State,
		fs:       d.FS,
		dialogs:  d.Dialogs,
		notices:  d.Notices,
		modals:   d.Modals,
		defaults: defaults,
	}, nil
}

// Start loads the stored settings and keys into the state and from then on
// persists every settings change. ctx bounds the lifetime of that persistence.
func (s *Settings) Start(ctx context.Context) {
	s.LoadSettings(ctx)
	s.LoadKeys(ctx)

	// Listeners may run concurrently and out of order. Each write reads the
	// state under persistMu, so the last write always carries the latest record.
	s.state.OnSettingsChanged(func(state.SettingsRecord) {
		if ctx.Err() != nil {
			logging.L.Warn().Msg("settings change after shutdown not persisted")
			return
		}
		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		_ = s.PersistSettings(ctx, s.state.Settings())
	})
}
