package controller

import (
	"context"
	"errors"

	"github.com/setavenger/neon-desktop/internal/keys"
	"github.com/setavenger/neon-desktop/internal/logging"
	"github.com/setavenger/neon-desktop/internal/state"
	"github.com/setavenger/neon-desktop/internal/storage"
)

// LoadKeys reads the stored key map into the state. Failures are logged and
// leave the state with an empty map.
func (s *Settings) LoadKeys(ctx context.Context) keys.KeyMap {
	m, err := s.storedKeys(ctx)
	if err != nil {
		logging.L.Err(err).Msg("failed to load saved wallet keys")
		m = keys.KeyMap{}
	}
	logging.L.Debug().Int("wallets", len(m)).Msg("loaded saved wallet keys")
	s.state.SetKeys(m)
	return m
}

// LoadSettings reads the stored settings record into the state without
// emitting a change event. Missing or unreadable records keep the defaults.
func (s *Settings) LoadSettings(ctx context.Context) {
	var rec state.SettingsRecord
	err := s.store.Get(ctx, storage.RecordSettings, &rec)
	if errors.Is(err, storage.ErrNotFound) {
		logging.L.Debug().Msg("no stored settings, using defaults")
		s.state.ReplaceSettings(s.defaults)
		return
	}
	if err != nil {
		logging.L.Err(err).Msg("failed to load settings, using defaults")
		s.state.ReplaceSettings(s.defaults)
		return
	}

	rec, fixed := rec.Normalise(s.defaults)
	if len(fixed) > 0 {
		logging.L.Warn().Strs("fields", fixed).Msg("stored settings had unknown values, reset to defaults")
	}
	s.state.ReplaceSettings(rec)
}

// PersistSettings overwrites the stored settings record.
func (s *Settings) PersistSettings(ctx context.Context, rec state.SettingsRecord) error {
	if err := s.store.Set(ctx, storage.RecordSettings, rec); err != nil {
		logging.L.Err(err).Msg("failed to persist settings")
		return err
	}
	logging.L.Debug().
		Str("explorer", rec.BlockExplorer).
		Str("network", rec.NetworkID).
		Str("currency", rec.Currency).
		Msg("settings persisted")
	return nil
}

// PersistKeys overwrites the stored key map.
func (s *Settings) PersistKeys(ctx context.Context, m keys.KeyMap) error {
	if m == nil {
		m = keys.KeyMap{}
	}
	if err := s.store.Set(ctx, storage.RecordKeys, m); err != nil {
		logging.L.Err(err).Msg("failed to persist wallet keys")
		return err
	}
	return nil
}

// storedKeys reads the key map from the store. A missing record is an empty map.
func (s *Settings) storedKeys(ctx context.Context) (keys.KeyMap, error) {
	var m keys.KeyMap
	err := s.store.Get(ctx, storage.RecordKeys, &m)
	if errors.Is(err, storage.ErrNotFound) {
		return keys.KeyMap{}, nil
	}
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = keys.KeyMap{}
	}
	return m, nil
}
