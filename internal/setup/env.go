// Package setup opens everything a front end needs before it can drive the
// settings controller.
package setup

import (
	"fmt"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/logging"
	"github.com/setavenger/neon-desktop/internal/state"
	"github.com/setavenger/neon-desktop/internal/storage"
)

// Env is the opened store plus the state seeded with the configured defaults.
type Env struct {
	Config   *configs.AppConfig
	Store    storage.Store
	State    *state.State
	Defaults state.SettingsRecord
}

// Options override values from neon.toml. Zero values keep the config file's value.
type Options struct {
	DataDir      string
	StoreBackend string
	LogLevel     string
}

// Open loads the config from the data directory and opens the configured store.
// The caller owns Env.Store and has to close it.
func Open(opts Options) (*Env, error) {
	cfg, err := configs.LoadConfig(opts.DataDir)
	if err != nil {
		return nil, err
	}
	if opts.StoreBackend != "" {
		cfg.StoreBackend = opts.StoreBackend
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	logging.SetLogLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := storage.Open(cfg.StoreBackend, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	logging.L.Debug().
		Str("data_dir", cfg.DataDir).
		Str("backend", cfg.StoreBackend).
		Msg("store opened")

	defaults := Defaults(cfg)
	return &Env{
		Config:   cfg,
		Store:    store,
		State:    state.New(defaults),
		Defaults: defaults,
	}, nil
}

// Defaults is the settings record used when nothing valid is stored.
func Defaults(cfg *configs.AppConfig) state.SettingsRecord {
	rec := state.DefaultSettings()
	rec.BlockExplorer = cfg.DefaultExplorer
	rec.NetworkID = cfg.DefaultNetwork
	rec.Currency = cfg.DefaultCurrency
	return rec
}
