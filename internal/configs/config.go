package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/setavenger/neon-desktop/internal/logging"
)

const configName = "neon"

// AppConfig is the process level configuration read from neon.toml in the data dir.
// User facing settings (explorer, currency, ...) live in the key-value store instead.
type AppConfig struct {
	DataDir         string
	StoreBackend    string
	NativeDialogs   bool
	LogLevel        string
	DefaultNetwork  string
	DefaultExplorer string
	DefaultCurrency string
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(config *viper.Viper) {
	config.SetDefault("store_backend", DefaultStoreBackend)
	config.SetDefault("native_dialogs", false)
	config.SetDefault("log_level", "info")
	config.SetDefault("default_network", DefaultNetwork)
	config.SetDefault("default_explorer", DefaultExplorer)
	config.SetDefault("default_currency", DefaultCurrency)
}

// LoadConfig reads neon.toml from dataDir, creating it with defaults if it does not exist yet.
// dataDir is created if needed.
func LoadConfig(dataDir string) (*AppConfig, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	} else {
		dataDir = ResolvePath(dataDir)
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	config := viper.New()
	config.SetConfigName(configName)
	config.SetConfigType("toml")
	config.AddConfigPath(dataDir)

	setDefaultConfig(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := config.WriteConfigAs(filepath.Join(dataDir, configName+".toml")); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		logging.L.Info().Str("data_dir", dataDir).Msg("default config file created")
	} else {
		logging.L.Debug().Str("file", config.ConfigFileUsed()).Msg("existing config loaded")
	}

	cfg := &AppConfig{
		DataDir:         dataDir,
		StoreBackend:    config.GetString("store_backend"),
		NativeDialogs:   config.GetBool("native_dialogs"),
		LogLevel:        config.GetString("log_level"),
		DefaultNetwork:  config.GetString("default_network"),
		DefaultExplorer: config.GetString("default_explorer"),
		DefaultCurrency: config.GetString("default_currency"),
	}

	if !IsExplorer(cfg.DefaultExplorer) {
		logging.L.Warn().Str("explorer", cfg.DefaultExplorer).Msg("unknown default explorer in config")
		cfg.DefaultExplorer = DefaultExplorer
	}
	if !IsCurrency(cfg.DefaultCurrency) {
		logging.L.Warn().Str("currency", cfg.DefaultCurrency).Msg("unknown default currency in config")
		cfg.DefaultCurrency = DefaultCurrency
	}
	if !IsBuiltinNetwork(cfg.DefaultNetwork) {
		logging.L.Warn().Str("network", cfg.DefaultNetwork).Msg("unknown default network in config")
		cfg.DefaultNetwork = DefaultNetwork
	}

	return cfg, nil
}
