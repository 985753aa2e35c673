package configs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/setavenger/neon-desktop/internal/logging"
)

// DefaultDataDir returns the default data dir "~/.neon-desktop/"
// if homedir is not found falls back to current directory "."
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logging.L.Err(err).Msg("error getting home directory")
		logging.L.Info().Msg("falling back to current directory")
		homeDir = "."
	}
	dataDir := filepath.Join(homeDir, ".neon-desktop")
	logging.L.Trace().Str("data_dir", dataDir).Msg("data directory")
	return dataDir
}

// ResolvePath expands a leading "~" and makes the path absolute.
func ResolvePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// Built-in network identifiers.
const (
	NetworkMainNet = "1"
	NetworkTestNet = "2"
)

// Block explorers.
const (
	ExplorerNeoTracker = "Neotracker"
	ExplorerNeoScan    = "Neoscan"
	ExplorerAntChain   = "Antchain"
)

const (
	DefaultNetwork  = NetworkMainNet
	DefaultExplorer = ExplorerNeoTracker
	DefaultCurrency = "usd"

	DefaultStoreBackend = "bolt"

	// RecoveryFileExtension is offered as the only filter in the export dialog.
	RecoveryFileExtension = "json"
)

// BuiltinNetwork is a network that ships with the application.
type BuiltinNetwork struct {
	ID    string
	Label string
}

var builtinNetworks = []BuiltinNetwork{
	{ID: NetworkMainNet, Label: "MainNet"},
	{ID: NetworkTestNet, Label: "TestNet"},
}

var explorers = []string{
	ExplorerNeoTracker,
	ExplorerNeoScan,
	ExplorerAntChain,
}

var currencies = []string{
	"usd", "eur", "gbp", "cny", "jpy", "krw", "cad", "aud", "chf",
}

// BuiltinNetworks returns the networks every installation knows about.
func BuiltinNetworks() []BuiltinNetwork {
	return slices.Clone(builtinNetworks)
}

// Explorers returns the selectable block explorer identifiers in display order.
func Explorers() []string {
	return slices.Clone(explorers)
}

// Currencies returns the selectable currency codes in display order.
func Currencies() []string {
	return slices.Clone(currencies)
}

// IsExplorer reports whether id is one of Explorers
func IsExplorer(id string) bool {
	return slices.Contains(explorers, id)
}

// IsCurrency reports whether code is one of Currencies
func IsCurrency(code string) bool {
	return slices.Contains(currencies, code)
}

// IsBuiltinNetwork reports whether id is MainNet or TestNet
func IsBuiltinNetwork(id string) bool {
	return slices.ContainsFunc(builtinNetworks, func(n BuiltinNetwork) bool {
		return n.ID == id
	})
}
