package state

import (
	"slices"

	"github.com/setavenger/neon-desktop/internal/configs"
)

// Network is an entry of the network selector.
type Network struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PrivateNetwork is a user defined network endpoint.
type PrivateNetwork struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Token is a user defined asset bound to a network.
type Token struct {
	ID              string `json:"id"`
	Symbol          string `json:"symbol"`
	ScriptHash      string `json:"scriptHash"`
	NetworkID       string `json:"networkId"`
	IsUserGenerated bool   `json:"isUserGenerated"`
}

// SettingsRecord is stored as a whole under the "settings" record.
type SettingsRecord struct {
	BlockExplorer   string           `json:"blockExplorer"`
	NetworkID       string           `json:"networkId"`
	Currency        string           `json:"currency"`
	PrivateNetworks []PrivateNetwork `json:"privateNetworks"`
	Tokens          []Token          `json:"tokens"`
}

// DefaultSettings returns the record used before anything was stored.
func DefaultSettings() SettingsRecord {
	return SettingsRecord{
		BlockExplorer:   configs.DefaultExplorer,
		NetworkID:       configs.DefaultNetwork,
		Currency:        configs.DefaultCurrency,
		PrivateNetworks: []PrivateNetwork{},
		Tokens:          []Token{},
	}
}

// Clone returns a copy that shares no slices with r
func (r SettingsRecord) Clone() SettingsRecord {
	r.PrivateNetworks = cloneOrEmpty(r.PrivateNetworks)
	r.Tokens = cloneOrEmpty(r.Tokens)
	return r
}

// Equal reports whether r and o hold the same values
func (r SettingsRecord) Equal(o SettingsRecord) bool {
	return r.BlockExplorer == o.BlockExplorer &&
		r.NetworkID == o.NetworkID &&
		r.Currency == o.Currency &&
		slices.Equal(r.PrivateNetworks, o.PrivateNetworks) &&
		slices.Equal(r.Tokens, o.Tokens)
}

// Normalise replaces fields that are not part of the reference tables with the
// matching field of defaults. It returns the names of the fields it replaced.
func (r SettingsRecord) Normalise(defaults SettingsRecord) (SettingsRecord, []string) {
	var fixed []string
	out := r.Clone()
	if !configs.IsExplorer(out.BlockExplorer) {
		out.BlockExplorer = defaults.BlockExplorer
		fixed = append(fixed, "blockExplorer")
	}
	if !configs.IsCurrency(out.Currency) {
		out.Currency = defaults.Currency
		fixed = append(fixed, "currency")
	}
	if !out.knowsNetwork(out.NetworkID) {
		out.NetworkID = defaults.NetworkID
		fixed = append(fixed, "networkId")
	}
	return out, fixed
}

func (r SettingsRecord) knowsNetwork(id string) bool {
	if configs.IsBuiltinNetwork(id) {
		return true
	}
	return slices.ContainsFunc(r.PrivateNetworks, func(n PrivateNetwork) bool {
		return n.ID == id
	})
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
