// Package state is the in-memory application state shared by the views.
// Setters notify listeners after the lock is released, in registration order.
package state

import (
	"sync"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/keys"
)

// State holds the saved wallet keys and the settings record shown on screen
type State struct {
	mu       sync.RWMutex
	keys     keys.KeyMap
	settings SettingsRecord

	listenersMu       sync.RWMutex
	settingsListeners []func(SettingsRecord)
	keysListeners     []func(keys.KeyMap)
}

// New creates a state with initial settings and no keys
func New(initial SettingsRecord) *State {
	return &State{
		keys:     keys.KeyMap{},
		settings: initial.Clone(),
	}
}

// OnSettingsChanged registers fn to receive every new settings record.
func (s *State) OnSettingsChanged(fn func(SettingsRecord)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.settingsListeners = append(s.settingsListeners, fn)
}

// OnKeysChanged registers fn to receive the key map after every SetKeys.
func (s *State) OnKeysChanged(fn func(keys.KeyMap)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.keysListeners = append(s.keysListeners, fn)
}

// Keys returns a copy of the key map
func (s *State) Keys() keys.KeyMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys.Clone()
}

// SetKeys replaces the key map and notifies the keys listeners
func (s *State) SetKeys(m keys.KeyMap) {
	s.mu.Lock()
	s.keys = m.Clone()
	snapshot := s.keys.Clone()
	s.mu.Unlock()

	s.listenersMu.RLock()
	listeners := s.keysListeners
	s.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}

// Settings returns a copy of the settings record
func (s *State) Settings() SettingsRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// ReplaceSettings swaps the whole record without notifying listeners.
// It is used when the record was just read from the store.
func (s *State) ReplaceSettings(rec SettingsRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = rec.Clone()
}

// SetBlockExplorer selects the block explorer
func (s *State) SetBlockExplorer(id string) {
	s.update(func(r *SettingsRecord) { r.BlockExplorer = id })
}

// SetCurrency selects the display currency
func (s *State) SetCurrency(code string) {
	s.update(func(r *SettingsRecord) { r.Currency = code })
}

// SetNetworkID selects the network
func (s *State) SetNetworkID(id string) {
	s.update(func(r *SettingsRecord) { r.NetworkID = id })
}

// SetPrivateNetworks replaces the private network list. When the selected
// network was one of the removed entries the selection falls back to MainNet.
func (s *State) SetPrivateNetworks(networks []PrivateNetwork) {
	s.update(func(r *SettingsRecord) {
		r.PrivateNetworks = cloneOrEmpty(networks)
		if !r.knowsNetwork(r.NetworkID) {
			r.NetworkID = configs.NetworkMainNet
		}
	})
}

// SetTokens replaces the token list
func (s *State) SetTokens(tokens []Token) {
	s.update(func(r *SettingsRecord) { r.Tokens = cloneOrEmpty(tokens) })
}

// Networks lists the built-in networks followed by the private ones.
func (s *State) Networks() []Network {
	s.mu.RLock()
	private := s.settings.PrivateNetworks
	out := make([]Network, 0, len(private)+2)
	for _, n := range configs.BuiltinNetworks() {
		out = append(out, Network{ID: n.ID, Label: n.Label})
	}
	for _, n := range private {
		out = append(out, Network{ID: n.ID, Label: n.Label})
	}
	s.mu.RUnlock()
	return out
}

func (s *State) update(mutate func(*SettingsRecord)) {
	s.mu.Lock()
	next := s.settings.Clone()
	mutate(&next)
	if next.Equal(s.settings) {
		s.mu.Unlock()
		return
	}
	s.settings = next
	snapshot := next.Clone()
	s.mu.Unlock()

	s.listenersMu.RLock()
	listeners := s.settingsListeners
	s.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}
