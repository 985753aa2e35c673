package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/keys"
)

func TestSettersEmitOnlyOnChange(t *testing.T) {
	s := New(DefaultSettings())

	var events []SettingsRecord
	s.OnSettingsChanged(func(r SettingsRecord) { events = append(events, r) })

	s.SetCurrency(configs.DefaultCurrency)
	assert.Empty(t, events)

	s.SetCurrency("eur")
	require.Len(t, events, 1)
	assert.Equal(t, "eur", events[0].Currency)
	assert.Equal(t, configs.DefaultExplorer, events[0].BlockExplorer)

	s.SetCurrency("eur")
	assert.Len(t, events, 1)

	s.SetBlockExplorer(configs.ExplorerNeoScan)
	s.SetNetworkID(configs.NetworkTestNet)
	require.Len(t, events, 3)
	assert.Equal(t, SettingsRecord{
		BlockExplorer:   configs.ExplorerNeoScan,
		NetworkID:       configs.NetworkTestNet,
		Currency:        "eur",
		PrivateNetworks: []PrivateNetwork{},
		Tokens:          []Token{},
	}, events[2])
}

func TestEventsAreCopies(t *testing.T) {
	s := New(DefaultSettings())
	var got SettingsRecord
	s.OnSettingsChanged(func(r SettingsRecord) { got = r })

	s.SetTokens([]Token{{ID: "t1", Symbol: "RPX"}})
	got.Tokens[0].Symbol = "changed"

	assert.Equal(t, "RPX", s.Settings().Tokens[0].Symbol)
}

func TestRemovingSelectedPrivateNetworkFallsBackToMainNet(t *testing.T) {
	s := New(DefaultSettings())
	s.SetPrivateNetworks([]PrivateNetwork{{ID: "p1", Label: "Local", URL: "http://127.0.0.1:30333"}})
	s.SetNetworkID("p1")
	require.Equal(t, "p1", s.Settings().NetworkID)

	s.SetPrivateNetworks(nil)
	rec := s.Settings()
	assert.Equal(t, configs.NetworkMainNet, rec.NetworkID)
	assert.Empty(t, rec.PrivateNetworks)
	assert.NotNil(t, rec.PrivateNetworks)
}

func TestNetworksIncludesPrivate(t *testing.T) {
	s := New(DefaultSettings())
	s.SetPrivateNetworks([]PrivateNetwork{{ID: "p1", Label: "Local"}})

	assert.Equal(t, []Network{
		{ID: configs.NetworkMainNet, Label: "MainNet"},
		{ID: configs.NetworkTestNet, Label: "TestNet"},
		{ID: "p1", Label: "Local"},
	}, s.Networks())
}

func TestReplaceSettingsIsSilent(t *testing.T) {
	s := New(DefaultSettings())
	called := false
	s.OnSettingsChanged(func(SettingsRecord) { called = true })

	rec := DefaultSettings()
	rec.Currency = "gbp"
	s.ReplaceSettings(rec)

	assert.False(t, called)
	assert.Equal(t, "gbp", s.Settings().Currency)
}

func TestSetKeysNotifies(t *testing.T) {
	s := New(DefaultSettings())
	var got keys.KeyMap
	s.OnKeysChanged(func(m keys.KeyMap) { got = m })

	in := keys.KeyMap{"w": "k"}
	s.SetKeys(in)
	in["other"] = "x"

	assert.Equal(t, keys.KeyMap{"w": "k"}, got)
	assert.Equal(t, keys.KeyMap{"w": "k"}, s.Keys())
}

func TestNormalise(t *testing.T) {
	rec := SettingsRecord{
		BlockExplorer: "Etherscan",
		NetworkID:     "p9",
		Currency:      "xyz",
	}
	out, fixed := rec.Normalise(DefaultSettings())

	assert.Equal(t, DefaultSettings(), out)
	assert.ElementsMatch(t, []string{"blockExplorer", "currency", "networkId"}, fixed)

	rec = DefaultSettings()
	rec.PrivateNetworks = []PrivateNetwork{{ID: "p9"}}
	rec.NetworkID = "p9"
	out, fixed = rec.Normalise(DefaultSettings())
	assert.Empty(t, fixed)
	assert.Equal(t, "p9", out.NetworkID)
}
