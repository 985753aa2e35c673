package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateNetEditor(t *testing.T) {
	original := []PrivateNetwork{{ID: "p1", Label: "Local", URL: "http://127.0.0.1:30333"}}
	e := NewPrivateNetEditor(original)

	require.NoError(t, e.Add("  Staging ", "https://staging.example.org:10332"))
	assert.Error(t, e.Add("", "http://x"))
	assert.Error(t, e.Add("Bad", "not a url"))
	assert.Error(t, e.Add("local", "http://127.0.0.2"))

	got := e.Result()
	require.Len(t, got, 2)
	assert.Equal(t, "Staging", got[1].Label)
	assert.NotEmpty(t, got[1].ID)

	e.Remove(0)
	e.Remove(5)
	assert.Len(t, e.Result(), 1)
	assert.Len(t, original, 1, "editing must not touch the caller's slice")
}

func TestPrivateNetEditorEmptyResult(t *testing.T) {
	got := NewPrivateNetEditor(nil).Result()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTokenEditor(t *testing.T) {
	e := NewTokenEditor([]Token{{ID: "neo", Symbol: "NEO", ScriptHash: "c56f33fc", NetworkID: "1"}})

	require.NoError(t, e.Add("rpx", "0xecc6b20d", "1"))
	assert.Error(t, e.Add("RPX", "ECC6B20D", "1"))
	require.NoError(t, e.Add("RPX", "ecc6b20d", "2"))
	assert.Error(t, e.Add("", "ab", "1"))
	assert.Error(t, e.Add("X", "", "1"))
	assert.Error(t, e.Add("X", "ab", ""))

	got := e.Result()
	require.Len(t, got, 3)
	assert.Equal(t, Token{ID: got[1].ID, Symbol: "RPX", ScriptHash: "ecc6b20d", NetworkID: "1", IsUserGenerated: true}, got[1])

	assert.Error(t, e.Remove(0))
	assert.NoError(t, e.Remove(1))
	assert.Len(t, e.Result(), 2)
}

func TestEditorIndexOf(t *testing.T) {
	nets := NewPrivateNetEditor([]PrivateNetwork{{ID: "p1", Label: "Local", URL: "http://127.0.0.1:30333"}})
	assert.Equal(t, 0, nets.IndexOf("LOCAL"))
	assert.Equal(t, -1, nets.IndexOf("Staging"))

	tokens := NewTokenEditor([]Token{{ID: "neo", Symbol: "NEO", ScriptHash: "c56f33fc", NetworkID: "1"}})
	assert.Equal(t, 0, tokens.IndexOf("neo", "1"))
	assert.Equal(t, -1, tokens.IndexOf("neo", "2"))
}
