package state

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// PrivateNetEditor is a working copy of the private network list. Networks
// is never shared with the slice it was created from.
type PrivateNetEditor struct {
	Networks []PrivateNetwork
}

// NewPrivateNetEditor starts editing a copy of networks
func NewPrivateNetEditor(networks []PrivateNetwork) *PrivateNetEditor {
	return &PrivateNetEditor{Networks: slices.Clone(networks)}
}

// Add appends a network after validating its name and node url
func (e *PrivateNetEditor) Add(label, rawURL string) error {
	label = strings.TrimSpace(label)
	rawURL = strings.TrimSpace(rawURL)
	if label == "" {
		return errors.New("network name is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid node url %q", rawURL)
	}
	if slices.ContainsFunc(e.Networks, func(n PrivateNetwork) bool {
		return strings.EqualFold(n.Label, label)
	}) {
		return fmt.Errorf("a network named %q already exists", label)
	}
	e.Networks = append(e.Networks, PrivateNetwork{
		ID:    uuid.NewString(),
		Label: label,
		URL:   u.String(),
	})
	return nil
}

// Remove deletes the network at i, out of range indexes are ignored
func (e *PrivateNetEditor) Remove(i int) {
	if i < 0 || i >= len(e.Networks) {
		return
	}
	e.Networks = slices.Delete(e.Networks, i, i+1)
}

// Result returns the edited list, never nil
func (e *PrivateNetEditor) Result() []PrivateNetwork {
	if e.Networks == nil {
		return []PrivateNetwork{}
	}
	return slices.Clone(e.Networks)
}

// TokenEditor is a working copy of the token list.
type TokenEditor struct {
	Tokens []Token
}

// NewTokenEditor starts editing a copy of tokens
func NewTokenEditor(tokens []Token) *TokenEditor {
	return &TokenEditor{Tokens: slices.Clone(tokens)}
}

// Add appends a user generated token on networkID
func (e *TokenEditor) Add(symbol, scriptHash, networkID string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	scriptHash = strings.TrimPrefix(strings.TrimSpace(scriptHash), "0x")
	if symbol == "" {
		return errors.New("token symbol is required")
	}
	if scriptHash == "" {
		return errors.New("script hash is required")
	}
	if networkID == "" {
		return errors.New("network is required")
	}
	if slices.ContainsFunc(e.Tokens, func(t Token) bool {
		return t.NetworkID == networkID && strings.EqualFold(t.ScriptHash, scriptHash)
	}) {
		return fmt.Errorf("token %s is already registered on this network", scriptHash)
	}
	e.Tokens = append(e.Tokens, Token{
		ID:              uuid.NewString(),
		Symbol:          symbol,
		ScriptHash:      scriptHash,
		NetworkID:       networkID,
		IsUserGenerated: true,
	})
	return nil
}

// Remove deletes the token at i. Built-in tokens cannot be removed.
func (e *TokenEditor) Remove(i int) error {
	if i < 0 || i >= len(e.Tokens) {
		return nil
	}
	if !e.Tokens[i].IsUserGenerated {
		return fmt.Errorf("%s is a built-in token", e.Tokens[i].Symbol)
	}
	e.Tokens = slices.Delete(e.Tokens, i, i+1)
	return nil
}

// Result returns the edited list, never nil
func (e *TokenEditor) Result() []Token {
	if e.Tokens == nil {
		return []Token{}
	}
	return slices.Clone(e.Tokens)
}

// IndexOf returns the index of the network labelled label, or -1.
func (e *PrivateNetEditor) IndexOf(label string) int {
	return slices.IndexFunc(e.Networks, func(n PrivateNetwork) bool {
		return strings.EqualFold(n.Label, label)
	})
}

// IndexOf returns the index of the token with symbol on networkID, or -1.
func (e *TokenEditor) IndexOf(symbol, networkID string) int {
	return slices.IndexFunc(e.Tokens, func(t Token) bool {
		return t.NetworkID == networkID && strings.EqualFold(t.Symbol, symbol)
	})
}
