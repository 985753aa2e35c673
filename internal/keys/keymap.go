// Package keys holds the saved wallet key map and its recovery file format.
package keys

import (
	"maps"
	"slices"
)

// KeyMap maps a wallet display name to its private key string.
// Values are opaque and never checked here.
type KeyMap map[string]string

// Clone returns an independent copy of m
func (m KeyMap) Clone() KeyMap {
	out := make(KeyMap, len(m))
	maps.Copy(out, m)
	return out
}

// Merge copies every entry of src into m. Entries of src win on name collision.
func (m KeyMap) Merge(src KeyMap) {
	maps.Copy(m, src)
}

// Delete removes name. Missing names are ignored.
func (m KeyMap) Delete(name string) {
	delete(m, name)
}

// Names returns the wallet names in sorted order.
func (m KeyMap) Names() []string {
	return slices.Sorted(maps.Keys(m))
}
