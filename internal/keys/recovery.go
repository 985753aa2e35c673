package keys

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrMalformedRecoveryFile is returned when a recovery file is not a JSON object.
var ErrMalformedRecoveryFile = errors.New("malformed key recovery file")

// Encode serialises m as a JSON object. encoding/json sorts map keys so the
// output is stable for equal maps. A nil or empty map encodes as "{}".
func Encode(m KeyMap) ([]byte, error) {
	if m == nil {
		m = KeyMap{}
	}
	data, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, fmt.Errorf("failed to encode keys: %w", err)
	}
	return data, nil
}

// Decode parses a recovery file. The payload must be a JSON object or null.
// String values are taken verbatim, any other value is kept as its compact JSON text.
func Decode(data []byte) (KeyMap, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return KeyMap{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecoveryFile, err)
	}

	out := make(KeyMap, len(raw))
	for name, value := range raw {
		if len(value) > 0 && value[0] == '"' {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedRecoveryFile, err)
			}
			out[name] = s
			continue
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecoveryFile, err)
		}
		out[name] = compact.String()
	}
	return out, nil
}

// Checksum returns the first 8 hex characters of the double SHA256 of content.
// It is shown to the user after an export so two copies can be compared by eye.
func Checksum(content []byte) string {
	return chainhash.DoubleHashH(content).String()[:8]
}
