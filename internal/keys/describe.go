package keys

import "github.com/btcsuite/btcd/btcutil"

// Format names what a stored key string looks like. It is a display hint only.
type Format string

const (
	FormatWIFCompressed Format = "WIF (compressed)"
	FormatWIF           Format = "WIF"
	FormatUnknown       Format = ""
)

// Describe reports whether value parses as a Wallet Import Format key.
// Nothing is rejected on the basis of the result.
func Describe(value string) Format {
	wif, err := btcutil.DecodeWIF(value)
	if err != nil {
		return FormatUnknown
	}
	if wif.CompressPubKey {
		return FormatWIFCompressed
	}
	return FormatWIF
}
