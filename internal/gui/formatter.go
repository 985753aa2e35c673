package gui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// walletNameWidth is the number of characters of a wallet name shown in the list.
const walletNameWidth = 20

// TruncateName shortens name to at most width runes.
func TruncateName(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	return string(runes[:width])
}

// CurrencyLabel formats a currency code for display, "usd" becomes "USD".
func CurrencyLabel(code string) string {
	return cases.Upper(language.English).String(code)
}

// CurrencyCode is the inverse of CurrencyLabel.
func CurrencyCode(label string) string {
	return strings.ToLower(label)
}

const walletCountKey = "%d saved wallets"

func init() {
	_ = message.Set(language.English, walletCountKey,
		plural.Selectf(1, "%d",
			plural.One, "%d saved wallet",
			plural.Other, "%d saved wallets",
		),
	)
}

// FormatWalletCount formats the number of saved wallets for the header
func FormatWalletCount(n int) string {
	return message.NewPrinter(language.English).Sprintf(walletCountKey, n)
}
