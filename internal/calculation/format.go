package calculation

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders an amount with thousands separators, e.g. 1234567 -> "1,234,567".
// Fractional amounts keep two decimals.
func FormatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	if d.Equal(d.Truncate(0)) {
		return p.Sprintf("%d", d.IntPart())
	}
	return p.Sprintf("%.2f", d.InexactFloat64())
}

// FormatMoney prefixes FormatAmount with a currency symbol
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + FormatAmount(d)
}
