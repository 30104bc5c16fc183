// Package currency formats monetary totals for display.
package currency

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with locale digit grouping and a fixed symbol prefix.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New builds a formatter. An unparsable locale falls back to English grouping.
func New(symbol, locale string) *Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format renders amount as e.g. "₹1,250". Whole amounts drop the fraction; others keep two
// decimals. Negative amounts carry a leading minus before the symbol.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return f.symbol + "—"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount == math.Trunc(amount) && amount < math.MaxInt64 {
		return sign + f.symbol + f.printer.Sprintf("%d", int64(amount))
	}
	return sign + f.symbol + f.printer.Sprintf("%.2f", amount)
}
