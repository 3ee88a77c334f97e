package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a price as en-US USD, e.g. "$1,250.00". The symbol is
// glued to the amount; the currency package's display forms put a space
// between them, which is not how the shop shows prices.
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("$%.2f", v)
}
