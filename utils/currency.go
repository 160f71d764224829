package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are whole rupees; the display locale is fixed.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount for display, e.g. 2999 -> "₹2,999".
func FormatCurrency(amount int) string {
	return printer.Sprintf("₹%d", amount)
}
