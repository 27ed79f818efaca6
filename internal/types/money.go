// README: Common money value object used for quote display.
package types

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money holds an amount in minor units (cents).
type Money struct {
	Amount   int64
	Currency string
}

var printer = message.NewPrinter(language.English)

// MoneyFromFloat converts a two-decimal amount into minor units.
func MoneyFromFloat(v float64, currency string) Money {
	return Money{Amount: int64(math.Round(v * 100)), Currency: currency}
}

// Float returns the amount in major units.
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// String renders the amount with digit grouping, e.g. "$2,916.00 CAD".
func (m Money) String() string {
	s := printer.Sprintf("$%.2f", m.Float())
	if m.Currency == "" {
		return s
	}
	return s + " " + m.Currency
}
