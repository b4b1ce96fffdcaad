package render

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount using the currency's display rules,
// e.g. 1234.5 USD -> "$1,234.50". Unknown codes fall back to a generic
// two-decimal format.
func FormatMoney(amount decimal.Decimal, code string) string {
	// The constructor guarantees a non-nil currency for any code.
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
