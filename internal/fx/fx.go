// Package fx converts amounts between currencies via a fixed USD-pivoted
// exchange-rate table. There is no live rate fetch; the table is immutable
// at runtime.
package fx

import "github.com/shopspring/decimal"

// Rates maps a currency code to its USD-relative multiplier
// (units of the currency per 1 USD).
type Rates map[string]decimal.Decimal

// DefaultRates returns the built-in exchange-rate table.
func DefaultRates() Rates {
	return Rates{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.79"),
		"JPY": decimal.RequireFromString("148.5"),
		"INR": decimal.RequireFromString("83.3"),
		"CAD": decimal.RequireFromString("1.36"),
		"AUD": decimal.RequireFromString("1.52"),
	}
}

// rate returns the multiplier for a currency code, falling back to 1 for
// unknown codes so that reporting stays available with an incomplete table.
// The fallback passes the amount through unconverted in relative terms.
func rate(rates Rates, code string) decimal.Decimal {
	if r, ok := rates[code]; ok && !r.IsZero() {
		return r
	}
	return decimal.NewFromInt(1)
}

// Convert converts amount from one currency to another by pivoting through
// the table's base unit: amount / rates[from] * rates[to].
// When from == to the amount is returned unchanged.
func Convert(amount decimal.Decimal, from, to string, rates Rates) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Div(rate(rates, from)).Mul(rate(rates, to))
}
