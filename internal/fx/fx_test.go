package fx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvert_Identity(t *testing.T) {
	rates := DefaultRates()
	for _, code := range []string{"USD", "EUR", "JPY", "XXX"} {
		got := Convert(dec("123.45"), code, code, rates)
		assert.True(t, dec("123.45").Equal(got), "convert %s->%s", code, code)
	}
}

func TestConvert_EURToUSD(t *testing.T) {
	rates := Rates{"USD": dec("1"), "EUR": dec("0.92")}
	got := Convert(dec("92"), "EUR", "USD", rates)
	assert.True(t, dec("100").Equal(got), "got %s", got)
}

func TestConvert_USDToEUR(t *testing.T) {
	rates := DefaultRates()
	got := Convert(dec("100"), "USD", "EUR", rates)
	assert.True(t, dec("92").Equal(got), "got %s", got)
}

func TestConvert_RoundTrip(t *testing.T) {
	rates := DefaultRates()
	tolerance := dec("0.000001")
	for _, tt := range []struct{ from, to string }{
		{"USD", "EUR"},
		{"EUR", "GBP"},
		{"JPY", "INR"},
		{"CAD", "AUD"},
	} {
		amount := dec("250.75")
		back := Convert(Convert(amount, tt.from, tt.to, rates), tt.to, tt.from, rates)
		diff := back.Sub(amount).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"%s->%s->%s drifted by %s", tt.from, tt.to, tt.from, diff)
	}
}

func TestConvert_UnknownCurrencyFallsBackToOne(t *testing.T) {
	rates := Rates{"USD": dec("1"), "EUR": dec("0.92")}

	// Unknown source: amount treated as already in base units.
	got := Convert(dec("50"), "XYZ", "EUR", rates)
	assert.True(t, dec("46").Equal(got), "got %s", got)

	// Unknown target: base-unit amount passes through.
	got = Convert(dec("92"), "EUR", "XYZ", rates)
	assert.True(t, dec("100").Equal(got), "got %s", got)
}

func TestConvert_ZeroRateTreatedAsUnknown(t *testing.T) {
	rates := Rates{"USD": dec("1"), "BAD": decimal.Zero}
	got := Convert(dec("10"), "BAD", "USD", rates)
	assert.True(t, dec("10").Equal(got), "got %s", got)
}

func TestDefaultRates_USDIsBase(t *testing.T) {
	rates := DefaultRates()
	assert.True(t, rates["USD"].Equal(decimal.NewFromInt(1)))
	assert.Len(t, rates, 7)
}
