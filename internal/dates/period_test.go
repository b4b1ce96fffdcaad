package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("monthly")
	require.NoError(t, err)
	assert.Equal(t, Monthly, g)

	g, err = ParseGranularity("YEAR")
	require.NoError(t, err)
	assert.Equal(t, Yearly, g)

	_, err = ParseGranularity("weekly")
	assert.Error(t, err)
}

func TestPeriodOf(t *testing.T) {
	d := MustParseDay("2024-05-20")

	r := Monthly.PeriodOf(d)
	assert.Equal(t, MustParseDay("2024-05-01"), r.From)
	assert.Equal(t, MustParseDay("2024-05-31"), r.To)

	r = Yearly.PeriodOf(d)
	assert.Equal(t, MustParseDay("2024-01-01"), r.From)
	assert.Equal(t, MustParseDay("2024-12-31"), r.To)
}

func TestAvailable_Monthly(t *testing.T) {
	now := MustParseDay("2024-03-15")

	// Period ending on the last day of the previous month is available.
	assert.True(t, Available(MustParseDay("2024-02-29"), Monthly, now))

	// Period ending today, or any day in the current month, is not.
	assert.False(t, Available(MustParseDay("2024-03-15"), Monthly, now))
	assert.False(t, Available(MustParseDay("2024-03-31"), Monthly, now))

	// Boundary: a period ending exactly at the start of the current month
	// has not elapsed (After is strict).
	assert.False(t, Available(MustParseDay("2024-03-01"), Monthly, now))
}

func TestAvailable_Yearly(t *testing.T) {
	now := MustParseDay("2024-03-15")

	assert.True(t, Available(MustParseDay("2023-12-31"), Yearly, now))
	assert.False(t, Available(MustParseDay("2024-12-31"), Yearly, now))
	assert.False(t, Available(MustParseDay("2024-01-01"), Yearly, now))
}
