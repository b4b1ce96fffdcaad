package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDay_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2024-13-01", "05/01/2024"} {
		_, err := ParseDay(s)
		assert.Error(t, err, "ParseDay(%q)", s)
	}
}

func TestMonthBoundaries(t *testing.T) {
	d := MustParseDay("2024-02-15")
	assert.Equal(t, MustParseDay("2024-02-01"), StartOfMonth(d))
	assert.Equal(t, MustParseDay("2024-02-29"), EndOfMonth(d), "leap year February")

	d = MustParseDay("2023-12-31")
	assert.Equal(t, MustParseDay("2023-12-01"), StartOfMonth(d))
	assert.Equal(t, MustParseDay("2023-12-31"), EndOfMonth(d))
}

func TestYearBoundaries(t *testing.T) {
	d := MustParseDay("2024-06-15")
	assert.Equal(t, MustParseDay("2024-01-01"), StartOfYear(d))
	assert.Equal(t, MustParseDay("2024-12-31"), EndOfYear(d))
}

func TestRangeContains_InclusiveBounds(t *testing.T) {
	r := Range{From: MustParseDay("2024-01-01"), To: MustParseDay("2024-01-31")}

	assert.True(t, r.Contains(MustParseDay("2024-01-01")), "start boundary")
	assert.True(t, r.Contains(MustParseDay("2024-01-31")), "end boundary")
	assert.True(t, r.Contains(MustParseDay("2024-01-15")))
	assert.False(t, r.Contains(MustParseDay("2023-12-31")))
	assert.False(t, r.Contains(MustParseDay("2024-02-01")))
}

func TestRangeLabel(t *testing.T) {
	r := MonthOf(MustParseDay("2024-01-10"))
	assert.Equal(t, "Jan 2024 - Jan 2024", r.Label())

	r = Range{From: MustParseDay("2024-01-01"), To: MustParseDay("2024-03-31")}
	assert.Equal(t, "Jan 2024 - Mar 2024", r.Label())
}
