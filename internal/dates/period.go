package dates

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the reporting window size for a statement.
type Granularity string

const (
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity parses a granularity name.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(s) {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return "", fmt.Errorf("unknown granularity %q, want monthly or yearly", s)
	}
}

// PeriodOf returns the monthly or yearly range containing t.
func (g Granularity) PeriodOf(t time.Time) Range {
	if g == Yearly {
		return YearOf(t)
	}
	return MonthOf(t)
}

// Available reports whether a statement for the period ending at periodEnd
// may be displayed: only after the period has fully elapsed relative to now.
// Monthly statements unlock once now's month has started strictly after
// periodEnd; yearly statements once now's year has.
//
// The predicate is pure and must be re-evaluated per request, since now
// advances.
func Available(periodEnd time.Time, g Granularity, now time.Time) bool {
	switch g {
	case Monthly:
		return StartOfMonth(now).After(periodEnd)
	case Yearly:
		return StartOfYear(now).After(periodEnd)
	default:
		return false
	}
}
