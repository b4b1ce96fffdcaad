// Package dates provides day-granularity date handling for reporting
// periods: range boundaries, period labels, and the availability gate that
// keeps statements hidden until their period has fully elapsed.
package dates

import (
	"fmt"
	"time"
)

// DayFormat is the ISO-8601 day format used everywhere dates are persisted.
const DayFormat = "2006-01-02"

// ParseDay parses an ISO-8601 day string. Unparseable dates are an explicit
// error; records with bad dates must surface to the caller instead of
// silently dropping out of every report.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DayFormat, err)
	}
	return d, nil
}

// MustParseDay is like ParseDay but panics on error. For tests and fixtures.
func MustParseDay(s string) time.Time {
	d, err := ParseDay(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Day truncates a time to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfYear returns January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfYear returns December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
}

// Range is an inclusive range of days.
type Range struct {
	From, To time.Time
}

// MonthOf returns the calendar-month range containing t.
func MonthOf(t time.Time) Range {
	return Range{From: StartOfMonth(t), To: EndOfMonth(t)}
}

// YearOf returns the calendar-year range containing t.
func YearOf(t time.Time) Range {
	return Range{From: StartOfYear(t), To: EndOfYear(t)}
}

// Contains reports whether d falls within the range, boundaries included.
func (r Range) Contains(d time.Time) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// Label formats the range as a report-period label, e.g. "Jan 2024 - Mar 2024".
func (r Range) Label() string {
	return r.From.Format("Jan 2006") + " - " + r.To.Format("Jan 2006")
}
