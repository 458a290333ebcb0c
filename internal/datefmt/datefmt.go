// Package datefmt renders calendar dates the way the task screens show
// them: ISO dates for storage and short/long Turkish forms for display.
//
// All functions read the date's own year, month and day. No time zone
// conversion happens.
package datefmt

import (
	"fmt"
	"time"
)

// ISOLayout is the canonical due-date layout.
const ISOLayout = "2006-01-02"

var monthsTR = [12]string{
	"Oca", "Şub", "Mar", "Nis", "May", "Haz",
	"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
}

// MonthAbbrevTR returns the three-letter Turkish abbreviation for a
// zero-based month index. Out-of-range indexes fall back to January.
func MonthAbbrevTR(m int) string {
	if m < 0 || m >= len(monthsTR) {
		return monthsTR[0]
	}
	return monthsTR[m]
}

// ToISODate formats t as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// FormatShortTR formats t as "<day> <month>", e.g. "12 Şub".
func FormatShortTR(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), MonthAbbrevTR(int(t.Month())-1))
}

// FormatLongTR formats t as "<day> <month> <year>", e.g. "12 Şub 2026".
func FormatLongTR(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthAbbrevTR(int(t.Month())-1), t.Year())
}

// ParseISODate parses a YYYY-MM-DD string as a calendar date in the
// local time zone.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
