// Package timemath combines calendar dates and clock times into local
// instants and derives sleep durations from them.
package timemath

import (
	"fmt"
	"math"
	"time"
)

const (
	ISODateLayout = "2006-01-02"
	ClockLayout   = "15:04"
)

// Combine parses a YYYY-MM-DD date and an HH:MM clock time into a single
// local-time instant with seconds truncated to zero.
func Combine(dateStr, timeStr string) (time.Time, error) {
	d, err := time.ParseInLocation(ISODateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	t, err := time.Parse(ClockLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

// DurationMinutes returns the elapsed minutes between going to bed and waking
// up. A wake instant at or before the bed instant is taken to mean the next
// calendar day (AddDate, not a fixed 24h, so calendar shifts are tolerated).
// The result is rounded to the nearest minute and never negative.
func DurationMinutes(bed, wake time.Time) int {
	if !wake.After(bed) {
		wake = wake.AddDate(0, 0, 1)
	}
	mins := int(math.Round(wake.Sub(bed).Minutes()))
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatDuration renders minutes as "H h M m", e.g. 475 -> "7 h 55 m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d h %d m", minutes/60, minutes%60)
}

// ToISODate formats t's local calendar date as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}
