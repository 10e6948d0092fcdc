// Package render formats derived views for the terminal. It holds layout
// only; all numbers arrive precomputed.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/timemath"
)

const chartWidth = 40

// List writes one line per entry: date, bed/wake, duration, stars, notes.
func List(w io.Writer, logs []internal.LogEntry) {
	if len(logs) == 0 {
		fmt.Fprintln(w, "No logs yet. Add your first sleep entry.")
		return
	}
	for _, l := range logs {
		line := fmt.Sprintf("%s  bed %s  wake %s  %-10s  %s",
			l.Date, l.Bedtime, l.Waketime,
			timemath.FormatDuration(l.DurationMinutes), Stars(l.Quality))
		if l.Notes != "" {
			line += "  " + l.Notes
		}
		fmt.Fprintf(w, "%s  [%s]\n", line, l.ID)
	}
	fmt.Fprintf(w, "%d log(s)\n", len(logs))
}

// Summary writes the dashboard block. Missing values render as dashes.
func Summary(w io.Writer, s internal.Summary) {
	avg := "-- h -- m"
	if s.Avg > 0 {
		avg = timemath.FormatDuration(s.Avg)
	}
	longest := "-- h -- m"
	if s.LongestVal > 0 {
		longest = timemath.FormatDuration(s.LongestVal)
	}
	longestDate := s.LongestDate
	if longestDate == "" {
		longestDate = "—"
	}
	fmt.Fprintf(w, "Average sleep:   %s\n", avg)
	fmt.Fprintf(w, "Average quality: %.1f\n", s.AvgQuality)
	fmt.Fprintf(w, "Longest night:   %s (%s)\n", longest, longestDate)
	fmt.Fprintf(w, "Streak:          %d nights\n", s.Streak)
}

// Chart writes one scaled bar per day, oldest first.
func Chart(w io.Writer, bins []internal.HistogramBin) {
	max := 1
	for _, b := range bins {
		if b.Minutes > max {
			max = b.Minutes
		}
	}
	for _, b := range bins {
		n := b.Minutes * chartWidth / max
		fmt.Fprintf(w, "%s  %-*s %s\n", b.Date, chartWidth,
			strings.Repeat("▇", n), timemath.FormatDuration(b.Minutes))
	}
}

// Stars renders a 1–5 quality as filled stars; fractional values round down.
func Stars(quality float64) string {
	n := int(quality)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
