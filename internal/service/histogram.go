package service

import (
	"time"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/timemath"
)

// DefaultHistogramDays is the trailing window of the dashboard chart.
const DefaultHistogramDays = 14

// Bin buckets enriched entries into the trailing `days` calendar dates ending
// at anchor, oldest first. Every date in the window is present; a day with
// multiple entries keeps the maximum duration, and entries outside the window
// are ignored.
func Bin(logs []internal.LogEntry, days int, anchor time.Time) []internal.HistogramBin {
	if days <= 0 {
		return nil
	}

	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	bins := make([]internal.HistogramBin, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		iso := timemath.ToISODate(start.AddDate(0, 0, i-(days-1)))
		bins[i] = internal.HistogramBin{Date: iso}
		index[iso] = i
	}

	for _, l := range logs {
		if i, ok := index[l.Date]; ok && l.DurationMinutes > bins[i].Minutes {
			bins[i].Minutes = l.DurationMinutes
		}
	}
	return bins
}
