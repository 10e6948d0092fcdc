package service

import (
	"math"
	"sort"
	"time"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/timemath"
)

// Enrich recomputes DurationMinutes for every entry from its date, bedtime
// and waketime. Entries whose date or times fail to parse get duration 0;
// all other fields pass through unchanged.
func Enrich(logs []internal.LogEntry) []internal.LogEntry {
	out := make([]internal.LogEntry, len(logs))
	for i, l := range logs {
		l.DurationMinutes = 0
		bed, bedErr := timemath.Combine(l.Date, l.Bedtime)
		wake, wakeErr := timemath.Combine(l.Date, l.Waketime)
		if bedErr == nil && wakeErr == nil {
			l.DurationMinutes = timemath.DurationMinutes(bed, wake)
		}
		out[i] = l
	}
	return out
}

// Summarize derives the dashboard numbers from enriched entries. Empty input
// yields the zero summary. The longest night keeps the date of the first
// entry attaining the maximum, in input order.
func Summarize(logs []internal.LogEntry) internal.Summary {
	if len(logs) == 0 {
		return internal.Summary{}
	}

	var totalMinutes int
	var totalQuality float64
	longestVal := logs[0].DurationMinutes
	longestDate := logs[0].Date
	for _, l := range logs {
		totalMinutes += l.DurationMinutes
		totalQuality += l.Quality
		if l.DurationMinutes > longestVal {
			longestVal = l.DurationMinutes
			longestDate = l.Date
		}
	}

	n := float64(len(logs))
	return internal.Summary{
		Avg:         int(math.Round(float64(totalMinutes) / n)),
		AvgQuality:  math.Round(totalQuality/n*10) / 10,
		LongestVal:  longestVal,
		LongestDate: longestDate,
		Streak:      streak(logs),
	}
}

// streak counts consecutive calendar dates walking backward from the most
// recent one. A duplicate date neither breaks nor extends the run; any gap of
// two or more days ends it. Entries with unparseable dates are left out of
// the walk.
func streak(logs []internal.LogEntry) int {
	dates := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		d, err := time.ParseInLocation(timemath.ISODateLayout, l.Date, time.Local)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	count := 1
	prev := dates[0]
	for _, d := range dates[1:] {
		switch gapDays(d, prev) {
		case 0:
			prev = d
		case 1:
			count++
			prev = d
		default:
			return count
		}
	}
	return count
}

// gapDays is the calendar distance in whole days from d back to prev.
func gapDays(d, prev time.Time) int {
	return int(math.Round(prev.Sub(d).Hours() / 24))
}
