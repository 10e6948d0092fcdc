package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/timemath"
)

// SampleLogs returns three demo nights dated relative to now, each with a
// fresh ID. Callers append them to the existing collection; loading samples
// never replaces what is already there.
func SampleLogs(now time.Time) []internal.LogEntry {
	return []internal.LogEntry{
		{
			ID:       uuid.NewString(),
			Date:     timemath.ToISODate(now.AddDate(0, 0, -1)),
			Bedtime:  "23:10",
			Waketime: "07:05",
			Quality:  4,
			Notes:    "Felt rested.",
		},
		{
			ID:       uuid.NewString(),
			Date:     timemath.ToISODate(now.AddDate(0, 0, -2)),
			Bedtime:  "00:15",
			Waketime: "08:00",
			Quality:  3,
			Notes:    "Woke once.",
		},
		{
			ID:       uuid.NewString(),
			Date:     timemath.ToISODate(now.AddDate(0, 0, -3)),
			Bedtime:  "22:40",
			Waketime: "06:40",
			Quality:  5,
			Notes:    "Great night.",
		},
	}
}
