package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
)

func TestBinWindowShape(t *testing.T) {
	anchor := time.Date(2025, time.June, 14, 12, 0, 0, 0, time.Local)
	bins := Bin(nil, DefaultHistogramDays, anchor)

	assert.Len(t, bins, 14)
	assert.Equal(t, "2025-06-01", bins[0].Date)
	assert.Equal(t, "2025-06-14", bins[13].Date)
	for _, b := range bins {
		assert.Equal(t, 0, b.Minutes)
	}
}

func TestBinMaxPerDay(t *testing.T) {
	anchor := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.Local)
	bins := Bin([]internal.LogEntry{
		{Date: "2025-06-10", DurationMinutes: 300},
		{Date: "2025-06-10", DurationMinutes: 420},
		{Date: "2025-06-10", DurationMinutes: 90},
	}, 14, anchor)

	for _, b := range bins {
		if b.Date == "2025-06-10" {
			assert.Equal(t, 420, b.Minutes)
			return
		}
	}
	t.Fatal("expected bin for 2025-06-10")
}

func TestBinIgnoresOutOfWindow(t *testing.T) {
	anchor := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.Local)
	bins := Bin([]internal.LogEntry{
		{Date: "2025-05-31", DurationMinutes: 500}, // one day before the window
		{Date: "2025-06-15", DurationMinutes: 500}, // after the anchor
		{Date: "2025-06-01", DurationMinutes: 480}, // first day of the window
	}, 14, anchor)

	assert.Len(t, bins, 14)
	assert.Equal(t, 480, bins[0].Minutes)
	for _, b := range bins[1:] {
		assert.Equal(t, 0, b.Minutes)
	}
}

func TestBinNonPositiveDays(t *testing.T) {
	assert.Nil(t, Bin(nil, 0, time.Now()))
}
