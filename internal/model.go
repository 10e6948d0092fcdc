package internal

// LogEntry is one night of sleep. DurationMinutes is derived from
// date/bedtime/waketime on every load and never persisted as authoritative,
// so serialized entries carry exactly the six source fields.
type LogEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`     // YYYY-MM-DD, the night the session is attributed to
	Bedtime  string  `json:"bedtime"`  // HH:MM, 24h
	Waketime string  `json:"waketime"` // HH:MM, 24h; next day when <= bedtime
	Quality  float64 `json:"quality"`  // 1–5; fractional values tolerated
	Notes    string  `json:"notes"`

	DurationMinutes int `json:"-"`
}

// Summary aggregates the whole collection. LongestDate is empty when there
// are no records.
type Summary struct {
	Avg         int     `json:"avg"`
	AvgQuality  float64 `json:"avgQuality"`
	LongestVal  int     `json:"longestVal"`
	LongestDate string  `json:"longestDate,omitempty"`
	Streak      int     `json:"streak"`
}

// HistogramBin is one day-slot of the trailing-window chart, holding the
// longest sleep logged that day.
type HistogramBin struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

func (e *AppError) Error() string {
	return e.Message
}
