package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
)

// ErrInvalidFormat rejects import payloads whose top level is not a JSON
// array. Nothing is written when it is returned.
var ErrInvalidFormat = internal.NewAppError(400, "Invalid file format")

// LogRepository owns the canonical collection. Every mutating operation
// reads the whole collection and rewrites it whole; there is exactly one
// writer at a time.
type LogRepository struct {
	store  Store
	logger internal.Logger
}

func NewLogRepository(store Store, logger internal.Logger) *LogRepository {
	return &LogRepository{store: store, logger: logger}
}

// Load returns the persisted collection. An absent key or an unparsable or
// non-array payload degrades to an empty collection with a nil error; only a
// store read failure is reported, so callers can tell "no data" from "load
// failed".
func (r *LogRepository) Load(ctx context.Context) ([]internal.LogEntry, error) {
	data, ok, err := r.store.Read(ctx)
	if err != nil {
		return []internal.LogEntry{}, fmt.Errorf("storage: load failed: %w", err)
	}
	if !ok || len(data) == 0 {
		return []internal.LogEntry{}, nil
	}

	var logs []internal.LogEntry
	if err := json.Unmarshal(data, &logs); err != nil {
		r.logger.Warnf("storage: discarding unparsable collection: %v", err)
		return []internal.LogEntry{}, nil
	}
	if logs == nil {
		logs = []internal.LogEntry{}
	}
	return logs, nil
}

// Save serializes and rewrites the whole collection.
func (r *LogRepository) Save(ctx context.Context, logs []internal.LogEntry) error {
	if logs == nil {
		logs = []internal.LogEntry{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("storage: encode failed: %w", err)
	}
	if err := r.store.Write(ctx, data); err != nil {
		return fmt.Errorf("storage: save failed: %w", err)
	}
	return nil
}

// Clear removes the persisted collection.
func (r *LogRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx)
}

// Export returns the current collection as pretty-printed JSON.
func (r *LogRepository) Export(ctx context.Context) ([]byte, error) {
	logs, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(logs, "", "  ")
}

// Import replaces the whole collection with the given JSON array after
// normalizing every element: a missing id is generated, missing date,
// bedtime, waketime and notes default to empty strings, and a non-numeric
// quality defaults to 3. A payload that is not a JSON array returns
// ErrInvalidFormat and leaves the stored collection untouched. Merging with
// existing entries is a caller-level policy, not a repository one.
func (r *LogRepository) Import(ctx context.Context, data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, ErrInvalidFormat
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return 0, ErrInvalidFormat
	}

	elems := root.Array()
	cleaned := make([]internal.LogEntry, 0, len(elems))
	for _, el := range elems {
		entry := internal.LogEntry{
			ID:       el.Get("id").String(),
			Date:     el.Get("date").String(),
			Bedtime:  el.Get("bedtime").String(),
			Waketime: el.Get("waketime").String(),
			Quality:  3,
			Notes:    el.Get("notes").String(),
		}
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if q := el.Get("quality"); q.Type == gjson.Number {
			entry.Quality = q.Num
		}
		cleaned = append(cleaned, entry)
	}

	if err := r.Save(ctx, cleaned); err != nil {
		return 0, err
	}
	return len(cleaned), nil
}
