package cli

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/config"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/service"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/storage"
)

// App is the top-level controller. It owns the application state explicitly
// (config, logger, repository, clock) and every command goes through it;
// nothing reads ambient globals.
type App struct {
	cfg    *config.Config
	logger internal.Logger
	repo   *storage.LogRepository
	now    func() time.Time
}

func NewApp(cfg *config.Config, logger internal.Logger, repo *storage.LogRepository) *App {
	return &App{cfg: cfg, logger: logger, repo: repo, now: time.Now}
}

func (a *App) Logger() internal.Logger { return a.logger }

// loadOrEmpty degrades a failed load to an empty collection, matching the
// always-available-store contract. The failure is still logged.
func (a *App) loadOrEmpty(ctx context.Context) []internal.LogEntry {
	logs, err := a.repo.Load(ctx)
	if err != nil {
		a.logger.Warnf("cli: load failed, continuing with empty collection: %v", err)
	}
	return logs
}

// AddLog validates the candidate, assigns a fresh ID and appends it to the
// collection. Validation failures block the save and carry every violation.
func (a *App) AddLog(ctx context.Context, c *service.Candidate) (*internal.LogEntry, error) {
	if res := service.ValidateLog(c); !res.Valid {
		return nil, &service.ValidationError{Errors: res.Errors}
	}
	entry := internal.LogEntry{
		ID:       uuid.NewString(),
		Date:     c.Date,
		Bedtime:  c.Bedtime,
		Waketime: c.Waketime,
		Quality:  c.Quality,
		Notes:    c.Notes,
	}
	logs := append(a.loadOrEmpty(ctx), entry)
	if err := a.repo.Save(ctx, logs); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateLog replaces the entry with the given ID wholesale; an unknown ID is
// appended, so an edit of a just-deleted entry still lands.
func (a *App) UpdateLog(ctx context.Context, id string, c *service.Candidate) (*internal.LogEntry, error) {
	if res := service.ValidateLog(c); !res.Valid {
		return nil, &service.ValidationError{Errors: res.Errors}
	}
	entry := internal.LogEntry{
		ID:       id,
		Date:     c.Date,
		Bedtime:  c.Bedtime,
		Waketime: c.Waketime,
		Quality:  c.Quality,
		Notes:    c.Notes,
	}
	logs := a.loadOrEmpty(ctx)
	replaced := false
	for i := range logs {
		if logs[i].ID == id {
			logs[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		logs = append(logs, entry)
	}
	if err := a.repo.Save(ctx, logs); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteLog removes the entry with the given ID and reports whether one was
// actually removed.
func (a *App) DeleteLog(ctx context.Context, id string) (bool, error) {
	logs := a.loadOrEmpty(ctx)
	kept := logs[:0]
	for _, l := range logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	removed := len(kept) < len(logs)
	if !removed {
		return false, nil
	}
	if err := a.repo.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// List returns enriched entries in display order: date descending, then
// duration descending.
func (a *App) List(ctx context.Context) []internal.LogEntry {
	logs := service.Enrich(a.loadOrEmpty(ctx))
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Date != logs[j].Date {
			return logs[i].Date > logs[j].Date
		}
		return logs[i].DurationMinutes > logs[j].DurationMinutes
	})
	return logs
}

// Stats summarizes the whole collection.
func (a *App) Stats(ctx context.Context) internal.Summary {
	return service.Summarize(service.Enrich(a.loadOrEmpty(ctx)))
}

// Chart bins the collection into the trailing window ending today.
func (a *App) Chart(ctx context.Context, days int) []internal.HistogramBin {
	return service.Bin(service.Enrich(a.loadOrEmpty(ctx)), days, a.now())
}

// ExportTo writes the pretty-printed collection to path.
func (a *App) ExportTo(ctx context.Context, path string) error {
	data, err := a.repo.Export(ctx)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ImportFrom replaces the collection with the contents of the given JSON
// file, returning how many entries were imported.
func (a *App) ImportFrom(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return a.repo.Import(ctx, data)
}

// LoadSample appends the demo nights to whatever is already stored.
func (a *App) LoadSample(ctx context.Context) (int, error) {
	sample := service.SampleLogs(a.now())
	logs := append(a.loadOrEmpty(ctx), sample...)
	if err := a.repo.Save(ctx, logs); err != nil {
		return 0, err
	}
	return len(sample), nil
}

// ClearAll deletes the persisted collection.
func (a *App) ClearAll(ctx context.Context) error {
	return a.repo.Clear(ctx)
}
